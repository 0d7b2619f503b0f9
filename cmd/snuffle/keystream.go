package main

import (
	"fmt"

	"snuffle-go/pkg/snuffle"

	"github.com/urfave/cli/v2"
)

// keystreamCommand dumps raw keystream blocks as hex, one block per
// line. Handy for comparing against published test vectors.
func keystreamCommand(cfg *Config) *cli.Command {
	return &cli.Command{
		Name:  "keystream",
		Usage: "print 64-byte keystream blocks as hex",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "key", Value: cfg.Key, Usage: "key (32/64 hex digits, or 16/32 characters with --key-format ascii)"},
			&cli.StringFlag{Name: "key-format", Value: cfg.KeyFormat, Usage: "hex or ascii"},
			&cli.StringFlag{Name: "variant", Value: cfg.Variant, Usage: "salsa20 or chacha20"},
			&cli.StringFlag{Name: "nonce", Value: cfg.Nonce, Usage: "nonce, 16 hex digits"},
			&cli.Uint64Flag{Name: "skip-blocks", Usage: "start at block N instead of block 0"},
			&cli.IntFlag{Name: "blocks", Aliases: []string{"n"}, Value: 4, Usage: "number of blocks to print"},
		},
		Action: runKeystream,
	}
}

func runKeystream(c *cli.Context) error {
	cipher, err := buildCipher(c.String("variant"), c.String("key"),
		c.String("key-format"), c.String("nonce"))
	if err != nil {
		return err
	}
	if err := cipher.SkipBlocks(c.Uint64("skip-blocks")); err != nil {
		return err
	}

	start := c.Uint64("skip-blocks")
	block := make([]byte, snuffle.BlockSize)
	for i := 0; i < c.Int("blocks"); i++ {
		if err := cipher.KeystreamBlock(block); err != nil {
			return err
		}
		fmt.Printf("block %d: %x\n", start+uint64(i), block)
	}
	return nil
}
