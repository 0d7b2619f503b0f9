package main

import (
	"time"

	"snuffle-go/pkg/log"
	"snuffle-go/pkg/snuffle"

	"github.com/urfave/cli/v2"
)

func benchCommand() *cli.Command {
	return &cli.Command{
		Name:  "bench",
		Usage: "measure in-memory keystream throughput per variant",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "megabytes", Aliases: []string{"m"}, Value: 64, Usage: "amount of data to transform"},
		},
		Action: runBench,
	}
}

func runBench(c *cli.Context) error {
	total := c.Int("megabytes")
	buf := make([]byte, 1<<20)

	for _, v := range []snuffle.Variant{snuffle.Salsa20, snuffle.ChaCha20} {
		cipher, err := snuffle.NewCipher(v, make([]byte, snuffle.KeySize))
		if err != nil {
			return err
		}
		cipher.SetNonce(0)

		start := time.Now()
		for i := 0; i < total; i++ {
			if err := cipher.TransformInPlace(buf); err != nil {
				return err
			}
		}
		elapsed := time.Since(start)
		log.Printf("%s: %d MiB in %s (%.1f MiB/s)",
			v, total, elapsed.Round(time.Millisecond),
			float64(total)/elapsed.Seconds())
	}
	return nil
}
