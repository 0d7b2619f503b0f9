package main

import (
	"os"

	"snuffle-go/pkg/log"

	"github.com/urfave/cli/v2"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("load configuration: %v", err)
	}

	app := &cli.App{
		Name:    "snuffle",
		Usage:   "Salsa20/ChaCha20 file encryption",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: cfg.LogLevel,
				Usage: "log level (trace, debug, info, warn, error)",
			},
		},
		Before: func(c *cli.Context) error {
			return log.Setup(c.String("log-level"))
		},
		Commands: []*cli.Command{
			transformCommand("encrypt", cfg),
			transformCommand("decrypt", cfg),
			keystreamCommand(cfg),
			benchCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("%v", err)
	}
}
