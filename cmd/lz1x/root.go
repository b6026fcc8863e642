package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/woozymasta/lz1x/internal/config"
	"github.com/woozymasta/lz1x/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// state is filled by the root Before hook and shared by every subcommand.
type state struct {
	cfg config.Config
	log *slog.Logger
}

// globalFlags are available on all commands.
var globalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "config",
		Usage: "Path to a YAML or JSON config file (default: lz1x.yaml in the working directory)",
	},
	&cli.BoolFlag{
		Name:  "json",
		Usage: "Output logs as JSON. Implied when stderr is not a TTY.",
	},
	&cli.StringFlag{
		Name:    "log-level",
		Aliases: []string{"l"},
		Usage:   "Set the log level. One of: trace, debug, info, warn, error.",
	},
}

func newApp() *cli.Command {
	st := &state{cfg: config.Default(), log: logger.Discard()}

	return &cli.Command{
		Name:    "lz1x",
		Usage:   "Decompress LZ10/LZ11 streams and extract ARC and U8 containers",
		Version: version,
		Flags:   globalFlags,
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			cwd, err := os.Getwd()
			if err != nil {
				return ctx, err
			}

			cfg, used, err := config.Load(cmd.String("config"), cwd)
			if err != nil {
				return ctx, err
			}
			if cmd.IsSet("json") {
				cfg.JSON = cmd.Bool("json")
			}
			if cmd.IsSet("log-level") {
				cfg.LogLevel = cmd.String("log-level")
			}

			st.cfg = cfg
			st.log = logger.New(logger.Options{
				Level: logger.ParseLevel(cfg.LogLevel),
				JSON:  cfg.JSON,
			})
			if used != "" {
				st.log.Debug("using config", "file", used)
			}

			return ctx, nil
		},
		Commands: []*cli.Command{
			decompressCommand(st),
			infoCommand(st),
			arcCommand(st),
			u8Command(st),
			versionCommand(),
		},
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Shows the lz1x version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, err := cmd.Root().Writer.Write([]byte(version + "\n"))
			return err
		},
	}
}
