package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli/v3"

	"github.com/woozymasta/lz1x"
	"github.com/woozymasta/lz1x/arc"
	"github.com/woozymasta/lz1x/internal/extract"
	"github.com/woozymasta/lz1x/u8"
)

// extractFlags are shared by the container commands; unset flags fall back to config.
func extractFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "out-dir",
			Aliases: []string{"o"},
			Usage:   "Directory to extract into",
		},
		&cli.IntFlag{
			Name:    "workers",
			Aliases: []string{"w"},
			Usage:   "Entries to process concurrently",
		},
		&cli.BoolFlag{
			Name:  "decompress",
			Usage: "Decode entries that start with an LZ10/LZ11 header",
		},
		&cli.BoolFlag{
			Name:  "manifest",
			Usage: "Write " + extract.ManifestName + " with sizes and xxhash digests",
		},
		&cli.BoolFlag{
			Name:  "lz",
			Usage: "The container file itself is LZ10/LZ11 compressed",
		},
	}
}

func arcCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:      "arc",
		Usage:     "Extract an offset/size table container",
		ArgsUsage: "<file>",
		Flags:     extractFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runExtract(ctx, cmd, st, func(data []byte) ([]extract.Entry, error) {
				table, err := arc.Parse(data)
				if err != nil {
					return nil, err
				}

				entries := make([]extract.Entry, 0, len(table))
				for _, e := range table {
					payload, err := e.Data(data)
					if err != nil {
						return nil, err
					}
					entries = append(entries, extract.Entry{Name: e.Name(), Data: payload})
				}

				return entries, nil
			})
		},
	}
}

func u8Command(st *state) *cli.Command {
	return &cli.Command{
		Name:      "u8",
		Usage:     "Extract a U8 archive",
		ArgsUsage: "<file>",
		Flags:     extractFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runExtract(ctx, cmd, st, func(data []byte) ([]extract.Entry, error) {
				nodes, err := u8.Parse(data)
				if err != nil {
					return nil, err
				}

				entries := make([]extract.Entry, 0, len(nodes))
				for _, n := range nodes {
					if n.IsDir() {
						entries = append(entries, extract.Entry{Name: n.Path, Dir: true})
						continue
					}

					payload, err := n.Data(data)
					if err != nil {
						return nil, err
					}
					entries = append(entries, extract.Entry{Name: n.Path, Data: payload})
				}

				return entries, nil
			})
		},
	}
}

// runExtract loads the container, lists its entries with parse and writes them out.
func runExtract(ctx context.Context, cmd *cli.Command, st *state, parse func([]byte) ([]extract.Entry, error)) error {
	in := cmd.Args().Get(0)
	if in == "" {
		return cli.Exit("input file is required", 2)
	}

	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}

	if cmd.Bool("lz") {
		if data, err = lz1x.Decompress(data); err != nil {
			return fmt.Errorf("%s: %w", in, err)
		}
	}

	entries, err := parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	opts := extractOptions(cmd, st)
	st.log.Info("extracting", "input", in, "entries", len(entries), "out", opts.OutDir, "workers", opts.Workers)

	report, err := extract.Run(ctx, entries, opts)
	if err != nil {
		return err
	}

	if report.Err != nil {
		failed := 1
		var merr *multierror.Error
		if errors.As(report.Err, &merr) {
			failed = len(merr.Errors)
		}
		st.log.Warn("extraction finished with errors", "failed", failed, "total", len(entries))
		return cli.Exit(fmt.Sprintf("%d of %d entries failed:\n%v", failed, len(entries), report.Err), 1)
	}

	st.log.Info("extraction finished", "total", len(entries))
	return nil
}

func extractOptions(cmd *cli.Command, st *state) *extract.Options {
	cfg := st.cfg
	if cmd.IsSet("out-dir") {
		cfg.OutDir = cmd.String("out-dir")
	}
	if cmd.IsSet("workers") {
		cfg.Workers = int(cmd.Int("workers"))
	}
	if cmd.IsSet("decompress") {
		cfg.Decompress = cmd.Bool("decompress")
	}
	if cmd.IsSet("manifest") {
		cfg.Manifest = cmd.Bool("manifest")
	}

	return &extract.Options{
		OutDir:     cfg.OutDir,
		Decompress: cfg.Decompress,
		Workers:    cfg.Workers,
		Manifest:   cfg.Manifest,
		Logger:     st.log,
	}
}
