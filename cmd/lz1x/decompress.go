package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/woozymasta/lz1x"
)

// compressedExts are stripped from the input name to form the default output name.
var compressedExts = []string{".lz", ".lz7", ".lz10", ".lz11", ".lzs"}

func decompressCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:      "decompress",
		Aliases:   []string{"d"},
		Usage:     "Decompress one LZ10/LZ11 file",
		ArgsUsage: "<input> [output]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			in := cmd.Args().Get(0)
			if in == "" {
				return cli.Exit("input file is required", 2)
			}
			out := cmd.Args().Get(1)
			if out == "" {
				out = defaultOutput(in)
			}

			src, err := os.ReadFile(in)
			if err != nil {
				return err
			}

			data, err := lz1x.Decompress(src)
			if err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}

			if err := os.WriteFile(out, data, 0o644); err != nil {
				return err
			}

			st.log.Info("decompressed",
				"input", in,
				"output", out,
				"compressed", humanize.IBytes(uint64(len(src))),
				"size", humanize.IBytes(uint64(len(data))),
			)

			return nil
		},
	}
}

// defaultOutput strips a known compressed extension, or appends .bin.
func defaultOutput(in string) string {
	ext := strings.ToLower(filepath.Ext(in))
	for _, e := range compressedExts {
		if ext == e {
			return strings.TrimSuffix(in, filepath.Ext(in))
		}
	}

	return in + ".bin"
}

func infoCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "Print the header of an LZ10/LZ11 file",
		ArgsUsage: "<input>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			in := cmd.Args().Get(0)
			if in == "" {
				return cli.Exit("input file is required", 2)
			}

			src, err := os.ReadFile(in)
			if err != nil {
				return err
			}

			hdr, err := lz1x.ParseHeader(src)
			if err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}

			w := cmd.Root().Writer
			fmt.Fprintf(w, "variant:    %s\n", hdr.Variant)
			fmt.Fprintf(w, "size:       %d (%s)\n", hdr.Size, humanize.IBytes(uint64(hdr.Size)))
			fmt.Fprintf(w, "compressed: %d (%s)\n", len(src), humanize.IBytes(uint64(len(src))))
			if hdr.Size > 0 {
				fmt.Fprintf(w, "ratio:      %.2f\n", float64(len(src))/float64(hdr.Size))
			}

			st.log.Debug("header parsed", "input", in, "variant", hdr.Variant.String())

			return nil
		},
	}
}
