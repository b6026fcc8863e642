// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lz1x

// Package extract writes archive entries to disk, decoding LZ10/LZ11 payloads on the way.
package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/woozymasta/lz1x"
)

// ErrUnsafeName is reported for entry names that would resolve outside OutDir.
var ErrUnsafeName = errors.New("entry name escapes output directory")

// Entry is one item handed over by an archive parser.
type Entry struct {
	Name string // Slash-separated path relative to the output directory.
	Dir  bool   // Directory entries are created empty.
	Data []byte // Stored payload.
}

// Result describes what was written for one entry.
type Result struct {
	Name       string `json:"name"`
	Path       string `json:"path,omitempty"`
	Dir        bool   `json:"dir,omitempty"`
	StoredSize int    `json:"stored_size"`
	Size       int    `json:"size"`
	Variant    string `json:"variant,omitempty"`
	XXHash     string `json:"xxhash,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Report is the outcome of a Run.
type Report struct {
	Results []Result // One per entry, in input order.
	Err     error    // Per-entry failures (*multierror.Error), nil if every entry succeeded.
}

// Run processes entries concurrently. A malformed entry never stops the batch:
// it is written as stored, recorded in its Result and aggregated into Report.Err.
// Filesystem failures and context cancellation abort the run and are returned as error.
// Cancellation is observed between entries, never in the middle of a decode.
func Run(ctx context.Context, entries []Entry, opts *Options) (Report, error) {
	opts = opts.normalize()

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return Report{}, err
	}

	var (
		mu      sync.Mutex
		merr    *multierror.Error
		results = make([]Result, len(entries))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i, entry := range entries {
		if gctx.Err() != nil {
			break
		}

		i, entry := i, entry
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res, entryErr, err := process(entry, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", entry.Name, err)
			}
			if entryErr != nil {
				opts.Logger.Warn("entry failed", "entry", entry.Name, "error", entryErr)
				mu.Lock()
				merr = multierror.Append(merr, fmt.Errorf("%s: %w", entry.Name, entryErr))
				mu.Unlock()
			}

			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	report := Report{Results: results, Err: merr.ErrorOrNil()}

	if opts.Manifest {
		if err := writeManifest(filepath.Join(opts.OutDir, ManifestName), results); err != nil {
			return report, err
		}
	}

	return report, nil
}

// process handles one entry. entryErr is a per-entry failure; err is fatal for the run.
func process(e Entry, opts *Options) (res Result, entryErr error, err error) {
	res = Result{Name: e.Name, Dir: e.Dir, StoredSize: len(e.Data)}

	rel := filepath.FromSlash(e.Name)
	if !filepath.IsLocal(rel) {
		res.Error = ErrUnsafeName.Error()
		return res, fmt.Errorf("%w: %q", ErrUnsafeName, e.Name), nil
	}
	res.Path = filepath.Join(opts.OutDir, rel)

	if e.Dir {
		return res, nil, os.MkdirAll(res.Path, 0o755)
	}

	payload := e.Data
	if opts.Decompress {
		if hdr, ok := lz1x.Probe(e.Data); ok {
			out, decodeErr := lz1x.Decompress(e.Data)
			if decodeErr != nil {
				res.Error = decodeErr.Error()
				entryErr = decodeErr
			} else {
				payload = out
				res.Variant = hdr.Variant.String()
			}
		}
	}

	if err := os.MkdirAll(filepath.Dir(res.Path), 0o755); err != nil {
		return res, entryErr, err
	}
	if err := os.WriteFile(res.Path, payload, 0o644); err != nil {
		return res, entryErr, err
	}

	res.Size = len(payload)
	res.XXHash = fmt.Sprintf("%016x", xxhash.Sum64(payload))

	opts.Logger.Debug("entry written",
		"entry", e.Name,
		"variant", res.Variant,
		"stored", humanize.IBytes(uint64(res.StoredSize)),
		"size", humanize.IBytes(uint64(res.Size)),
	)

	return res, entryErr, nil
}

func writeManifest(path string, results []Result) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(data, '\n'), 0o644)
}
