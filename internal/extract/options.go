package extract

import (
	"log/slog"
	"runtime"

	"github.com/woozymasta/lz1x/internal/logger"
)

// ManifestName is the file written next to extracted entries when Options.Manifest is set.
const ManifestName = "manifest.json"

// Options configures Run.
type Options struct {
	// OutDir is the extraction root; entry names are resolved below it.
	OutDir string
	// Decompress: if true, entries starting with an LZ10/LZ11 header are decoded before writing.
	// Entries that fail to decode are written as stored and reported in Report.Err.
	Decompress bool
	// Workers bounds the number of entries processed at once.
	Workers int
	// Manifest: if true, a JSON listing of results is written to OutDir/ManifestName.
	Manifest bool
	// Logger receives per-entry progress; nil discards.
	Logger *slog.Logger
}

// DefaultOptions returns options for default behavior: decode compressed entries into ./output.
func DefaultOptions() *Options {
	return &Options{
		OutDir:     "output",
		Decompress: true,
		Workers:    runtime.NumCPU(),
	}
}

func (o *Options) normalize() *Options {
	if o == nil {
		o = DefaultOptions()
	}

	c := *o
	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.Logger == nil {
		c.Logger = logger.Discard()
	}

	return &c
}
