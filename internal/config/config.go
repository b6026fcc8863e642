// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lz1x

// Package config loads command line defaults from a file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment overrides, e.g. LZ1X_WORKERS.
const EnvPrefix = "LZ1X_"

// FileNames are searched in the working directory when no explicit path is given.
var FileNames = []string{"lz1x.yaml", "lz1x.yml", "lz1x.json"}

// Config holds settings shared by the extraction commands.
type Config struct {
	OutDir     string `koanf:"out-dir"`
	Workers    int    `koanf:"workers"`
	Decompress bool   `koanf:"decompress"`
	Manifest   bool   `koanf:"manifest"`
	LogLevel   string `koanf:"log-level"`
	JSON       bool   `koanf:"json"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		OutDir:     "output",
		Workers:    runtime.NumCPU(),
		Decompress: true,
		LogLevel:   "info",
	}
}

// Load layers, lowest priority first: Default, the config file, LZ1X_ environment variables.
// path may be empty, in which case FileNames are tried in dir; a missing file is not an error.
// It returns the file that was used, if any.
func Load(path, dir string) (Config, string, error) {
	k := koanf.New(".")
	cfg := Default()

	used := ""
	if path != "" {
		if err := loadFile(k, path); err != nil {
			return cfg, "", fmt.Errorf("config %s: %w", path, err)
		}
		used = path
	} else {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err := loadFile(k, candidate); err != nil {
				return cfg, "", fmt.Errorf("config %s: %w", candidate, err)
			}
			used = candidate
			break
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		// LZ1X_OUT_DIR -> out-dir
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", "-")
	}), nil)
	if err != nil {
		return cfg, used, fmt.Errorf("environment: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, used, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	return cfg, used, nil
}

func loadFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser
	switch filepath.Ext(path) {
	case ".json":
		parser = json.Parser()
	default:
		parser = yaml.Parser()
	}

	return k.Load(file.Provider(path), parser)
}
