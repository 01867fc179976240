package main

import (
	"math"

	"github.com/BurntSushi/toml"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/woozymasta/zx0"
)

// Config is the on-disk form of the decompression settings.
//
//	ClassicMode = true
//	MaxOutputSize = "64KiB"
type Config struct {
	ClassicMode   bool
	MaxOutputSize string
}

func loadConfig(path string) (*Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, xerrors.Errorf("decoding config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, xerrors.Errorf("config %s: unknown keys %v", path, undecoded)
	}

	return &cfg, nil
}

// loadOptions merges the config file and command line flags, flags win.
func loadOptions(cctx *cli.Context) (*zx0.Options, error) {
	opts := zx0.DefaultOptions()

	if path := cctx.String("config"); path != "" {
		cfg, err := loadConfig(path)
		if err != nil {
			return nil, err
		}

		opts.ClassicMode = cfg.ClassicMode
		if opts.MaxOutputSize, err = parseSize(cfg.MaxOutputSize); err != nil {
			return nil, xerrors.Errorf("config %s: %w", path, err)
		}
	}

	if cctx.IsSet("classic") {
		opts.ClassicMode = cctx.Bool("classic")
	}

	if cctx.IsSet("max-output") {
		size, err := parseSize(cctx.String("max-output"))
		if err != nil {
			return nil, xerrors.Errorf("--max-output: %w", err)
		}
		opts.MaxOutputSize = size
	}

	return opts, nil
}

// parseSize parses a human readable size; empty means unlimited.
func parseSize(s string) (int, error) {
	if s == "" {
		return zx0.Unlimited, nil
	}

	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, xerrors.Errorf("parsing size %q: %w", s, err)
	}

	if n > math.MaxInt {
		return zx0.Unlimited, nil
	}

	return int(n), nil
}
