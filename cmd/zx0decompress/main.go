// Command zx0decompress decompresses a file in ZX0 format.
package main

import (
	"bufio"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	logging "github.com/ipfs/go-log/v2"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/woozymasta/zx0"
)

var log = logging.Logger("zx0")

// stdioPath selects stdin for the input or stdout for the output.
const stdioPath = "-"

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		log.Errorf("Failed: %s", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "zx0decompress",
		Usage:     "Decompress data in ZX0 format",
		ArgsUsage: "<input> <output>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "classic",
				Usage: "decompress classic file format (v1)",
			},
			&cli.StringFlag{
				Name:  "max-output",
				Usage: "limit the output size, e.g. 64KiB (empty means unlimited)",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "TOML file with decompression settings",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "write binary output even when stdout is a terminal",
			},
			&cli.StringFlag{
				Name:    "log-level",
				EnvVars: []string{"ZX0_LOG_LEVEL"},
				Value:   "warn",
			},
		},
		Before: func(cctx *cli.Context) error {
			return logging.SetLogLevel("zx0", cctx.String("log-level"))
		},
		Action: decompressAction,
	}
}

func decompressAction(cctx *cli.Context) error {
	if cctx.Args().Len() != 2 {
		return xerrors.Errorf("expected <input> and <output> arguments, got %d", cctx.Args().Len())
	}
	input, output := cctx.Args().Get(0), cctx.Args().Get(1)

	opts, err := loadOptions(cctx)
	if err != nil {
		return err
	}
	log.Debugw("settings", "classic", opts.ClassicMode, "maxOutput", opts.MaxOutputSize)

	if output == stdioPath && !cctx.Bool("force") {
		if f, ok := cctx.App.Writer.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			return xerrors.New("refusing to write binary data to a terminal, use --force")
		}
	}

	out, consumed, err := decompressInput(cctx.App.Reader, input, opts)
	if err != nil {
		return xerrors.Errorf("decompressing %s: %w", input, err)
	}
	log.Infow("decompressed", "input", humanize.IBytes(uint64(consumed)), "output", humanize.IBytes(uint64(len(out))))

	if output == stdioPath {
		if _, err := cctx.App.Writer.Write(out); err != nil {
			return xerrors.Errorf("writing stdout: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(output, out, 0o644); err != nil {
		return xerrors.Errorf("writing %s: %w", output, err)
	}

	return nil
}

func decompressInput(stdin io.Reader, input string, opts *zx0.Options) ([]byte, int64, error) {
	if input == stdioPath {
		return zx0.DecompressFromReader(bufio.NewReader(stdin), opts)
	}

	f, err := os.Open(input)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close() //nolint:errcheck

	return zx0.DecompressFromReader(bufio.NewReader(f), opts)
}
