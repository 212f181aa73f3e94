// Command rlpcheck inspects RLP data and runs RLP test vectors.
//
// Usage:
//
//	rlpcheck [global flags] dump <hex>
//	rlpcheck [global flags] encode <json>
//	rlpcheck [global flags] test [--run regexp] [--format text|json] [--metrics] <file or dir>...
//
// Global flags:
//
//	--verbosity    Log level 0-5 (default: 3)
//	--maxlength    Largest accepted payload in bytes (default: 0x0fffffff)
//	--maxdepth     Deepest accepted list nesting (default: 1024)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bhaskar1001101/rrlp/log"
	"github.com/bhaskar1001101/rrlp/rlp"
	"github.com/urfave/cli/v2"
)

// Build-time version info, overridable with ldflags:
//
//	go build -ldflags "-X main.version=v0.2.0"
var version = "v0.1.0-dev"

var (
	verbosityFlag = &cli.IntFlag{
		Name:  "verbosity",
		Value: 3,
		Usage: "log level 0-5 (0=silent, 5=debug)",
	}
	maxLengthFlag = &cli.Uint64Flag{
		Name:  "maxlength",
		Value: rlp.DefaultMaxLength,
		Usage: "largest accepted payload size in bytes",
	}
	maxDepthFlag = &cli.IntFlag{
		Name:  "maxdepth",
		Value: rlp.DefaultMaxDepth,
		Usage: "deepest accepted list nesting",
	}
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newApp builds the command tree writing normal output to stdout and
// diagnostics to stderr.
func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "rlpcheck",
		Usage:     "inspect RLP data and run RLP test vectors",
		Version:   version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     []cli.Flag{verbosityFlag, maxLengthFlag, maxDepthFlag},
		Commands:  []*cli.Command{dumpCommand, encodeCommand, testCommand},
		Before: func(ctx *cli.Context) error {
			level := log.VerbosityLevel(ctx.Int(verbosityFlag.Name))
			log.SetDefault(log.NewJSON(ctx.App.ErrWriter, level.Slog()))
			return nil
		},
	}
}

// decoderFromFlags returns a Decoder enforcing the global limit flags.
func decoderFromFlags(ctx *cli.Context) (*rlp.Decoder, error) {
	cfg := rlp.DefaultConfig()
	cfg.MaxLength = ctx.Uint64(maxLengthFlag.Name)
	cfg.MaxDepth = ctx.Int(maxDepthFlag.Name)
	dec, err := rlp.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	return dec.WithLogger(log.Default().Module("rlpcheck")), nil
}
