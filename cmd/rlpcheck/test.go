package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/bhaskar1001101/rrlp/log"
	"github.com/bhaskar1001101/rrlp/metrics"
	"github.com/bhaskar1001101/rrlp/rlptest"
	"github.com/urfave/cli/v2"
)

var (
	runFlag = &cli.StringFlag{
		Name:  "run",
		Value: ".*",
		Usage: "run only the fixtures whose name matches the regular expression",
	}
	formatFlag = &cli.StringFlag{
		Name:  "format",
		Value: "text",
		Usage: "report format (text|json)",
	}
	metricsFlag = &cli.BoolFlag{
		Name:  "metrics",
		Usage: "print codec metrics in Prometheus text format after the run",
	}

	testCommand = &cli.Command{
		Name:      "test",
		Usage:     "Runs RLP test vector files",
		ArgsUsage: "<file or dir>...",
		Flags:     []cli.Flag{runFlag, formatFlag, metricsFlag},
		Action:    testAction,
	}
)

func testAction(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return errors.New("no fixture files given")
	}
	filter, err := regexp.Compile(ctx.String(runFlag.Name))
	if err != nil {
		return fmt.Errorf("invalid --run pattern: %w", err)
	}
	var formatter log.LogFormatter
	switch format := ctx.String(formatFlag.Name); format {
	case "text":
		formatter = &log.TextFormatter{}
	case "json":
		formatter = &log.JSONFormatter{}
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
	dec, err := decoderFromFlags(ctx)
	if err != nil {
		return err
	}

	var files []string
	for _, path := range ctx.Args().Slice() {
		found, err := collectFiles(path)
		if err != nil {
			return err
		}
		files = append(files, found...)
	}
	fixtures, err := loadFixtures(files, filter)
	if err != nil {
		return err
	}

	results := rlptest.NewRunner(dec).Run(fixtures)
	fmt.Fprint(ctx.App.Writer, rlptest.Report(results, formatter, time.Now()))
	if ctx.Bool(metricsFlag.Name) {
		if err := metrics.WriteText(ctx.App.ErrWriter, metrics.DefaultRegistry, "rrlp"); err != nil {
			return err
		}
	}
	if failed := rlptest.Failed(results); len(failed) > 0 {
		return fmt.Errorf("%d of %d fixtures failed", len(failed), len(results))
	}
	return nil
}

// loadFixtures reads every file and keeps the fixtures whose name matches
// filter. With more than one file, names are prefixed by the file's base
// name.
func loadFixtures(files []string, filter *regexp.Regexp) (map[string]rlptest.Fixture, error) {
	all := make(map[string]rlptest.Fixture)
	for _, file := range files {
		fixtures, err := rlptest.LoadFile(file)
		if err != nil {
			return nil, err
		}
		for name, f := range fixtures {
			if !filter.MatchString(name) {
				continue
			}
			if len(files) > 1 {
				name = filepath.Base(file) + "/" + name
			}
			all[name] = f
		}
	}
	return all, nil
}

// collectFiles returns path itself if it is a file, or every .json file
// below it if it is a directory.
func collectFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	var out []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(p) == ".json" {
			out = append(out, p)
		}
		return nil
	})
	return out, err
}
