package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"splitowned/pkg/config"
	"splitowned/pkg/run"
	"splitowned/version"
)

const usage = `splitgen -- generate fixed-length array split functions

Emits one generic function per (K, L) pair of each requested source length
N, Split{K}x{L}[T any](src *[N]T) ([K]T, [L]T), so that K + L = N holds by
construction of the signature and a mismatched call cannot compile.

# Usage

splitgen [flags]

# Examples

// print splits for all lengths up to 16 to stdout
splitgen

// regenerate the library file in place
splitgen -o pkg/split/split_gen.go

// splits for length 32 only, piped through gofmt -s
splitgen -n 32 -p 'gofmt -s' -o split32_gen.go

# Flags

`

func main() {
	fs := pflag.NewFlagSet("main", pflag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		fs.PrintDefaults()
	}

	var (
		displayVersion = fs.Bool("version", false, "display version")
		debug          = fs.Bool("debug", false, "enable debug logs")
		output         = fs.StringP("output", "o", "", "output file; defaults to stdout")
		pkg            = fs.String("package", "split", "package clause of the generated file")
		shell          = fs.StringP("shell", "s", "bash", "shell command to be executed")
		sizes          []int
		preprocess     []string
	)
	fs.IntSliceVarP(&sizes, "sizes", "n", nil,
		fmt.Sprintf("source array lengths to generate; defaults to 0 through %d", config.DefaultMaxSize),
	)
	fs.StringArrayVarP(&preprocess, "preprocess", "p", nil,
		"process before writing; generated source is piped through 'preprocess'; should output result to stdout",
	)

	err := fs.Parse(os.Args)
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	fail(err)
	if *displayVersion {
		version.Write(os.Stdout)
		return
	}

	c := config.NewConfig(os.Stdout, preprocess, *shell, *output, *pkg, sizes)
	c.Debug = *debug
	c.SetupLogger(os.Stderr)
	fail(c.Init())

	cj, _ := json.Marshal(c)
	slog.Debug("config", slog.String("json", string(cj)))
	fail(run.Main(c))
}

func fail(err error) {
	if err != nil {
		slog.Error("exit", slog.Any("err", err))
		os.Exit(1)
	}
}
