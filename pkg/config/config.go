package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

var (
	ErrConfig = errors.New("Config")
)

// DefaultMaxSize is the largest source array length generated when no
// sizes are requested.
const DefaultMaxSize = 16

func NewConfig(
	w io.Writer,
	preprocess []string,
	shell, output, pkg string,
	sizes []int,
) *Config {
	return &Config{
		Preprocess: preprocess,
		Shell:      shell,
		Output:     output,
		Package:    pkg,
		Sizes:      sizes,
		Writer:     w,
	}
}

type Config struct {
	Debug      bool
	Preprocess []string
	Shell      string
	Output     string
	Package    string
	Sizes      []int

	Writer io.Writer `json:"-"`
}

func (c *Config) Init() error {
	if c.Package == "" {
		return fmt.Errorf("%w: no package name", ErrConfig)
	}
	for _, n := range c.Sizes {
		if n < 0 {
			return fmt.Errorf("%w: negative size %d", ErrConfig, n)
		}
	}
	if len(c.Sizes) == 0 {
		for n := 0; n <= DefaultMaxSize; n++ {
			c.Sizes = append(c.Sizes, n)
		}
	}
	return nil
}

func (c Config) SetupLogger(w io.Writer) {
	level := slog.LevelInfo
	if c.Debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	slog.SetDefault(slog.New(handler))
}
