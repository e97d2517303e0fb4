package run

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"splitowned/pkg/config"
	"splitowned/pkg/execx"
	"splitowned/pkg/gen"
)

func Main(c *config.Config) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGPIPE,
	)
	defer stop()
	return run(ctx, c)
}

func run(ctx context.Context, c *config.Config) error {
	g, err := gen.New(&gen.Config{
		Package: c.Package,
		Sizes:   c.Sizes,
	})
	if err != nil {
		return err
	}

	slog.Debug("start generate", slog.Any("sizes", c.Sizes))
	var buf bytes.Buffer
	if err := g.Generate(&buf); err != nil {
		return err
	}
	out := buf.Bytes()
	slog.Debug("end generate", slog.Int("bytes", len(out)))

	if len(c.Preprocess) > 0 {
		cmds := make([]*execx.Cmd, len(c.Preprocess))
		for i, p := range c.Preprocess {
			logger := slog.With(slog.Int("count", i), slog.String("preprocess", p))
			logger.Debug("preprocess")
			cmds[i] = execx.NewCmd(c.Shell, "-c", p)
		}
		out, err = execx.NewPipedCmd(bytes.NewReader(out), cmds...).Run(ctx)
		if err != nil {
			return fmt.Errorf("%w: run preprocess", err)
		}
		slog.Debug("end preprocess", slog.Int("bytes", len(out)))
	}

	if c.Output == "" {
		_, err := c.Writer.Write(out)
		return err
	}
	slog.Debug("write output", slog.String("path", c.Output))
	return os.WriteFile(c.Output, out, 0o644)
}
