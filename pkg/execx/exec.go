package execx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	ex "github.com/berquerant/execx"
)

type Cmd struct {
	args []string
}

func NewCmd(arg ...string) *Cmd {
	return &Cmd{
		args: arg,
	}
}

var ErrRun = errors.New("Run")

func (c *Cmd) intoExecCmd(ctx context.Context) (*exec.Cmd, error) {
	if len(c.args) == 0 {
		return nil, fmt.Errorf("%w: no args", ErrRun)
	}

	cmd := exec.CommandContext(ctx, c.args[0], c.args[1:]...)
	cmd.Env = os.Environ()
	return cmd, nil
}

// Pipeline feeds stdin through cmds and collects the final stdout.
type Pipeline struct {
	cmds  []*Cmd
	stdin io.Reader
}

func NewPipedCmd(stdin io.Reader, cmd ...*Cmd) *Pipeline {
	return &Pipeline{
		cmds:  cmd,
		stdin: stdin,
	}
}

func (p *Pipeline) Run(ctx context.Context) ([]byte, error) {
	xs := make([]*exec.Cmd, len(p.cmds))
	for i, c := range p.cmds {
		x, err := c.intoExecCmd(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to convert cmds[%d] to exec.Cmd", err, i)
		}
		xs[i] = x
	}
	cmd, err := ex.NewPipedCmd(xs...)
	if err != nil {
		return nil, err
	}

	var stdout bytes.Buffer
	cmd.Stdin = p.stdin
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr

	slog.Debug("exec", slog.Int("cmds", len(xs)))
	if err := cmd.Start(ctx); err != nil {
		return nil, err
	}
	if err := cmd.Wait(); err != nil {
		return nil, err
	}
	return stdout.Bytes(), nil
}
