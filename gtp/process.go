package gtp

import (
	"context"
	"io"
	"os/exec"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Process is an engine running as a child process, e.g. "gnugo --mode gtp"
type Process struct {
	*Client
	cmd   *exec.Cmd
	stdin io.WriteCloser
}

// StartProcess runs the engine; cancelling ctx kills it
func StartProcess(ctx context.Context, path string, args ...string) (*Process, error) {
	cmd := exec.CommandContext(ctx, path, args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, errors.Wrap(err, "gtp: stdin pipe")
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.Wrap(err, "gtp: stdout pipe")
	}
	if err := cmd.Start(); err != nil {
		return nil, errors.Wrapf(err, "gtp: start %s", path)
	}
	log.Debug().Str("path", path).Strs("args", args).Int("pid", cmd.Process.Pid).Msg("gtp-engine-started")
	return &Process{Client: NewClient(stdout, stdin), cmd: cmd, stdin: stdin}, nil
}

// Close asks the engine to quit and waits for it
func (p *Process) Close() error {
	if err := p.Quit(); err != nil {
		log.Debug().Err(err).Msg("gtp-quit")
	}
	p.stdin.Close()
	return p.cmd.Wait()
}
