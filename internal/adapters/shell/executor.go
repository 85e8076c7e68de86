// Package shell provides the executor adapter that runs package manager commands.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"go.trai.ch/packsync/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// stderrTail is how many bytes of stderr are kept for error metadata.
	stderrTail = 4 << 10

	// waitDelay bounds how long Run waits for output pipes after the process is killed.
	waitDelay = time.Second
)

// Executor implements ports.Executor using os/exec.
type Executor struct{}

// NewExecutor creates a new Executor.
func NewExecutor() *Executor {
	return &Executor{}
}

// Run executes cmd and returns its captured stdout.
func (e *Executor) Run(ctx context.Context, cmd domain.Command) ([]byte, error) {
	if cmd.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cmd.Timeout)
		defer cancel()
	}

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...) //nolint:gosec // package manager command from a fixed table

	stdout := &limitedBuffer{limit: cmd.MaxOutputBytes}
	stderr := &limitedBuffer{limit: stderrTail, keepTail: true}
	c.Stdout = stdout
	c.Stderr = stderr
	c.WaitDelay = waitDelay

	err := c.Run()

	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return nil, zerr.With(
			zerr.With(zerr.Wrap(domain.ErrCommandTimeout, "command timed out after "+cmd.Timeout.String()), "command", cmd.String()),
			"timeout", cmd.Timeout.String(),
		)
	case ctx.Err() != nil:
		return nil, ctx.Err()
	case stdout.overflow:
		return nil, zerr.With(
			zerr.With(zerr.Wrap(domain.ErrOutputTooLarge, "output of "+cmd.Name+" exceeded limit"), "command", cmd.String()),
			"limit_bytes", cmd.MaxOutputBytes,
		)
	case err != nil:
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		wrapped := zerr.Wrap(err, domain.ErrCommandFailed.Error())
		wrapped = zerr.With(wrapped, "command", cmd.String())
		wrapped = zerr.With(wrapped, "exit_code", exitCode)
		if tail := strings.TrimSpace(stderr.String()); tail != "" {
			wrapped = zerr.With(wrapped, "stderr", tail)
		}
		return stdout.Bytes(), wrapped
	}

	return stdout.Bytes(), nil
}

// limitedBuffer captures up to limit bytes. With keepTail set it keeps the
// last limit bytes instead of the first. A zero limit captures everything.
type limitedBuffer struct {
	buf      bytes.Buffer
	limit    int64
	keepTail bool
	overflow bool
}

func (b *limitedBuffer) Write(p []byte) (int, error) {
	n := len(p)
	if b.limit <= 0 {
		return b.buf.Write(p)
	}

	if b.keepTail {
		b.buf.Write(p)
		if excess := int64(b.buf.Len()) - b.limit; excess > 0 {
			b.buf.Next(int(excess))
			b.overflow = true
		}
		return n, nil
	}

	remaining := b.limit - int64(b.buf.Len())
	if int64(len(p)) > remaining {
		b.overflow = true
		if remaining > 0 {
			b.buf.Write(p[:remaining])
		}
		return n, nil
	}
	return b.buf.Write(p)
}

func (b *limitedBuffer) Bytes() []byte {
	return b.buf.Bytes()
}

func (b *limitedBuffer) String() string {
	return b.buf.String()
}
