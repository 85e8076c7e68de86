// Package prompt reads interactive answers from the terminal.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompt implements ports.Prompter over a line reader.
type Prompt struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

// New creates a Prompt reading from in. Answers are only read when in is a terminal.
func New(in *os.File, out io.Writer) *Prompt {
	return NewWithReader(in, out, term.IsTerminal(int(in.Fd())))
}

// NewWithReader creates a Prompt over an arbitrary reader.
func NewWithReader(in io.Reader, out io.Writer, interactive bool) *Prompt {
	return &Prompt{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: interactive,
	}
}

type answer struct {
	line string
	err  error
}

// Ask prints question and waits for a line of input or ctx cancellation.
// It returns an empty answer without printing when input is not interactive.
func (p *Prompt) Ask(ctx context.Context, question string) (string, error) {
	if !p.interactive {
		return "", nil
	}

	if _, err := fmt.Fprint(p.out, question); err != nil {
		return "", err
	}

	ch := make(chan answer, 1)
	go func() {
		line, err := p.in.ReadString('\n')
		ch <- answer{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case a := <-ch:
		if a.err != nil && !errors.Is(a.err, io.EOF) {
			return "", a.err
		}
		return strings.TrimRight(a.line, "\r\n"), nil
	}
}
