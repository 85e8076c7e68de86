package prompt_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/packsync/internal/adapters/prompt"
)

func TestPrompt_Ask(t *testing.T) {
	out := &bytes.Buffer{}
	p := prompt.NewWithReader(strings.NewReader("1 3\r\nsecond\n"), out, true)

	got, err := p.Ask(t.Context(), "Exclude: ")
	require.NoError(t, err)
	assert.Equal(t, "1 3", got)
	assert.Equal(t, "Exclude: ", out.String())

	got, err = p.Ask(t.Context(), "Again: ")
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestPrompt_Ask_EOFWithoutNewline(t *testing.T) {
	p := prompt.NewWithReader(strings.NewReader("2"), io.Discard, true)

	got, err := p.Ask(t.Context(), "? ")
	require.NoError(t, err)
	assert.Equal(t, "2", got)
}

func TestPrompt_Ask_NotInteractive(t *testing.T) {
	out := &bytes.Buffer{}
	p := prompt.NewWithReader(strings.NewReader("1 2 3\n"), out, false)

	got, err := p.Ask(t.Context(), "Exclude: ")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, out.String())
}

func TestPrompt_Ask_Canceled(t *testing.T) {
	r, w := io.Pipe()
	t.Cleanup(func() { _ = w.Close() })

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	p := prompt.NewWithReader(r, io.Discard, true)
	_, err := p.Ask(ctx, "? ")
	require.ErrorIs(t, err, context.Canceled)
}
