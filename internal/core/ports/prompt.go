package ports

import "context"

// Prompter reads a single line of interactive input.
//
//go:generate mockgen -source=prompt.go -destination=mocks/mock_prompt.go -package=mocks
type Prompter interface {
	// Ask prints question and returns the answer without its trailing newline.
	// When input is not interactive it returns an empty answer.
	Ask(ctx context.Context, question string) (string, error)
}
