package domain

import (
	"strings"
	"time"
)

// Command describes a single external command invocation.
type Command struct {
	// Name is the executable to run (e.g., "npm").
	Name string

	// Args are the arguments passed to the executable.
	Args []string

	// Timeout bounds the command's run time. Zero means no timeout.
	Timeout time.Duration

	// MaxOutputBytes caps the captured stdout. Zero means unlimited.
	MaxOutputBytes int64
}

// Argv returns the full argument vector, executable first.
func (c Command) Argv() []string {
	argv := make([]string, 0, len(c.Args)+1)
	argv = append(argv, c.Name)
	return append(argv, c.Args...)
}

// String returns the command as a space-joined line, for logs only.
func (c Command) String() string {
	return strings.Join(c.Argv(), " ")
}
