// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/packsync/internal/core/domain"
)

// Executor defines the interface for running external commands.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run executes cmd and returns its stdout.
	//
	// The command's Timeout and MaxOutputBytes are enforced by the implementation.
	// It returns an error if the command cannot start, exits non-zero, times out,
	// or writes more than MaxOutputBytes to stdout.
	Run(ctx context.Context, cmd domain.Command) ([]byte, error)
}
