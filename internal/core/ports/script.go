package ports

import "go.trai.ch/packsync/internal/core/domain"

// RetryScriptWriter writes a shell script that reinstalls failed packages.
//
//go:generate mockgen -source=script.go -destination=mocks/mock_script.go -package=mocks
type RetryScriptWriter interface {
	// Write renders one install command per failed package for manager
	// and returns the path of the written script.
	Write(manager domain.Manager, failed []domain.PackageSpec) (string, error)

	// Clear removes a script left by an earlier run. A missing script is
	// not an error.
	Clear() error
}
