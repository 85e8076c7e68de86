package ports

import (
	"context"

	"go.trai.ch/packsync/internal/core/domain"
)

// PackageManager drives a package manager's global package commands.
//
//go:generate mockgen -source=package_manager.go -destination=mocks/mock_package_manager.go -package=mocks
type PackageManager interface {
	// Detect returns the first available manager in domain.DetectionOrder,
	// falling back to npm.
	Detect(ctx context.Context) domain.Manager

	// Version returns the manager's own version.
	Version(ctx context.Context, mgr domain.Manager) (string, error)

	// NodeVersion returns the Node.js runtime version.
	NodeVersion(ctx context.Context) (string, error)

	// ListGlobal returns the globally installed packages, unfiltered.
	ListGlobal(ctx context.Context, mgr domain.Manager) (domain.PackageSet, error)

	// IsInstalled reports whether name is installed globally.
	IsInstalled(ctx context.Context, mgr domain.Manager, name string) bool

	// LatestVersion returns the latest published version of name.
	// Any failure is reported as domain.ErrVersionResolutionFailed.
	LatestVersion(ctx context.Context, mgr domain.Manager, name string) (string, error)

	// Install installs name@version globally.
	Install(ctx context.Context, mgr domain.Manager, name, version string) error
}
