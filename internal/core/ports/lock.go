package ports

import "context"

// Locker guards the profile store against concurrent invocations.
//
//go:generate mockgen -source=lock.go -destination=mocks/mock_lock.go -package=mocks
type Locker interface {
	// Acquire takes the lock or fails with domain.ErrLockHeld.
	Acquire(ctx context.Context) error

	// Release drops the lock. It is safe to call more than once.
	Release() error
}
