package ports

import "go.trai.ch/packsync/internal/core/domain"

// ProfileStore defines the interface for persisting the profile document.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ProfileStore interface {
	// Load returns the full profile set.
	// Returns an empty set if no document exists yet.
	Load() (domain.ProfileSet, error)

	// Save replaces the document with set, backing up the previous document first.
	Save(set domain.ProfileSet) error
}
