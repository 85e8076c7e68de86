// Package store implements the JSON profile document store.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	pfs "go.trai.ch/packsync/internal/adapters/fs"
	"go.trai.ch/packsync/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.ProfileStore using a single JSON document.
type Store struct {
	dir string
}

// NewStore creates a new ProfileStore backed by the directory at the given path.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the path of the profile document.
func (s *Store) Path() string {
	return domain.ProfilePath(s.dir)
}

// Load reads the profile document.
func (s *Store) Load() (domain.ProfileSet, error) {
	//nolint:gosec // Path is constructed from the configured store directory
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.ProfileSet{}, nil
		}
		return domain.ProfileSet{}, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", s.Path())
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return domain.ProfileSet{}, nil
	}

	var set domain.ProfileSet
	if err := json.Unmarshal(data, &set); err != nil {
		msg := fmt.Sprintf("cannot parse %s: %v", s.Path(), err)
		return domain.ProfileSet{}, zerr.With(zerr.Wrap(domain.ErrCorruptStore, msg), "path", s.Path())
	}

	return set, nil
}

// Save writes the full profile set, backing up the previous document first.
func (s *Store) Save(set domain.ProfileSet) error {
	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	if _, err := pfs.CopyFile(s.Path(), domain.BackupPath(s.dir), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBackupFailed.Error()), "path", domain.BackupPath(s.dir))
	}

	if err := pfs.WriteFileAtomic(s.Path(), data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.Path())
	}

	return nil
}
