// Package lock implements the store's cross-process lock file.
package lock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/packsync/internal/adapters/fs"
	"go.trai.ch/packsync/internal/core/domain"
	"go.trai.ch/zerr"
)

// maxAttempts bounds how often Acquire retries after clearing a stale record.
const maxAttempts = 3

// Lock implements ports.Locker with an exclusively created JSON record file.
// While held, the record's timestamp is renewed so long runs never look stale.
type Lock struct {
	dir  string
	path string
	pid  int

	mu    sync.Mutex
	owner string
	stop  chan struct{}
	done  chan struct{}
}

// New creates a Lock for the store directory dir.
func New(dir string) *Lock {
	return &Lock{
		dir:  dir,
		path: domain.LockPath(dir),
		pid:  os.Getpid(),
	}
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}

// Acquire takes the lock. A record that is stale or unreadable is replaced.
// A fresh record held by anyone else yields domain.ErrLockHeld.
func (l *Lock) Acquire(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.owner != "" {
		return nil
	}

	if err := os.MkdirAll(l.dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", l.dir)
	}

	owner := uuid.NewString()
	for range maxAttempts {
		if err := ctx.Err(); err != nil {
			return err
		}

		created, err := l.create(owner)
		if err != nil {
			return err
		}
		if created {
			l.owner = owner
			l.stop = make(chan struct{})
			l.done = make(chan struct{})
			go l.renew(owner, l.stop, l.done)
			return nil
		}

		if err := l.clearIfStale(); err != nil {
			return err
		}
	}

	return l.heldError()
}

// Release stops renewal and removes the record if this Lock still owns it.
// Calling Release on a Lock that is not held is a no-op.
func (l *Lock) Release() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.owner == "" {
		return nil
	}

	close(l.stop)
	<-l.done
	owner := l.owner
	l.owner, l.stop, l.done = "", nil, nil

	rec, err := l.read()
	switch {
	case errors.Is(err, iofs.ErrNotExist):
		return nil
	case err != nil:
		return zerr.With(zerr.Wrap(err, domain.ErrLockReleaseFailed.Error()), "path", l.path)
	case rec.Owner != owner:
		return nil
	}

	if err := os.Remove(l.path); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrLockReleaseFailed.Error()), "path", l.path)
	}
	return nil
}

// create writes a new record with O_EXCL. It reports false if the file exists.
func (l *Lock) create(owner string) (bool, error) {
	data, err := json.Marshal(domain.NewLockRecord(l.pid, owner, time.Now()))
	if err != nil {
		return false, zerr.Wrap(err, domain.ErrLockWriteFailed.Error())
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, domain.PrivateFilePerm)
	if errors.Is(err, iofs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrLockWriteFailed.Error()), "path", l.path)
	}

	_, writeErr := f.Write(data)
	closeErr := f.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		_ = os.Remove(l.path)
		return false, zerr.With(zerr.Wrap(err, domain.ErrLockWriteFailed.Error()), "path", l.path)
	}
	return true, nil
}

// clearIfStale removes the existing record when it is stale or unparsable.
// A fresh record yields domain.ErrLockHeld.
func (l *Lock) clearIfStale() error {
	rec, err := l.read()
	switch {
	case errors.Is(err, iofs.ErrNotExist):
		return nil
	case errors.As(err, new(*json.SyntaxError)), errors.As(err, new(*json.UnmarshalTypeError)):
	case err != nil:
		return zerr.With(zerr.Wrap(err, domain.ErrLockReadFailed.Error()), "path", l.path)
	case !rec.IsStale(time.Now()):
		return zerr.With(
			zerr.With(zerr.Wrap(domain.ErrLockHeld, fmt.Sprintf("lock held by pid %d", rec.PID)), "pid", rec.PID),
			"path", l.path,
		)
	}

	if err := os.Remove(l.path); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrLockWriteFailed.Error()), "path", l.path)
	}
	return nil
}

func (l *Lock) heldError() error {
	return zerr.With(zerr.Wrap(domain.ErrLockHeld, "lock is contended"), "path", l.path)
}

func (l *Lock) read() (domain.LockRecord, error) {
	var rec domain.LockRecord
	data, err := os.ReadFile(l.path)
	if err != nil {
		return rec, err
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return rec, err
	}
	return rec, nil
}

// renew refreshes the record's timestamp until stop is closed or the record
// is taken over by another owner.
func (l *Lock) renew(owner string, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(domain.LockRenewInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			rec, err := l.read()
			if err != nil || rec.Owner != owner {
				return
			}
			data, err := json.Marshal(domain.NewLockRecord(l.pid, owner, time.Now()))
			if err != nil {
				return
			}
			if err := fs.WriteFileAtomic(l.path, data, domain.PrivateFilePerm); err != nil {
				return
			}
		}
	}
}
