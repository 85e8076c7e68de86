package domain

import "go.trai.ch/zerr"

var (
	// ErrLockHeld is returned when another invocation holds a non-stale lock on the store.
	ErrLockHeld = zerr.New("store is locked by another process")

	// ErrLockReadFailed is returned when the lock record cannot be read.
	ErrLockReadFailed = zerr.New("failed to read lock file")

	// ErrLockWriteFailed is returned when the lock record cannot be written.
	ErrLockWriteFailed = zerr.New("failed to write lock file")

	// ErrLockReleaseFailed is returned when the lock record cannot be removed.
	ErrLockReleaseFailed = zerr.New("failed to release lock")

	// ErrCorruptStore is returned when the profile document exists but cannot be parsed.
	ErrCorruptStore = zerr.New("profile store is corrupt")

	// ErrProfileNotFound is returned when a named profile is absent from the store.
	ErrProfileNotFound = zerr.New("profile not found")

	// ErrNoProfiles is returned when an operation needs a profile but the store is empty.
	ErrNoProfiles = zerr.New("no saved profiles")

	// ErrCollectionFailed is returned when the installed package snapshot cannot be gathered.
	ErrCollectionFailed = zerr.New("failed to collect installed packages")

	// ErrInstallFailed classifies a per-package install failure.
	ErrInstallFailed = zerr.New("install failed")

	// ErrVersionResolutionFailed is returned when the latest published version cannot be resolved.
	ErrVersionResolutionFailed = zerr.New("failed to resolve latest version")

	// ErrUnknownManager is returned for a package manager name outside npm, yarn and pnpm.
	ErrUnknownManager = zerr.New("unknown package manager, expected 'npm', 'yarn' or 'pnpm'")

	// ErrCommandFailed is returned when an external command exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")

	// ErrCommandTimeout is returned when an external command exceeds its timeout.
	ErrCommandTimeout = zerr.New("command timed out")

	// ErrOutputTooLarge is returned when an external command writes more than its output ceiling.
	ErrOutputTooLarge = zerr.New("command output exceeded limit")

	// ErrStoreCreateFailed is returned when the store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create store directory")

	// ErrStoreReadFailed is returned when the profile document cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read profile store")

	// ErrStoreMarshalFailed is returned when the profile document cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal profile store")

	// ErrStoreWriteFailed is returned when the profile document cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write profile store")

	// ErrBackupFailed is returned when the previous profile document cannot be backed up.
	ErrBackupFailed = zerr.New("failed to back up profile store")

	// ErrScriptWriteFailed is returned when the retry script cannot be written.
	ErrScriptWriteFailed = zerr.New("failed to write retry script")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConcurrency is returned when a concurrency setting is below one.
	ErrInvalidConcurrency = zerr.New("concurrency must be at least 1")
)
