package domain

import (
	"path/filepath"
	"time"
)

const (
	// AppName is the name of the tool. It is also part of the default skip set.
	AppName = "packsync"

	// StoreDirName is the name of the default store directory under the user's home.
	StoreDirName = ".packsync"

	// ProfileFileName is the name of the profile document.
	ProfileFileName = "packages.json"

	// BackupSuffix is appended to the profile document path to form the backup path.
	BackupSuffix = ".backup"

	// LockFileName is the name of the lock file, co-located with the profile document.
	LockFileName = ".lock"

	// RetryScriptName is the name of the generated retry script.
	RetryScriptName = "retry-failed.sh"

	// ConfigFileName is the config file path relative to the XDG config home.
	ConfigFileName = "packsync/config.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600

	// ExecFilePerm is the permission for generated scripts (rwxr-xr-x).
	ExecFilePerm = 0o755
)

const (
	// DefaultConcurrency is the default install window size.
	DefaultConcurrency = 3

	// LockStaleAfter is the age after which a lock record is considered abandoned.
	LockStaleAfter = 5 * time.Minute

	// LockRenewInterval is how often a held lock refreshes its timestamp.
	LockRenewInterval = time.Minute

	// ListTimeout bounds the global listing command.
	ListTimeout = 30 * time.Second

	// ProbeTimeout bounds the existence probe and version queries of the manager itself.
	ProbeTimeout = 15 * time.Second

	// LatestTimeout bounds the latest-version query.
	LatestTimeout = 10 * time.Second

	// InstallTimeout bounds a single install command.
	InstallTimeout = 60 * time.Second

	// MaxOutputBytes is the stdout ceiling for manager commands (10 MiB).
	MaxOutputBytes = 10 << 20
)

// ProfilePath returns the path of the profile document inside storeDir.
func ProfilePath(storeDir string) string {
	return filepath.Join(storeDir, ProfileFileName)
}

// BackupPath returns the path of the profile document backup inside storeDir.
// It is the profile document path with ".backup" appended.
func BackupPath(storeDir string) string {
	return ProfilePath(storeDir) + BackupSuffix
}

// LockPath returns the path of the lock file inside storeDir.
func LockPath(storeDir string) string {
	return filepath.Join(storeDir, LockFileName)
}

// RetryScriptPath returns the path of the retry script inside storeDir.
func RetryScriptPath(storeDir string) string {
	return filepath.Join(storeDir, RetryScriptName)
}
