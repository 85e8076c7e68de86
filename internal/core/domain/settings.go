package domain

// Settings is the resolved runtime configuration.
type Settings struct {
	// StoreDir holds the profile document, its backup, the lock and the retry script.
	StoreDir string

	// Manager is the default package manager. Empty means detect.
	Manager Manager

	// Concurrency is the default install window size.
	Concurrency int

	// Skip is the effective skip set.
	Skip SkipSet

	// JSONLogs switches the logger to JSON output.
	JSONLogs bool
}
