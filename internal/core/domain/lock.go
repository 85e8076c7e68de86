package domain

import "time"

// LockRecord is the content of the store's lock file.
type LockRecord struct {
	// PID is the process identifier of the holder.
	PID int `json:"pid"`

	// Timestamp is the acquisition or last renewal time in Unix milliseconds.
	Timestamp int64 `json:"timestamp"`

	// Owner is a nonce unique to one acquisition.
	Owner string `json:"owner,omitempty"`
}

// NewLockRecord returns a record for pid and owner stamped at now.
func NewLockRecord(pid int, owner string, now time.Time) LockRecord {
	return LockRecord{PID: pid, Timestamp: now.UnixMilli(), Owner: owner}
}

// Age returns how long ago the record was stamped.
func (r LockRecord) Age(now time.Time) time.Duration {
	return now.Sub(time.UnixMilli(r.Timestamp))
}

// IsStale reports whether the record is older than LockStaleAfter.
func (r LockRecord) IsStale(now time.Time) bool {
	return r.Age(now) >= LockStaleAfter
}
