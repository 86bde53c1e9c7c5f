package models

import "time"

// FailedItem describes a file that did not sync cleanly. When its content
// could not be retrieved it is still stored with [PlaceholderCode] and Stored
// is true. Stored is false when the write itself failed.
type FailedItem struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
	Stored bool   `json:"stored"`
}

// SyncResult is the outcome of one sync run as reported to the caller.
type SyncResult struct {
	// Success is false when the run aborted before aggregation.
	Success bool `json:"success"`

	// Count is the number of submissions written by the run.
	Count int `json:"count"`

	// Error is a human-readable reason for a failed run.
	Error string `json:"error,omitempty"`

	// Failed lists files that did not sync cleanly.
	Failed []FailedItem `json:"failed,omitempty"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}
