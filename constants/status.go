package constants

// RunStatus is the canonical status for rows in extraction_run.
type RunStatus string

// Stable values (store these exact strings in the run ledger).
const (
	RunStatusQueued  RunStatus = "QUEUED"  // created, not yet processing
	RunStatusRunning RunStatus = "RUNNING" // in progress
	RunStatusDone    RunStatus = "DONE"    // completed (possibly with partial coverage)
	RunStatusFailed  RunStatus = "FAILED"  // structural failure, no output written
)
