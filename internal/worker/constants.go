package worker

import "time"

// Log messages - worker pool
const (
	LogMsgWorkerJobFailed  = "Worker job failed"
	LogMsgWorkerJobPanic   = "Worker job panicked"
	LogMsgWorkerQueueFull  = "Worker queue full, job dropped"
	LogMsgWorkerPoolClosed = "Worker pool stopped, job dropped"
)

// Log messages - progression jobs
const (
	LogMsgAutosaveCompleted    = "Autosave completed"
	LogMsgPassiveTickCompleted = "Passive tick completed"
)

// DefaultJobTimeout bounds a single job run
const DefaultJobTimeout = 30 * time.Second

// Job names used in logs
const (
	JobNameAutosave    = "autosave"
	JobNamePassiveTick = "passive_tick"
)
