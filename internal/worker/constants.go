package worker

// Job names, used as the metrics label for dropped jobs
const (
	JobNameTick     = "tick"
	JobNameAutosave = "autosave"
)

// Pool defaults
const (
	DefaultWorkerCount = 2
	DefaultQueueSize   = 16
)

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for worker pool operations
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgJobDropped      = "Job queue full, job dropped"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
