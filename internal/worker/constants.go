package worker

import "errors"

const (
	LogMsgWorkerJobFailed = "Worker job failed"
	ErrMsgPoolStopped     = "worker pool stopped"
)

// ErrPoolStopped is returned for jobs submitted after Stop
var ErrPoolStopped = errors.New(ErrMsgPoolStopped)
