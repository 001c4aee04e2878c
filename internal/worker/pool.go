package worker

import (
	"context"
	"sync"

	"github.com/osse101/RogueMods_Go/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to Job
type JobFunc func(ctx context.Context) error

// Process implements Job
func (f JobFunc) Process(ctx context.Context) error { return f(ctx) }

// task carries a job and, for awaited jobs, where to report its result
type task struct {
	ctx  context.Context
	job  Job
	done chan error
}

// Pool represents a worker pool
type Pool struct {
	workers int
	queue   chan task
	wg      sync.WaitGroup
	quit    chan struct{}
	once    sync.Once
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		workers: workers,
		queue:   make(chan task, queueSize),
		quit:    make(chan struct{}),
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case t := <-p.queue:
			p.run(t)
		case <-p.quit:
			return
		}
	}
}

func (p *Pool) run(t task) {
	var err error
	if t.ctx.Err() != nil {
		err = t.ctx.Err()
	} else {
		err = t.job.Process(t.ctx)
	}
	if t.done != nil {
		t.done <- err
		return
	}
	if err != nil {
		logger.FromContext(t.ctx).Error(LogMsgWorkerJobFailed, "error", err)
	}
}

// Enqueue adds a fire-and-forget job; failures are only logged
func (p *Pool) Enqueue(ctx context.Context, job Job) error {
	select {
	case p.queue <- task{ctx: context.WithoutCancel(ctx), job: job}:
		return nil
	case <-p.quit:
		return ErrPoolStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Do runs job on a worker and waits for its result or for ctx to end
func (p *Pool) Do(ctx context.Context, job Job) error {
	done := make(chan error, 1)
	select {
	case p.queue <- task{ctx: ctx, job: job, done: done}:
	case <-p.quit:
		return ErrPoolStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop stops the workers and waits for them to finish
func (p *Pool) Stop() {
	p.once.Do(func() { close(p.quit) })
	p.wg.Wait()
}
