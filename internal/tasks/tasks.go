// Package tasks tracks background work that must finish before the agent
// may be torn down.
package tasks

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"go-offline-agent/internal/interfaces"
	"go-offline-agent/internal/metrics"
)

// Ensure List implements interfaces.TaskRunner
var _ interfaces.TaskRunner = (*List)(nil)

// List is a structured set of in-flight background tasks.
// Tasks run detached from the request that spawned them and are awaited by Drain.
// Go may be called while a Drain is in progress.
type List struct {
	ctx     context.Context
	logger  *zap.Logger
	mu      sync.Mutex
	pending int
	// idle is closed when pending drops back to zero
	idle chan struct{}
}

// New creates an empty task list
func New(logger *zap.Logger) *List {
	return &List{
		ctx:    context.Background(),
		logger: logger,
	}
}

// Go starts fn in the background and keeps the list alive until it returns
func (l *List) Go(name string, fn func(ctx context.Context)) {
	l.mu.Lock()
	if l.pending == 0 {
		l.idle = make(chan struct{})
	}
	l.pending++
	l.mu.Unlock()
	metrics.UpdatePendingTasks(1)

	go func() {
		defer l.done()
		defer func() {
			if r := recover(); r != nil {
				l.logger.Error("Background task panicked",
					zap.String("task", name),
					zap.String("panic", fmt.Sprint(r)))
			}
		}()

		fn(l.ctx)
	}()
}

func (l *List) done() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pending--
	if l.pending == 0 {
		close(l.idle)
	}
	metrics.UpdatePendingTasks(-1)
}

// Pending returns the number of tasks that have not finished yet
func (l *List) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pending
}

// Drain waits until no task is running or ctx is done. Tasks started by
// running tasks are awaited too.
func (l *List) Drain(ctx context.Context) error {
	for {
		l.mu.Lock()
		if l.pending == 0 {
			l.mu.Unlock()
			return nil
		}
		idle := l.idle
		l.mu.Unlock()

		select {
		case <-idle:
		case <-ctx.Done():
			return fmt.Errorf("draining background tasks: %w", ctx.Err())
		}
	}
}
