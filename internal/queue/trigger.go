package queue

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"

	"go-offline-agent/internal/interfaces"
	"go-offline-agent/internal/models"
	"go-offline-agent/internal/scheduler"
)

// SyncFunc delivers a connectivity event for a queue tag
type SyncFunc func(ctx context.Context, tag string) error

// Trigger probes the origin periodically and raises a sync event for every
// queue with pending submissions once the origin is reachable
type Trigger struct {
	queue     *Queue
	fetcher   interfaces.Fetcher
	probeURL  *url.URL
	onSync    SyncFunc
	timeout   time.Duration
	logger    *zap.Logger
	scheduler *scheduler.Scheduler

	mu     sync.Mutex
	online bool
}

// NewTrigger creates a connectivity trigger. A non-positive interval disables it.
func NewTrigger(q *Queue, fetcher interfaces.Fetcher, probeURL *url.URL, interval time.Duration, onSync SyncFunc, logger *zap.Logger) *Trigger {
	t := &Trigger{
		queue:    q,
		fetcher:  fetcher,
		probeURL: probeURL,
		onSync:   onSync,
		timeout:  interval,
		logger:   logger,
		online:   true,
	}
	t.scheduler = scheduler.New(interval, t.Tick)
	return t
}

func (t *Trigger) Start() {
	t.scheduler.Start()
}

func (t *Trigger) Stop() {
	t.scheduler.Stop()
}

// Online reports the result of the last probe
func (t *Trigger) Online() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.online
}

// Tick probes the origin once and syncs pending queues when it answers
func (t *Trigger) Tick() {
	ctx := context.Background()
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	online := t.probe(ctx)

	t.mu.Lock()
	changed := online != t.online
	t.online = online
	t.mu.Unlock()

	if changed {
		t.logger.Info("connectivity changed", zap.Bool("online", online))
	}
	if !online {
		return
	}

	for _, tag := range models.QueueNames() {
		pending, err := t.queue.Pending(tag)
		if err != nil {
			t.logger.Warn("failed to inspect queue", zap.String("queue", tag), zap.Error(err))
			continue
		}
		if len(pending) == 0 {
			continue
		}
		if err := t.onSync(ctx, tag); err != nil {
			t.logger.Warn("sync failed", zap.String("tag", tag), zap.Error(err))
		}
	}
}

func (t *Trigger) probe(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, t.probeURL.String(), nil)
	if err != nil {
		return false
	}
	resp, err := t.fetcher.Fetch(ctx, req)
	if err != nil {
		return false
	}
	_ = resp.Body.Close()
	return true
}
