package queue

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-offline-agent/internal/cache/partition"
	"go-offline-agent/internal/config"
	"go-offline-agent/internal/interfaces"
	"go-offline-agent/internal/metrics"
	"go-offline-agent/internal/models"
)

var (
	ErrUnknownQueue   = errors.New("unknown submission queue")
	ErrInvalidPayload = errors.New("submission payload is not valid JSON")
)

const contentTypeJSON = "application/json"

// Replay outcomes
const (
	OutcomeDelivered = "delivered"
	OutcomeRejected  = "rejected"
	OutcomeNetwork   = "network_error"
	OutcomeMalformed = "malformed"
)

// Queue stores form submissions captured offline and replays them to their endpoints
type Queue struct {
	partitions *partition.Manager
	fetcher    interfaces.Fetcher
	endpoints  map[string]*url.URL
	locks      map[string]*sync.Mutex
	logger     *zap.Logger
	now        func() time.Time
}

// NewQueue creates the queue set with endpoints resolved against origin
func NewQueue(cfg *config.QueueConfig, origin *url.URL, partitions *partition.Manager, fetcher interfaces.Fetcher, logger *zap.Logger) (*Queue, error) {
	paths := map[string]string{
		models.QueueBooking: cfg.BookingEndpoint,
		models.QueueContact: cfg.ContactEndpoint,
	}

	endpoints := make(map[string]*url.URL, len(paths))
	locks := make(map[string]*sync.Mutex, len(paths))
	for name, path := range paths {
		ref, err := url.Parse(path)
		if err != nil {
			return nil, fmt.Errorf("invalid endpoint for %s: %w", name, err)
		}
		endpoints[name] = origin.ResolveReference(ref)
		locks[name] = &sync.Mutex{}
	}

	partitions.Retain(models.QueueNames()...)

	return &Queue{
		partitions: partitions,
		fetcher:    fetcher,
		endpoints:  endpoints,
		locks:      locks,
		logger:     logger,
		now:        time.Now,
	}, nil
}

// Endpoint returns the replay endpoint of a queue
func (q *Queue) Endpoint(queue string) (*url.URL, error) {
	endpoint, ok := q.endpoints[queue]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownQueue, queue)
	}
	return endpoint, nil
}

// Enqueue stores payload verbatim under a new submission id
func (q *Queue) Enqueue(ctx context.Context, queue string, payload []byte) (*models.Submission, error) {
	if _, err := q.Endpoint(queue); err != nil {
		return nil, err
	}
	if !json.Valid(payload) {
		return nil, ErrInvalidPayload
	}

	sub := &models.Submission{
		ID:         uuid.NewString(),
		Queue:      queue,
		Payload:    append(json.RawMessage(nil), payload...),
		CapturedAt: q.now().UTC(),
	}

	entry := &models.CachedResponse{
		Status:   http.StatusOK,
		Header:   http.Header{"Content-Type": []string{contentTypeJSON}},
		Body:     sub.Payload,
		StoredAt: sub.CapturedAt.Unix(),
	}
	if err := q.partitions.Handle(queue).Put(sub.ID, entry); err != nil {
		return nil, fmt.Errorf("failed to store submission: %w", err)
	}

	metrics.RecordSubmissionEnqueued(queue)
	q.logger.Info("submission queued", zap.String("queue", queue), zap.String("id", sub.ID))
	return sub, nil
}

// Pending lists the stored submissions of a queue, oldest first
func (q *Queue) Pending(queue string) ([]models.Submission, error) {
	if _, err := q.Endpoint(queue); err != nil {
		return nil, err
	}

	handle := q.partitions.Handle(queue)
	ids, err := handle.Keys()
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", queue, err)
	}

	subs := make([]models.Submission, 0, len(ids))
	for _, id := range ids {
		entry, found := handle.Match(id)
		if !found {
			continue
		}
		subs = append(subs, models.Submission{
			ID:         id,
			Queue:      queue,
			Payload:    entry.Body,
			CapturedAt: time.Unix(entry.StoredAt, 0).UTC(),
		})
	}
	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].CapturedAt.Before(subs[j].CapturedAt)
	})
	return subs, nil
}

// Replay posts every stored submission of queue to its endpoint. Delivered
// submissions are removed; everything else stays for the next trigger.
// Per-entry failures are logged and counted, never returned.
func (q *Queue) Replay(ctx context.Context, queue string) (models.ReplayResult, error) {
	result := models.ReplayResult{Queue: queue}

	endpoint, err := q.Endpoint(queue)
	if err != nil {
		return result, err
	}

	lock := q.locks[queue]
	lock.Lock()
	defer lock.Unlock()

	handle := q.partitions.Handle(queue)
	ids, err := handle.Keys()
	if err != nil {
		return result, fmt.Errorf("failed to list %s: %w", queue, err)
	}

	for _, id := range ids {
		entry, found := handle.Match(id)
		if !found {
			continue
		}
		result.Attempted++

		outcome := q.deliver(ctx, endpoint, queue, id, entry.Body)
		metrics.RecordSubmissionReplay(queue, outcome)
		if outcome != OutcomeDelivered {
			result.Failed++
			continue
		}

		if err := handle.Delete(id); err != nil {
			q.logger.Warn("failed to remove delivered submission",
				zap.String("queue", queue), zap.String("id", id), zap.Error(err))
		}
		result.Delivered++
	}

	q.logger.Info("queue replayed",
		zap.String("queue", queue),
		zap.Int("attempted", result.Attempted),
		zap.Int("delivered", result.Delivered),
		zap.Int("failed", result.Failed))
	return result, nil
}

func (q *Queue) deliver(ctx context.Context, endpoint *url.URL, queue, id string, payload []byte) string {
	if !json.Valid(payload) {
		q.logger.Error("stored submission is malformed", zap.String("queue", queue), zap.String("id", id))
		return OutcomeMalformed
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		q.logger.Error("failed to build replay request", zap.String("queue", queue), zap.String("id", id), zap.Error(err))
		return OutcomeNetwork
	}
	req.Header.Set("Content-Type", contentTypeJSON)

	resp, err := q.fetcher.Fetch(ctx, req)
	if err != nil {
		q.logger.Warn("submission replay failed", zap.String("queue", queue), zap.String("id", id), zap.Error(err))
		return OutcomeNetwork
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		q.logger.Warn("submission rejected by endpoint",
			zap.String("queue", queue), zap.String("id", id), zap.Int("status", resp.StatusCode))
		return OutcomeRejected
	}
	return OutcomeDelivered
}
