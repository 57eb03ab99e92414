package strategy

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"go-offline-agent/internal/cache/partition"
	"go-offline-agent/internal/interfaces"
	"go-offline-agent/internal/models"
	"go-offline-agent/internal/upstream"
)

// Executor produces the response for one lane. It never fails: the worst
// outcome is a synthesized fallback response.
type Executor interface {
	Execute(ctx context.Context, req *http.Request) *http.Response
}

// Deps are shared by every executor
type Deps struct {
	Fetcher    interfaces.Fetcher
	Router     interfaces.RequestRouter
	Partitions *partition.Manager
	Keys       interfaces.KeyBuilder
	Tasks      interfaces.TaskRunner
	Logger     *zap.Logger
	Now        func() time.Time
}

func (d *Deps) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// key builds the partition key for req. Requests without a usable key are
// served from the network only.
func (d *Deps) key(req *http.Request) (string, bool) {
	key, err := d.Keys.Build(req)
	if err != nil {
		d.Logger.Warn("failed to build request key", zap.String("url", req.URL.String()), zap.Error(err))
		return "", false
	}
	return key, true
}

// failureReason labels a failed fetch for metrics
func failureReason(err error) string {
	if upstream.IsTimeout(err) {
		return "timeout"
	}
	return "error"
}

// NewTable returns the executor for every lane
func NewTable(deps *Deps) map[models.Lane]Executor {
	return map[models.Lane]Executor{
		models.LanePassThrough: NewPassThrough(deps),
		models.LaneBypass:      NewBypass(deps),
		models.LaneDocument:    NewNetworkFirst(deps),
		models.LaneStatic:      NewCacheFirst(deps, models.LaneStatic),
		models.LaneDynamic:     NewCacheFirst(deps, models.LaneDynamic),
	}
}
