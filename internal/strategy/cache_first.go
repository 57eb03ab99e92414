package strategy

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"go-offline-agent/internal/cache/partition"
	"go-offline-agent/internal/fallback"
	"go-offline-agent/internal/metrics"
	"go-offline-agent/internal/models"
	"go-offline-agent/internal/upstream"
	"go-offline-agent/internal/utils"
)

// CacheFirst serves a stored entry when one exists and otherwise fetches from
// the network, storing eligible responses in the background
type CacheFirst struct {
	deps *Deps
	lane models.Lane
}

func NewCacheFirst(deps *Deps, lane models.Lane) *CacheFirst {
	return &CacheFirst{deps: deps, lane: lane}
}

type target struct {
	role   models.PartitionRole
	handle *partition.Handle
}

// targets returns the partitions consulted for req, in lookup order.
// The first one also receives the background fill.
func (e *CacheFirst) targets(req *http.Request) []target {
	p := e.deps.Partitions
	if e.deps.Router.IsImageRequest(req) {
		t := []target{{models.RoleImage, p.Image()}}
		if e.lane == models.LaneStatic {
			// icons are installed into the shell partition
			t = append(t, target{models.RoleShell, p.Shell()})
		}
		return t
	}
	if e.lane == models.LaneStatic {
		return []target{{models.RoleShell, p.Shell()}}
	}
	return []target{{models.RoleDynamic, p.Dynamic()}}
}

func (e *CacheFirst) Execute(ctx context.Context, req *http.Request) *http.Response {
	key, keyed := e.deps.key(req)
	targets := e.targets(req)

	if keyed {
		for _, t := range targets {
			if entry, found := t.handle.Match(key); found {
				metrics.RecordCacheHit(string(t.role))
				return utils.WithCacheStatus(utils.ToResponse(entry, req), models.CacheStatusHit)
			}
		}
		metrics.RecordCacheMiss(string(targets[0].role))
	}

	resp, err := e.deps.Fetcher.Fetch(ctx, req)
	if err != nil {
		e.deps.Logger.Info("asset network fetch failed",
			zap.String("lane", string(e.lane)),
			zap.String("url", req.URL.String()),
			zap.Error(err))
		metrics.RecordNetworkFailure(string(e.lane), failureReason(err))
		return e.fallback(req)
	}

	if !keyed || !e.storable(req, resp) {
		return utils.WithCacheStatus(resp, models.CacheStatusMiss)
	}

	entry, replay, err := utils.Snapshot(resp, e.deps.now())
	if err != nil {
		e.deps.Logger.Info("asset body read failed", zap.String("url", req.URL.String()), zap.Error(err))
		metrics.RecordNetworkFailure(string(e.lane), failureReason(err))
		return e.fallback(req)
	}

	fill := targets[0].handle
	e.deps.Tasks.Go("fill "+fill.Name(), func(context.Context) {
		if err := fill.Put(key, entry); err != nil {
			e.deps.Logger.Warn("background fill failed", zap.String("key", key), zap.Error(err))
		}
	})
	return utils.WithCacheStatus(replay, models.CacheStatusMiss)
}

// storable reports whether resp is a plain successful same-origin response
func (e *CacheFirst) storable(req *http.Request, resp *http.Response) bool {
	if resp.StatusCode != http.StatusOK {
		return false
	}
	if upstream.Redirected(req, resp) {
		return false
	}
	if resp.Request != nil && !e.deps.Router.IsSameOrigin(resp.Request) {
		return false
	}
	return e.deps.Router.IsSameOrigin(req)
}

func (e *CacheFirst) fallback(req *http.Request) *http.Response {
	switch {
	case e.deps.Router.IsDocumentRequest(req):
		metrics.RecordFallback("offline_page")
		return fallback.OfflineResponse(req)
	case e.deps.Router.IsImageRequest(req):
		metrics.RecordFallback("placeholder")
		return fallback.PlaceholderResponse(req)
	default:
		metrics.RecordFallback("service_unavailable")
		return fallback.ServiceUnavailableResponse(req)
	}
}
