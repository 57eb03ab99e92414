package strategy

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"go-offline-agent/internal/fallback"
	"go-offline-agent/internal/metrics"
	"go-offline-agent/internal/models"
	"go-offline-agent/internal/utils"
)

// NetworkFirst serves documents from the network and keeps the last good copy
// in the dynamic partition for offline use. Offline, the dynamic copy wins
// over the one stored in the shell at install time.
type NetworkFirst struct {
	deps *Deps
}

func NewNetworkFirst(deps *Deps) *NetworkFirst {
	return &NetworkFirst{deps: deps}
}

func (e *NetworkFirst) Execute(ctx context.Context, req *http.Request) *http.Response {
	key, keyed := e.deps.key(req)
	dynamic := e.deps.Partitions.Dynamic()

	resp, err := e.deps.Fetcher.Fetch(ctx, req)
	if err == nil {
		if !keyed || !isOK(resp) {
			return utils.WithCacheStatus(resp, models.CacheStatusNetwork)
		}

		entry, replay, snapErr := utils.Snapshot(resp, e.deps.now())
		if snapErr == nil {
			// stored before the live response is returned
			if putErr := dynamic.Put(key, entry); putErr != nil {
				e.deps.Logger.Warn("failed to store document", zap.String("key", key), zap.Error(putErr))
			}
			return utils.WithCacheStatus(replay, models.CacheStatusNetwork)
		}
		err = snapErr
	}

	e.deps.Logger.Info("document network fetch failed", zap.String("url", req.URL.String()), zap.Error(err))
	metrics.RecordNetworkFailure(string(models.LaneDocument), failureReason(err))

	if keyed {
		if entry, found := dynamic.Match(key); found {
			metrics.RecordCacheHit(string(models.RoleDynamic))
			e.servingStored(key, models.RoleDynamic, entry)
			return utils.WithCacheStatus(utils.ToResponse(entry, req), models.CacheStatusHit)
		}
		metrics.RecordCacheMiss(string(models.RoleDynamic))

		// install-time copy of the shell document
		if entry, found := e.deps.Partitions.Shell().Match(key); found {
			metrics.RecordCacheHit(string(models.RoleShell))
			e.servingStored(key, models.RoleShell, entry)
			return utils.WithCacheStatus(utils.ToResponse(entry, req), models.CacheStatusHit)
		}
	}

	metrics.RecordFallback("offline_page")
	return fallback.OfflineResponse(req)
}

func (e *NetworkFirst) servingStored(key string, role models.PartitionRole, entry *models.CachedResponse) {
	e.deps.Logger.Info("serving stored document",
		zap.String("key", key),
		zap.String("partition", string(role)),
		zap.Duration("age", entry.Age(e.deps.now())))
}

func isOK(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
