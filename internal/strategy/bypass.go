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

// Bypass always goes to the network and never touches a partition
type Bypass struct {
	deps *Deps
}

func NewBypass(deps *Deps) *Bypass {
	return &Bypass{deps: deps}
}

func (e *Bypass) Execute(ctx context.Context, req *http.Request) *http.Response {
	resp, err := e.deps.Fetcher.Fetch(ctx, req)
	if err != nil {
		e.deps.Logger.Info("volatile image unavailable, serving placeholder",
			zap.String("url", req.URL.String()),
			zap.Error(err))
		metrics.RecordNetworkFailure(string(models.LaneBypass), failureReason(err))
		metrics.RecordFallback("placeholder")
		return fallback.PlaceholderResponse(req)
	}
	return utils.WithCacheStatus(resp, models.CacheStatusBypass)
}
