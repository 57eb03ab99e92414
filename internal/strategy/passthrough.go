package strategy

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"go-offline-agent/internal/fallback"
	"go-offline-agent/internal/metrics"
	"go-offline-agent/internal/models"
)

// PassThrough forwards requests the agent does not intercept.
// Upstream responses are returned as they are.
type PassThrough struct {
	deps *Deps
}

func NewPassThrough(deps *Deps) *PassThrough {
	return &PassThrough{deps: deps}
}

func (e *PassThrough) Execute(ctx context.Context, req *http.Request) *http.Response {
	resp, err := e.deps.Fetcher.Fetch(ctx, req)
	if err != nil {
		e.deps.Logger.Warn("passthrough request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Error(err))
		metrics.RecordNetworkFailure(string(models.LanePassThrough), failureReason(err))
		metrics.RecordFallback("bad_gateway")
		return fallback.BadGatewayResponse(req)
	}
	return resp
}
