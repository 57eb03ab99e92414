package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"go-offline-agent/internal/interfaces"
	"go-offline-agent/internal/utils"
)

// HTTPFetcher performs network round trips on behalf of intercepted requests
type HTTPFetcher struct {
	client *http.Client
	origin *url.URL
	logger *zap.Logger
}

// Ensure HTTPFetcher implements the Fetcher interface
var _ interfaces.Fetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher creates a fetcher resolving relative requests against origin.
// A zero timeout leaves requests bounded only by their context.
func NewHTTPFetcher(origin *url.URL, timeout time.Duration, logger *zap.Logger) *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{Timeout: timeout},
		origin: origin,
		logger: logger,
	}
}

// Fetch implements Fetcher interface
func (f *HTTPFetcher) Fetch(ctx context.Context, req *http.Request) (*http.Response, error) {
	outbound := utils.AbsoluteRequest(req, f.origin).Clone(ctx)
	outbound.RequestURI = ""
	outbound.Host = outbound.URL.Host
	utils.RemoveHopHeaders(outbound.Header)

	start := time.Now()
	resp, err := f.client.Do(outbound)
	if err != nil {
		f.logger.Debug("network fetch failed",
			zap.String("method", outbound.Method),
			zap.String("url", outbound.URL.String()),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return nil, fmt.Errorf("failed to fetch %s: %w", outbound.URL.Redacted(), err)
	}

	f.logger.Debug("network fetch completed",
		zap.String("method", outbound.Method),
		zap.String("url", outbound.URL.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))
	return resp, nil
}

// Redirected reports whether resp was produced by following a redirect away from req
func Redirected(req *http.Request, resp *http.Response) bool {
	if resp.Request == nil || resp.Request.URL == nil {
		return false
	}
	final := resp.Request.URL
	if final.RequestURI() != req.URL.RequestURI() {
		return true
	}
	return req.URL.IsAbs() && !strings.EqualFold(final.Host, req.URL.Host)
}

// IsTimeout reports whether err was caused by a fetch deadline
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
