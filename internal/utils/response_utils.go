package utils

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go-offline-agent/internal/models"
)

// hopHeaders are connection-scoped and never forwarded or stored
var hopHeaders = []string{
	"Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Proxy-Connection",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

// RemoveHopHeaders deletes connection-scoped headers in place
func RemoveHopHeaders(header http.Header) {
	for _, h := range hopHeaders {
		header.Del(h)
	}
}

// AbsoluteRequest returns req with its URL resolved against origin.
// Requests that already carry an absolute URL are returned unchanged.
func AbsoluteRequest(req *http.Request, origin *url.URL) *http.Request {
	if req.URL.IsAbs() {
		return req
	}
	resolved := req.Clone(req.Context())
	u := *req.URL
	u.Scheme = origin.Scheme
	u.Host = origin.Host
	resolved.URL = &u
	resolved.Host = origin.Host
	return resolved
}

// Snapshot reads resp fully and returns a storable copy together with a
// replacement response that can still be handed to the caller.
func Snapshot(resp *http.Response, now time.Time) (*models.CachedResponse, *http.Response, error) {
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	header := resp.Header.Clone()
	if header == nil {
		header = make(http.Header)
	}
	RemoveHopHeaders(header)

	entry := &models.CachedResponse{
		Status:   resp.StatusCode,
		Header:   header,
		Body:     body,
		StoredAt: now.Unix(),
	}

	replay := new(http.Response)
	*replay = *resp
	replay.Body = io.NopCloser(bytes.NewReader(body))
	replay.ContentLength = int64(len(body))
	replay.TransferEncoding = nil
	return entry, replay, nil
}

// ToResponse rebuilds a live response from a stored entry
func ToResponse(entry *models.CachedResponse, req *http.Request) *http.Response {
	header := entry.Header.Clone()
	if header == nil {
		header = make(http.Header)
	}
	header.Set("Content-Length", strconv.Itoa(len(entry.Body)))

	return &http.Response{
		Status:        strconv.Itoa(entry.Status) + " " + http.StatusText(entry.Status),
		StatusCode:    entry.Status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(entry.Body)),
		ContentLength: int64(len(entry.Body)),
		Request:       req,
	}
}

// WithCacheStatus tags resp with the way it was produced
func WithCacheStatus(resp *http.Response, status models.CacheStatus) *http.Response {
	if resp.Header == nil {
		resp.Header = make(http.Header)
	}
	resp.Header.Set(models.CacheStatusHeader, string(status))
	return resp
}

// WriteResponse copies resp to w and closes its body
func WriteResponse(w http.ResponseWriter, resp *http.Response) error {
	defer resp.Body.Close()

	header := w.Header()
	for k, values := range resp.Header {
		for _, v := range values {
			header.Add(k, v)
		}
	}
	RemoveHopHeaders(header)
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("failed to write response body: %w", err)
	}
	return nil
}
