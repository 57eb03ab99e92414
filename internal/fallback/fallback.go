// Package fallback synthesizes the responses served when neither the network
// nor any partition can satisfy a request.
package fallback

import (
	"bytes"
	"io"
	"net/http"
	"strconv"

	"go-offline-agent/internal/models"
)

const (
	ContentTypeHTML  = "text/html; charset=utf-8"
	ContentTypeSVG   = "image/svg+xml"
	ContentTypePlain = "text/plain; charset=utf-8"
)

const offlinePage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>You are offline</title>
<style>
body{margin:0;min-height:100vh;display:flex;align-items:center;justify-content:center;font-family:system-ui,sans-serif;background:#f5f2ec;color:#2b2b2b}
main{max-width:28rem;padding:2rem;text-align:center}
h1{font-size:1.5rem;margin:0 0 .75rem}
p{margin:0 0 1.5rem;line-height:1.5}
button{font:inherit;padding:.6rem 1.6rem;border:0;border-radius:.4rem;background:#8a6d3b;color:#fff;cursor:pointer}
</style>
</head>
<body>
<main>
<h1>You are offline</h1>
<p>This page is not available without a connection. Check your network and try again.</p>
<button type="button" onclick="window.location.reload()">Retry</button>
</main>
</body>
</html>
`

const placeholderImage = `<svg xmlns="http://www.w3.org/2000/svg" width="400" height="300" viewBox="0 0 400 300">` +
	`<rect width="400" height="300" fill="#d9d4cb"/>` +
	`<text x="200" y="155" font-family="sans-serif" font-size="20" fill="#6b6357" text-anchor="middle">Image unavailable offline</text>` +
	`</svg>`

const serviceUnavailable = "Service Unavailable"

// OfflinePage returns the self-contained offline document
func OfflinePage() []byte {
	return []byte(offlinePage)
}

// PlaceholderImage returns the inline vector image served for unavailable images
func PlaceholderImage() []byte {
	return []byte(placeholderImage)
}

// OfflineResponse builds the offline document response
func OfflineResponse(req *http.Request) *http.Response {
	resp := build(req, http.StatusOK, ContentTypeHTML, OfflinePage())
	resp.Header.Set("Cache-Control", "no-store")
	return resp
}

// PlaceholderResponse builds the placeholder image response
func PlaceholderResponse(req *http.Request) *http.Response {
	resp := build(req, http.StatusOK, ContentTypeSVG, PlaceholderImage())
	resp.Header.Set("Cache-Control", "no-store")
	return resp
}

// ServiceUnavailableResponse builds the generic 503 response
func ServiceUnavailableResponse(req *http.Request) *http.Response {
	return build(req, http.StatusServiceUnavailable, ContentTypePlain, []byte(serviceUnavailable))
}

// BadGatewayResponse builds the response returned when a passthrough request cannot reach the network
func BadGatewayResponse(req *http.Request) *http.Response {
	return build(req, http.StatusBadGateway, ContentTypePlain, []byte(http.StatusText(http.StatusBadGateway)))
}

func build(req *http.Request, status int, contentType string, body []byte) *http.Response {
	header := make(http.Header)
	header.Set("Content-Type", contentType)
	header.Set("Content-Length", strconv.Itoa(len(body)))
	header.Set(models.CacheStatusHeader, string(models.CacheStatusFallback))

	return &http.Response{
		Status:        strconv.Itoa(status) + " " + http.StatusText(status),
		StatusCode:    status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}
}
