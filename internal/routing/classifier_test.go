package routing

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"go-offline-agent/internal/models"
)

func newTestClassifier() *Classifier {
	origin := &url.URL{Scheme: "https", Host: "hotel.example.com"}
	return NewClassifier(zap.NewNop(), origin, NewRulesConfig(DefaultRules(), zap.NewNop()))
}

func request(method, target string, headers map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

func TestClassifier_Classify(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name    string
		method  string
		target  string
		headers map[string]string
		want    models.Lane
	}{
		{name: "post is passthrough", method: http.MethodPost, target: "/api/booking", want: models.LanePassThrough},
		{name: "head is passthrough", method: http.MethodHead, target: "/", want: models.LanePassThrough},
		{name: "cross origin is passthrough", method: http.MethodGet, target: "https://fonts.example.net/inter.css", want: models.LanePassThrough},
		{name: "other scheme is passthrough", method: http.MethodGet, target: "http://hotel.example.com/app.css", want: models.LanePassThrough},
		{name: "absolute same origin", method: http.MethodGet, target: "https://hotel.example.com:443/app.css", want: models.LaneStatic},
		{name: "room photo", method: http.MethodGet, target: "/images/rooms/101.jpg", want: models.LaneBypass},
		{
			name:    "room photo requested as document",
			method:  http.MethodGet,
			target:  "/images/rooms/gallery.html",
			headers: map[string]string{"Sec-Fetch-Dest": "document"},
			want:    models.LaneBypass,
		},
		{name: "root", method: http.MethodGet, target: "/", want: models.LaneDocument},
		{name: "html path", method: http.MethodGet, target: "/rooms/deluxe.html", want: models.LaneDocument},
		{
			name:    "navigation",
			method:  http.MethodGet,
			target:  "/rooms",
			headers: map[string]string{"Sec-Fetch-Mode": "navigate"},
			want:    models.LaneDocument,
		},
		{
			name:    "document destination",
			method:  http.MethodGet,
			target:  "/offers",
			headers: map[string]string{"Sec-Fetch-Dest": "document"},
			want:    models.LaneDocument,
		},
		{name: "build output", method: http.MethodGet, target: "/_next/static/chunks/main.js", want: models.LaneStatic},
		{name: "stylesheet", method: http.MethodGet, target: "/styles/site.CSS", want: models.LaneStatic},
		{name: "manifest", method: http.MethodGet, target: "/manifest.json", want: models.LaneStatic},
		{name: "icon", method: http.MethodGet, target: "/icons/icon-192x192.png", want: models.LaneStatic},
		{name: "api data", method: http.MethodGet, target: "/api/offers?city=rome", want: models.LaneDynamic},
		{name: "hero image", method: http.MethodGet, target: "/images/hero/lobby.jpg", want: models.LaneDynamic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(request(tt.method, tt.target, tt.headers)))
		})
	}
}

func TestClassifier_RoomPhotosNeverStatic(t *testing.T) {
	c := newTestClassifier()

	for _, target := range []string{
		"/images/rooms/101.jpg",
		"/images/rooms/suite/main.css",
		"/images/rooms/app.js",
		"/images//rooms/101.jpg",
		"/icons/../images/rooms/101.jpg",
		"/images/./rooms/101.jpg",
		"//images/rooms/101.jpg",
	} {
		assert.Equal(t, models.LaneBypass, c.Classify(request(http.MethodGet, target, nil)), target)
	}
}

func TestCleanPath(t *testing.T) {
	tests := map[string]string{
		"":                              "/",
		"/":                             "/",
		"/images//rooms/101.jpg":        "/images/rooms/101.jpg",
		"/icons/../images/rooms/":       "/images/rooms/",
		"/_next/static/./chunks/app.js": "/_next/static/chunks/app.js",
		"/../../etc/passwd":             "/etc/passwd",
	}
	for in, want := range tests {
		assert.Equal(t, want, CleanPath(in), in)
	}
}

func TestClassifier_IsImageRequest(t *testing.T) {
	c := newTestClassifier()

	assert.True(t, c.IsImageRequest(request(http.MethodGet, "/images/hero/lobby.JPG", nil)))
	assert.True(t, c.IsImageRequest(request(http.MethodGet, "/icons/icon-72x72.png", nil)))
	assert.True(t, c.IsImageRequest(request(http.MethodGet, "/api/avatar", map[string]string{"Sec-Fetch-Dest": "image"})))
	assert.False(t, c.IsImageRequest(request(http.MethodGet, "/app.css", nil)))
}

func TestClassifier_IsDocumentRequest(t *testing.T) {
	c := newTestClassifier()

	assert.True(t, c.IsDocumentRequest(request(http.MethodGet, "/", nil)))
	assert.True(t, c.IsDocumentRequest(request(http.MethodGet, "/about.HTML", nil)))
	assert.False(t, c.IsDocumentRequest(request(http.MethodGet, "/api/offers", nil)))
}

func TestClassifier_IsSameOrigin(t *testing.T) {
	c := newTestClassifier()

	assert.True(t, c.IsSameOrigin(request(http.MethodGet, "/rooms", nil)))
	assert.True(t, c.IsSameOrigin(request(http.MethodGet, "https://HOTEL.example.com/rooms", nil)))
	assert.False(t, c.IsSameOrigin(request(http.MethodGet, "https://hotel.example.com:8443/rooms", nil)))
	assert.False(t, c.IsSameOrigin(request(http.MethodGet, "https://cdn.example.com/rooms", nil)))
}
