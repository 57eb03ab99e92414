package routing

import (
	"net/http"
	"net/url"
	"path"
	"strings"

	"go.uber.org/zap"

	"go-offline-agent/internal/interfaces"
	"go-offline-agent/internal/models"
)

// Classifier implements the RequestRouter interface
type Classifier struct {
	logger *zap.Logger
	origin *url.URL
	rules  *RulesConfig
}

// Ensure Classifier implements the RequestRouter interface
var _ interfaces.RequestRouter = (*Classifier)(nil)

// NewClassifier creates a new Classifier for the site origin
func NewClassifier(logger *zap.Logger, origin *url.URL, rules *RulesConfig) *Classifier {
	return &Classifier{
		logger: logger,
		origin: origin,
		rules:  rules,
	}
}

// Classify implements RequestRouter interface. Rules are applied in priority order.
func (c *Classifier) Classify(req *http.Request) models.Lane {
	if req.Method != http.MethodGet || !c.IsSameOrigin(req) {
		return models.LanePassThrough
	}

	urlPath := CleanPath(req.URL.Path)
	if strings.HasPrefix(urlPath, RoomPhotosPrefix) {
		return models.LaneBypass
	}

	if c.IsDocumentRequest(req) {
		return models.LaneDocument
	}

	if c.rules.IsStaticPath(urlPath) {
		return models.LaneStatic
	}
	return models.LaneDynamic
}

// IsDocumentRequest implements RequestRouter interface
func (c *Classifier) IsDocumentRequest(req *http.Request) bool {
	if req.Header.Get("Sec-Fetch-Dest") == "document" || req.Header.Get("Sec-Fetch-Mode") == "navigate" {
		return true
	}
	urlPath := CleanPath(req.URL.Path)
	return urlPath == "/" || strings.HasSuffix(strings.ToLower(urlPath), ".html")
}

// IsImageRequest implements RequestRouter interface
func (c *Classifier) IsImageRequest(req *http.Request) bool {
	if req.Header.Get("Sec-Fetch-Dest") == "image" {
		return true
	}
	return c.rules.IsImagePath(CleanPath(req.URL.Path))
}

// IsSameOrigin implements RequestRouter interface.
// Origin-form request targets always belong to the site.
func (c *Classifier) IsSameOrigin(req *http.Request) bool {
	if !req.URL.IsAbs() {
		return true
	}
	return strings.EqualFold(req.URL.Scheme, c.origin.Scheme) &&
		strings.EqualFold(canonicalHost(req.URL), canonicalHost(c.origin))
}

// CleanPath resolves dot segments and repeated slashes the way the origin will,
// keeping a trailing slash
func CleanPath(p string) string {
	if p == "" {
		return "/"
	}
	cleaned := path.Clean("/" + p)
	if cleaned != "/" && strings.HasSuffix(p, "/") {
		cleaned += "/"
	}
	return cleaned
}

func canonicalHost(u *url.URL) string {
	host := u.Hostname()
	port := u.Port()
	if port == "" ||
		(port == "80" && strings.EqualFold(u.Scheme, "http")) ||
		(port == "443" && strings.EqualFold(u.Scheme, "https")) {
		return host
	}
	return host + ":" + port
}
