package cache

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"go-offline-agent/internal/interfaces"
)

// Ensure KeyBuilderImpl implements interfaces.KeyBuilder
var _ interfaces.KeyBuilder = (*KeyBuilderImpl)(nil)

// KeyBuilderImpl implements the KeyBuilder interface
type KeyBuilderImpl struct{}

// NewKeyBuilder creates a new KeyBuilder instance
func NewKeyBuilder() interfaces.KeyBuilder {
	return &KeyBuilderImpl{}
}

// Build creates the partition key of a request. The method is implicitly GET,
// so the key is the normalized absolute URL without its fragment.
func (kb *KeyBuilderImpl) Build(req *http.Request) (string, error) {
	if req == nil || req.URL == nil {
		return "", errors.New("request cannot be nil")
	}

	if !req.URL.IsAbs() || req.URL.Host == "" {
		return "", errors.New("request URL must be absolute")
	}

	u := url.URL{
		Scheme:   strings.ToLower(req.URL.Scheme),
		Host:     normalizeHost(strings.ToLower(req.URL.Scheme), req.URL.Host),
		Path:     req.URL.Path,
		RawPath:  req.URL.RawPath,
		RawQuery: req.URL.RawQuery,
	}
	if u.Path == "" {
		u.Path = "/"
	}

	return u.String(), nil
}

// normalizeHost lower-cases the host and drops the default port of the scheme
func normalizeHost(scheme, host string) string {
	host = strings.ToLower(host)
	switch {
	case scheme == "http" && strings.HasSuffix(host, ":80"):
		return strings.TrimSuffix(host, ":80")
	case scheme == "https" && strings.HasSuffix(host, ":443"):
		return strings.TrimSuffix(host, ":443")
	}
	return host
}
