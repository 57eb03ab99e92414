package routing

import (
	"path"
	"strings"

	"go.uber.org/zap"
)

// RulesConfig answers path lookups against a loaded RouteRules
type RulesConfig struct {
	rules            *RouteRules
	staticExtensions map[string]struct{}
	staticFiles      map[string]struct{}
	imageExtensions  map[string]struct{}
	logger           *zap.Logger
}

// NewRulesConfig creates a new RulesConfig instance
func NewRulesConfig(rules *RouteRules, logger *zap.Logger) *RulesConfig {
	if rules == nil {
		panic("rules cannot be nil")
	}
	return &RulesConfig{
		rules:            rules,
		staticExtensions: lowerSet(rules.StaticExtensions),
		staticFiles:      toSet(rules.StaticFiles),
		imageExtensions:  lowerSet(rules.ImageExtensions),
		logger:           logger,
	}
}

// IsStaticPath reports whether urlPath is part of the build output or the app shell
func (rc *RulesConfig) IsStaticPath(urlPath string) bool {
	if _, ok := rc.staticFiles[urlPath]; ok {
		return true
	}
	for _, prefix := range rc.rules.StaticPrefixes {
		if strings.HasPrefix(urlPath, prefix) {
			return true
		}
	}
	_, ok := rc.staticExtensions[extension(urlPath)]
	return ok
}

// IsImagePath reports whether urlPath has an image extension
func (rc *RulesConfig) IsImagePath(urlPath string) bool {
	_, ok := rc.imageExtensions[extension(urlPath)]
	return ok
}

// Rules returns the underlying rules
func (rc *RulesConfig) Rules() *RouteRules {
	return rc.rules
}

func extension(urlPath string) string {
	return strings.ToLower(path.Ext(urlPath))
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func lowerSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[strings.ToLower(v)] = struct{}{}
	}
	return set
}
