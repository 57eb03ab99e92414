package routing

// RouteRules represents the static asset rules configuration
type RouteRules struct {
	StaticPrefixes   []string `yaml:"static_prefixes" validate:"dive,startswith=/"`
	StaticExtensions []string `yaml:"static_extensions" validate:"dive,startswith=."`
	StaticFiles      []string `yaml:"static_files" validate:"dive,startswith=/"`
	ImageExtensions  []string `yaml:"image_extensions" validate:"dive,startswith=."`
}

// RoomPhotosPrefix is the volatile room photography directory. Requests under it
// are never cached.
const RoomPhotosPrefix = "/images/rooms/"

// DefaultRules returns the rules used when no route rules file is configured
func DefaultRules() *RouteRules {
	return &RouteRules{
		StaticPrefixes:   []string{"/_next/static/", "/icons/"},
		StaticExtensions: []string{".css", ".js"},
		StaticFiles:      []string{"/manifest.json"},
		ImageExtensions:  []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".avif", ".svg", ".ico"},
	}
}
