package routing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func createTempYAMLFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "route_rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadRouteRules_Success(t *testing.T) {
	logger := zaptest.NewLogger(t)

	validYAML := `
static_prefixes:
  - /_next/static/
  - /icons/
  - /fonts/
static_extensions:
  - .css
  - .JS
  - .woff2
static_files:
  - /manifest.json
  - /robots.txt
`

	rules, err := LoadRouteRules(createTempYAMLFile(t, validYAML), logger)
	require.NoError(t, err)
	require.NotNil(t, rules)

	assert.Len(t, rules.Rules().StaticPrefixes, 3)
	assert.True(t, rules.IsStaticPath("/fonts/inter.woff2"))
	assert.True(t, rules.IsStaticPath("/robots.txt"))
	assert.True(t, rules.IsStaticPath("/chunks/app.js"))
	// image extensions fall back to defaults
	assert.True(t, rules.IsImagePath("/hero.webp"))
}

func TestLoadRouteRules_EmptyFileUsesDefaults(t *testing.T) {
	logger := zaptest.NewLogger(t)

	rules, err := LoadRouteRules(createTempYAMLFile(t, "{}\n"), logger)
	require.NoError(t, err)
	assert.Equal(t, DefaultRules(), rules.Rules())
}

func TestLoadRouteRules_FileNotFound(t *testing.T) {
	logger := zaptest.NewLogger(t)

	rules, err := LoadRouteRules("/nonexistent/file.yaml", logger)

	assert.Error(t, err)
	assert.Nil(t, rules)
	assert.Contains(t, err.Error(), "failed to open route rules file")
}

func TestLoadRouteRules_InvalidYAML(t *testing.T) {
	logger := zaptest.NewLogger(t)

	rules, err := LoadRouteRules(createTempYAMLFile(t, "static_prefixes: [unclosed\n"), logger)

	assert.Error(t, err)
	assert.Nil(t, rules)
	assert.Contains(t, err.Error(), "failed to decode YAML route rules")
}

func TestLoadRouteRules_UnknownField(t *testing.T) {
	logger := zaptest.NewLogger(t)

	_, err := LoadRouteRules(createTempYAMLFile(t, "bypass_prefixes:\n  - /images/\n"), logger)
	assert.Error(t, err)
}

func TestLoadRouteRules_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "relative prefix", yaml: "static_prefixes:\n  - icons/\n"},
		{name: "extension without dot", yaml: "static_extensions:\n  - css\n"},
		{name: "catch-all prefix", yaml: "static_prefixes:\n  - /\n"},
		{name: "room photos prefix", yaml: "static_prefixes:\n  - /images/rooms/\n"},
		{name: "parent of room photos", yaml: "static_prefixes:\n  - /images/\n"},
		{name: "relative file", yaml: "static_files:\n  - manifest.json\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := zaptest.NewLogger(t)
			_, err := LoadRouteRules(createTempYAMLFile(t, tt.yaml), logger)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "route rules validation failed")
		})
	}
}

func TestValidateRules_Defaults(t *testing.T) {
	assert.NoError(t, validateRules(DefaultRules()))
}
