package routing

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// LoadRouteRules loads static asset rules from a YAML file.
// Sections missing from the file keep their default values.
func LoadRouteRules(rulesPath string, logger *zap.Logger) (*RulesConfig, error) {
	logger.Info("Loading route rules", zap.String("path", rulesPath))

	file, err := os.Open(rulesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open route rules file: %w", err)
	}
	defer file.Close()

	var rules RouteRules
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&rules); err != nil {
		return nil, fmt.Errorf("failed to decode YAML route rules: %w", err)
	}

	applyDefaults(&rules)

	if err := validateRules(&rules); err != nil {
		return nil, fmt.Errorf("route rules validation failed: %w", err)
	}

	logger.Info("Route rules loaded successfully",
		zap.Int("static_prefixes", len(rules.StaticPrefixes)),
		zap.Int("static_extensions", len(rules.StaticExtensions)),
		zap.Int("static_files", len(rules.StaticFiles)))

	return NewRulesConfig(&rules, logger), nil
}

func applyDefaults(rules *RouteRules) {
	defaults := DefaultRules()
	if rules.StaticPrefixes == nil {
		rules.StaticPrefixes = defaults.StaticPrefixes
	}
	if rules.StaticExtensions == nil {
		rules.StaticExtensions = defaults.StaticExtensions
	}
	if rules.StaticFiles == nil {
		rules.StaticFiles = defaults.StaticFiles
	}
	if rules.ImageExtensions == nil {
		rules.ImageExtensions = defaults.ImageExtensions
	}
}

// validateRules checks field formats and rejects rules that would cache room photos
func validateRules(rules *RouteRules) error {
	if err := validate.Struct(rules); err != nil {
		return err
	}
	for _, prefix := range rules.StaticPrefixes {
		if prefix == "/" {
			return fmt.Errorf("static prefix %q matches every path", prefix)
		}
		if hasPrefixEither(prefix, RoomPhotosPrefix) {
			return fmt.Errorf("static prefix %q overlaps %s", prefix, RoomPhotosPrefix)
		}
	}
	return nil
}

func hasPrefixEither(a, b string) bool {
	if len(a) > len(b) {
		a, b = b, a
	}
	return b[:len(a)] == a
}
