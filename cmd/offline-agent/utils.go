package main

import (
	"errors"
	"net/url"
	"os"
	"strings"

	"go.uber.org/zap"
)

// GetConfigPath returns the agent configuration file path
func GetConfigPath() string {
	if path := os.Getenv("AGENT_CONFIG_FILE"); path != "" {
		return path
	}
	return "/app/agent_config.yaml"
}

// GetRouteRulesPath returns the route rules file path; empty means built-in defaults
func GetRouteRulesPath() string {
	return os.Getenv("ROUTE_RULES_FILE")
}

// GetPushSecret returns the secret push delivery tokens are signed with
func GetPushSecret() string {
	return strings.TrimSpace(os.Getenv("PUSH_JWT_SECRET"))
}

// GetAdminSecret returns the secret control endpoint tokens are signed with
func GetAdminSecret() string {
	return strings.TrimSpace(os.Getenv("CONTROL_JWT_SECRET"))
}

// GetKeyDBURL returns KeyDB URL with the following priority:
// 1. KEYDB_URL environment variable
// 2. AGENT_KEYDB_URL_FILE file content
// 3. Default value
func GetKeyDBURL(logger *zap.Logger) (string, error) {
	if keydbURL := os.Getenv("KEYDB_URL"); keydbURL != "" {
		logger.Debug("Using KeyDB URL from environment variable")
		return validateKeyDBURL(keydbURL)
	}

	connectionFile := os.Getenv("AGENT_KEYDB_URL_FILE")
	if connectionFile == "" {
		connectionFile = "/app/.keydb-url"
	}

	if content, err := os.ReadFile(connectionFile); err == nil {
		keydbURL := strings.TrimSpace(string(content))
		if len(keydbURL) > 0 {
			logger.Debug("Using KeyDB URL from connection file", zap.String("file", connectionFile))
			return validateKeyDBURL(keydbURL)
		}
	} else {
		logger.Debug("KeyDB connection file not found or empty", zap.String("file", connectionFile))
	}

	logger.Debug("Using default KeyDB URL")
	return "redis://keydb:6379", nil
}

func validateKeyDBURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "redis" && u.Scheme != "rediss" {
		return "", errors.New("KeyDB URL must use the redis scheme")
	}
	return raw, nil
}

func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "invalid"
	}
	return u.Redacted()
}
