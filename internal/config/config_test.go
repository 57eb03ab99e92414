package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"go-offline-agent/internal/models"
)

func createTestConfigFile(t *testing.T, content string) string {
	tmpFile, err := os.CreateTemp("", "agent_config_*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}

	if err := tmpFile.Close(); err != nil {
		t.Fatalf("Failed to close temp file: %v", err)
	}

	return tmpFile.Name()
}

func validTestConfig() *Config {
	cfg := &Config{
		Origin: "https://hotel.example.com",
		Partitions: models.PartitionNames{
			Shell:   "static-v4",
			Dynamic: "dynamic-v4",
			Image:   "images-v4",
		},
	}
	cfg.applyDefaults()
	return cfg
}

func TestLoadConfig(t *testing.T) {
	logger := zaptest.NewLogger(t)

	validConfig := `
origin: https://hotel.example.com
listen_addr: ":9000"

partitions:
  shell: static-v4
  dynamic: dynamic-v4
  image: images-v4

prefetch:
  shell: ["/", "/manifest.json"]
  hero_images: ["/images/hero/lobby.jpg", "/images/hero/pool.jpg"]

queue:
  booking_endpoint: /api/reservations
  replay_interval: 15000

push:
  title: Hotel Paraiso
  vibrate: [200, 100, 200]

l1:
  enabled: true
  size: 32

l2:
  enabled: true
  connection:
    connect_timeout: 2000
    send_timeout: 2000
    read_timeout: 2000
  keepalive:
    pool_size: 20
    max_idle_timeout: 20000

multi:
  enable_propagation: true
`

	configFile := createTestConfigFile(t, validConfig)
	defer os.Remove(configFile)

	config, err := LoadConfig(configFile, logger)
	require.NoError(t, err)

	assert.Equal(t, ":9000", config.ListenAddr)
	assert.Equal(t, "static-v4", config.Partitions.Shell)
	assert.Equal(t, "dynamic-v4", config.Partitions.Dynamic)
	assert.Equal(t, "images-v4", config.Partitions.Image)
	assert.Equal(t, []string{"/", "/manifest.json"}, config.Prefetch.Shell)
	assert.Len(t, config.Prefetch.HeroImages, 2)
	assert.Equal(t, "/api/reservations", config.Queue.BookingEndpoint)
	assert.Equal(t, "/api/contact", config.Queue.ContactEndpoint)
	assert.Equal(t, 15*time.Second, config.GetReplayInterval())
	assert.Equal(t, "Hotel Paraiso", config.Push.Title)
	assert.Equal(t, []int{200, 100, 200}, config.Push.Vibrate)
	assert.True(t, config.L1.Enabled)
	assert.Equal(t, 32, config.L1.Size)
	assert.True(t, config.L2.Enabled)
	assert.Equal(t, 20, config.L2.Keepalive.PoolSize)
	assert.Equal(t, 2*time.Second, config.GetConnectTimeout())
	assert.True(t, config.Multi.EnablePropagation)
}

func TestLoadConfig_WithDefaults(t *testing.T) {
	logger := zaptest.NewLogger(t)

	minimalConfig := `
origin: http://localhost:3000
partitions:
  shell: static-v1
  dynamic: dynamic-v1
  image: images-v1
`

	configFile := createTestConfigFile(t, minimalConfig)
	defer os.Remove(configFile)

	config, err := LoadConfig(configFile, logger)
	require.NoError(t, err)

	assert.Equal(t, ":8080", config.ListenAddr)
	assert.Contains(t, config.Prefetch.Shell, "/")
	assert.Contains(t, config.Prefetch.Shell, "/manifest.json")
	assert.Empty(t, config.Prefetch.HeroImages)
	assert.Equal(t, "/api/booking", config.Queue.BookingEndpoint)
	assert.Equal(t, time.Duration(0), config.GetReplayInterval())
	assert.Equal(t, "New offers are waiting for you!", config.Push.DefaultBody)
	assert.Equal(t, 15*time.Second, config.GetUpstreamTimeout())
	assert.Equal(t, 64, config.L1.Size)
	assert.Equal(t, "agent", config.L2.KeyPrefix)
	assert.Equal(t, 10, config.L2.Keepalive.PoolSize)
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	logger := zaptest.NewLogger(t)

	_, err := LoadConfig("/nonexistent/file.yaml", logger)
	assert.Error(t, err)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	logger := zaptest.NewLogger(t)

	invalidConfig := `
origin: https://hotel.example.com
partitions:
  shell: static-v4
  invalid yaml syntax [
`

	configFile := createTestConfigFile(t, invalidConfig)
	defer os.Remove(configFile)

	_, err := LoadConfig(configFile, logger)
	assert.Error(t, err)
}

func TestLoadConfig_MissingPartitions(t *testing.T) {
	logger := zaptest.NewLogger(t)

	configFile := createTestConfigFile(t, "origin: https://hotel.example.com\n")
	defer os.Remove(configFile)

	_, err := LoadConfig(configFile, logger)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing origin",
			mutate:  func(c *Config) { c.Origin = "" },
			wantErr: true,
		},
		{
			name:    "origin without http scheme",
			mutate:  func(c *Config) { c.Origin = "ftp://hotel.example.com" },
			wantErr: true,
		},
		{
			name:    "duplicate partition names",
			mutate:  func(c *Config) { c.Partitions.Image = c.Partitions.Dynamic },
			wantErr: true,
		},
		{
			name:    "partition named like a queue",
			mutate:  func(c *Config) { c.Partitions.Dynamic = models.QueueBooking },
			wantErr: true,
		},
		{
			name:    "relative prefetch path",
			mutate:  func(c *Config) { c.Prefetch.HeroImages = []string{"images/hero.jpg"} },
			wantErr: true,
		},
		{
			name:    "negative replay interval",
			mutate:  func(c *Config) { c.Queue.ReplayInterval = -1 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_OriginURL(t *testing.T) {
	cfg := validTestConfig()
	cfg.Origin = "https://hotel.example.com/some/path?x=1"

	origin, err := cfg.OriginURL()
	require.NoError(t, err)
	assert.Equal(t, "https://hotel.example.com", origin.String())
}

func TestConfig_TimeoutMethods(t *testing.T) {
	config := &Config{
		L2: L2Config{
			Connection: ConnectionConfig{
				ConnectTimeout: 1500,
				SendTimeout:    2500,
				ReadTimeout:    3500,
			},
			Keepalive: KeepaliveConfig{
				MaxIdleTimeout: 15000,
			},
		},
		Upstream: UpstreamConfig{Timeout: 5000},
		Queue:    QueueConfig{ReplayInterval: 30000},
	}

	tests := []struct {
		name     string
		method   func() time.Duration
		expected time.Duration
	}{
		{name: "GetConnectTimeout", method: config.GetConnectTimeout, expected: 1500 * time.Millisecond},
		{name: "GetSendTimeout", method: config.GetSendTimeout, expected: 2500 * time.Millisecond},
		{name: "GetReadTimeout", method: config.GetReadTimeout, expected: 3500 * time.Millisecond},
		{name: "GetMaxIdleTimeout", method: config.GetMaxIdleTimeout, expected: 15 * time.Second},
		{name: "GetUpstreamTimeout", method: config.GetUpstreamTimeout, expected: 5 * time.Second},
		{name: "GetReplayInterval", method: config.GetReplayInterval, expected: 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.method())
		})
	}
}

func TestConfig_PartialDefaults(t *testing.T) {
	config := &Config{
		L1: L1Config{
			Size: 250, // Custom value
		},
		L2: L2Config{
			Connection: ConnectionConfig{
				ConnectTimeout: 2000, // Custom value
			},
		},
		Push: PushConfig{Title: "Casa Azul"},
	}

	config.applyDefaults()

	assert.Equal(t, 250, config.L1.Size)
	assert.Equal(t, 2000, config.L2.Connection.ConnectTimeout)
	assert.Equal(t, 1000, config.L2.Connection.SendTimeout)
	assert.Equal(t, 1000, config.L2.Connection.ReadTimeout)
	assert.Equal(t, "Casa Azul", config.Push.Title)
	assert.Equal(t, "/", config.Push.OpenURL)
}
