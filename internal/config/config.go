package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"go-offline-agent/internal/models"
)

var validate = validator.New()

// Config represents the main configuration structure
type Config struct {
	Origin     string                `yaml:"origin" validate:"required,url"`
	ListenAddr string                `yaml:"listen_addr"`
	Partitions models.PartitionNames `yaml:"partitions"`
	Prefetch   PrefetchConfig        `yaml:"prefetch"`
	Queue      QueueConfig           `yaml:"queue"`
	Push       PushConfig            `yaml:"push"`
	Upstream   UpstreamConfig        `yaml:"upstream"`
	L1         L1Config              `yaml:"l1"`
	L2         L2Config              `yaml:"l2"`
	Multi      MultiConfig           `yaml:"multi"`
}

// PrefetchConfig lists the paths stored at install time
type PrefetchConfig struct {
	Shell      []string `yaml:"shell" validate:"dive,startswith=/"`
	HeroImages []string `yaml:"hero_images" validate:"dive,startswith=/"`
}

// QueueConfig configures deferred submission replay
type QueueConfig struct {
	BookingEndpoint string `yaml:"booking_endpoint" validate:"startswith=/"`
	ContactEndpoint string `yaml:"contact_endpoint" validate:"startswith=/"`
	ProbePath       string `yaml:"probe_path" validate:"startswith=/"`
	ReplayInterval  int    `yaml:"replay_interval" validate:"min=0"` // milliseconds, 0 disables the trigger
}

// PushConfig configures rendered notifications
type PushConfig struct {
	Title       string `yaml:"title"`
	DefaultBody string `yaml:"default_body"`
	Icon        string `yaml:"icon"`
	Badge       string `yaml:"badge"`
	OpenURL     string `yaml:"open_url" validate:"startswith=/"`
	Vibrate     []int  `yaml:"vibrate" validate:"dive,min=0"`
}

// UpstreamConfig configures the network fetcher
type UpstreamConfig struct {
	Timeout int `yaml:"timeout" validate:"min=0"` // milliseconds
}

// L1Config configures the in-memory partition store
type L1Config struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size" validate:"min=0"` // MB per partition
}

// L2Config configures the KeyDB partition store
type L2Config struct {
	Enabled    bool             `yaml:"enabled"`
	KeyPrefix  string           `yaml:"key_prefix"`
	Connection ConnectionConfig `yaml:"connection"`
	Keepalive  KeepaliveConfig  `yaml:"keepalive"`
}

// MultiConfig configures the layered partition store
type MultiConfig struct {
	EnablePropagation bool `yaml:"enable_propagation"`
}

// ConnectionConfig holds KeyDB timeouts in milliseconds
type ConnectionConfig struct {
	ConnectTimeout int `yaml:"connect_timeout"`
	SendTimeout    int `yaml:"send_timeout"`
	ReadTimeout    int `yaml:"read_timeout"`
}

// KeepaliveConfig holds KeyDB pool settings
type KeepaliveConfig struct {
	PoolSize       int `yaml:"pool_size"`
	MaxIdleTimeout int `yaml:"max_idle_timeout"` // milliseconds
}

// LoadConfig loads configuration from file path
func LoadConfig(configPath string, logger *zap.Logger) (*Config, error) {
	logger.Info("Loading configuration", zap.String("path", configPath))

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var config Config
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to decode YAML config: %w", err)
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the configuration after defaults are applied
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	names := c.Partitions.Set()
	if len(names) != 3 {
		return fmt.Errorf("partition names must be distinct, got %q, %q, %q",
			c.Partitions.Shell, c.Partitions.Dynamic, c.Partitions.Image)
	}
	for _, queue := range models.QueueNames() {
		if _, clash := names[queue]; clash {
			return fmt.Errorf("partition name %q is reserved for a submission queue", queue)
		}
	}
	if _, err := c.OriginURL(); err != nil {
		return err
	}
	return nil
}

// OriginURL returns the parsed site origin
func (c *Config) OriginURL() (*url.URL, error) {
	origin, err := url.Parse(c.Origin)
	if err != nil {
		return nil, fmt.Errorf("failed to parse origin: %w", err)
	}
	if origin.Scheme != "http" && origin.Scheme != "https" {
		return nil, fmt.Errorf("origin must be http or https, got %q", c.Origin)
	}
	if origin.Host == "" {
		return nil, fmt.Errorf("origin must include a host, got %q", c.Origin)
	}
	return &url.URL{Scheme: origin.Scheme, Host: origin.Host}, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = ":8080"
	}

	if c.Prefetch.Shell == nil {
		c.Prefetch.Shell = []string{
			"/",
			"/manifest.json",
			"/icons/icon-192x192.png",
			"/icons/icon-512x512.png",
		}
	}

	if c.Queue.BookingEndpoint == "" {
		c.Queue.BookingEndpoint = "/api/booking"
	}
	if c.Queue.ContactEndpoint == "" {
		c.Queue.ContactEndpoint = "/api/contact"
	}
	if c.Queue.ProbePath == "" {
		c.Queue.ProbePath = "/"
	}

	if c.Push.Title == "" {
		c.Push.Title = "Hotel"
	}
	if c.Push.DefaultBody == "" {
		c.Push.DefaultBody = "New offers are waiting for you!"
	}
	if c.Push.Icon == "" {
		c.Push.Icon = "/icons/icon-192x192.png"
	}
	if c.Push.Badge == "" {
		c.Push.Badge = "/icons/icon-72x72.png"
	}
	if c.Push.OpenURL == "" {
		c.Push.OpenURL = "/"
	}
	if c.Push.Vibrate == nil {
		c.Push.Vibrate = []int{100, 50, 100}
	}

	if c.Upstream.Timeout == 0 {
		c.Upstream.Timeout = 15000
	}

	if c.L1.Size == 0 {
		c.L1.Size = 64
	}

	if c.L2.KeyPrefix == "" {
		c.L2.KeyPrefix = "agent"
	}
	if c.L2.Connection.ConnectTimeout == 0 {
		c.L2.Connection.ConnectTimeout = 1000
	}
	if c.L2.Connection.SendTimeout == 0 {
		c.L2.Connection.SendTimeout = 1000
	}
	if c.L2.Connection.ReadTimeout == 0 {
		c.L2.Connection.ReadTimeout = 1000
	}
	if c.L2.Keepalive.PoolSize == 0 {
		c.L2.Keepalive.PoolSize = 10
	}
	if c.L2.Keepalive.MaxIdleTimeout == 0 {
		c.L2.Keepalive.MaxIdleTimeout = 10000
	}
}

// GetConnectTimeout returns the KeyDB connect timeout
func (c *Config) GetConnectTimeout() time.Duration {
	return time.Duration(c.L2.Connection.ConnectTimeout) * time.Millisecond
}

// GetSendTimeout returns the KeyDB write timeout
func (c *Config) GetSendTimeout() time.Duration {
	return time.Duration(c.L2.Connection.SendTimeout) * time.Millisecond
}

// GetReadTimeout returns the KeyDB read timeout
func (c *Config) GetReadTimeout() time.Duration {
	return time.Duration(c.L2.Connection.ReadTimeout) * time.Millisecond
}

// GetMaxIdleTimeout returns the KeyDB idle connection timeout
func (c *Config) GetMaxIdleTimeout() time.Duration {
	return time.Duration(c.L2.Keepalive.MaxIdleTimeout) * time.Millisecond
}

// GetUpstreamTimeout returns the network fetch timeout
func (c *Config) GetUpstreamTimeout() time.Duration {
	return time.Duration(c.Upstream.Timeout) * time.Millisecond
}

// GetReplayInterval returns how often the connectivity trigger runs
func (c *Config) GetReplayInterval() time.Duration {
	return time.Duration(c.Queue.ReplayInterval) * time.Millisecond
}
