package l2

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"go-offline-agent/internal/config"
	"go-offline-agent/internal/interfaces"
)

// Ensure RedisKeyDbClient implements interfaces.KeyDbClient
var _ interfaces.KeyDbClient = (*RedisKeyDbClient)(nil)

// RedisKeyDbClient wraps redis.Client to implement KeyDbClient interface
type RedisKeyDbClient struct {
	*redis.Client
	logger *zap.Logger
}

// NewRedisKeyDbClient creates a new RedisKeyDbClient instance
func NewRedisKeyDbClient(cfg *config.Config, keydbURL string, logger *zap.Logger) (*RedisKeyDbClient, error) {
	// Parse KeyDB URL
	parsedURL, err := url.Parse(keydbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse KeyDB URL: %w", err)
	}

	// Extract host and port
	host := parsedURL.Hostname()
	port := parsedURL.Port()
	if port == "" {
		port = "6379" // Default Redis port
	}

	// Create Redis client options
	opts := &redis.Options{
		Addr:         fmt.Sprintf("%s:%s", host, port),
		DialTimeout:  cfg.GetConnectTimeout(),
		ReadTimeout:  cfg.GetReadTimeout(),
		WriteTimeout: cfg.GetSendTimeout(),
		PoolSize:     cfg.L2.Keepalive.PoolSize,
		IdleTimeout:  cfg.GetMaxIdleTimeout(),
	}

	// Handle password if present in URL
	if parsedURL.User != nil {
		if password, ok := parsedURL.User.Password(); ok {
			opts.Password = password
		}
	}

	// Handle database number if present in URL path
	if parsedURL.Path != "" && len(parsedURL.Path) > 1 {
		if db, err := strconv.Atoi(parsedURL.Path[1:]); err == nil {
			opts.DB = db
		}
	}

	client := redis.NewClient(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), cfg.GetConnectTimeout())
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close() // Clean up the client
		return nil, fmt.Errorf("failed to connect to KeyDB at %s: %w", opts.Addr, err)
	}

	logger.Info("Connected to KeyDB",
		zap.String("address", opts.Addr),
		zap.Duration("connect_timeout", cfg.GetConnectTimeout()),
		zap.Int("pool_size", cfg.L2.Keepalive.PoolSize))

	return &RedisKeyDbClient{
		Client: client,
		logger: logger,
	}, nil
}
