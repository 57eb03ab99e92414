package main

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisLogger adapts zap.Logger to the go-redis internal logger
type RedisLogger struct {
	logger *zap.Logger
}

// NewRedisLogger creates a new RedisLogger adapter
func NewRedisLogger(logger *zap.Logger) *RedisLogger {
	return &RedisLogger{logger: logger.Named("keydb")}
}

// Printf logs a go-redis message
func (l *RedisLogger) Printf(_ context.Context, format string, v ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, v...))
}

// SetRedisLogger routes go-redis logging through zap
func SetRedisLogger(logger *zap.Logger) {
	redis.SetLogger(NewRedisLogger(logger))
}
