package interfaces

import "context"

// TaskRunner keeps background work alive until the host drains it
type TaskRunner interface {
	Go(name string, fn func(ctx context.Context))
}
