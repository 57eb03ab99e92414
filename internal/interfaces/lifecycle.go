package interfaces

import (
	"context"
	"net/http"
)

//go:generate mockgen -package=mock -source=lifecycle.go -destination=mock/lifecycle.go

// Lifecycle is the dispatch table of the interception agent.
// Every event the host raises is delivered through exactly one method.
type Lifecycle interface {
	OnInstall(ctx context.Context) error
	OnActivate(ctx context.Context) error
	// OnIntercept always yields a response; failures are turned into fallbacks
	OnIntercept(ctx context.Context, req *http.Request) *http.Response
	OnSync(ctx context.Context, tag string) error
	OnPush(ctx context.Context, payload []byte) error
	OnNotificationClick(ctx context.Context, tag, action string) error
}
