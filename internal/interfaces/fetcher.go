package interfaces

import (
	"context"
	"net/http"
)

//go:generate mockgen -package=mock -source=fetcher.go -destination=mock/fetcher.go

// Fetcher performs the real network round trip for a request
type Fetcher interface {
	Fetch(ctx context.Context, req *http.Request) (*http.Response, error)
}
