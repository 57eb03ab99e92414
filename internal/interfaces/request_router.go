package interfaces

import (
	"net/http"

	"go-offline-agent/internal/models"
)

//go:generate mockgen -package=mock -source=request_router.go -destination=mock/request_router.go

// RequestRouter classifies intercepted requests into handling lanes
type RequestRouter interface {
	// Classify is pure and runs before any I/O
	Classify(req *http.Request) models.Lane
	IsImageRequest(req *http.Request) bool
	IsDocumentRequest(req *http.Request) bool
	// IsSameOrigin reports whether the request targets the site origin
	IsSameOrigin(req *http.Request) bool
}
