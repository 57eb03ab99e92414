package interfaces

import (
	"context"

	"go-offline-agent/internal/models"
)

//go:generate mockgen -package=mock -source=notifier.go -destination=mock/notifier.go

// NotificationPresenter displays and dismisses system notifications
type NotificationPresenter interface {
	Show(ctx context.Context, n models.Notification) error
	Close(ctx context.Context, tag string) error
}

// WindowOpener opens or focuses a page of the site
type WindowOpener interface {
	OpenWindow(ctx context.Context, url string) error
}
