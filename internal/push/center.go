package push

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"go-offline-agent/internal/interfaces"
	"go-offline-agent/internal/models"
)

const maxOpened = 100

// Center keeps displayed notifications and opened pages in memory
type Center struct {
	mu     sync.Mutex
	active map[string]models.Notification
	order  []string
	opened []string
	logger *zap.Logger
}

var (
	_ interfaces.NotificationPresenter = (*Center)(nil)
	_ interfaces.WindowOpener          = (*Center)(nil)
)

func NewCenter(logger *zap.Logger) *Center {
	return &Center{
		active: make(map[string]models.Notification),
		logger: logger,
	}
}

// Show replaces any notification with the same tag
func (c *Center) Show(_ context.Context, n models.Notification) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.active[n.Tag]; !exists {
		c.order = append(c.order, n.Tag)
	}
	c.active[n.Tag] = n
	return nil
}

func (c *Center) Close(_ context.Context, tag string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.active[tag]; !exists {
		return fmt.Errorf("notification %q not found", tag)
	}
	delete(c.active, tag)
	for i, t := range c.order {
		if t == tag {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

func (c *Center) OpenWindow(_ context.Context, url string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.opened = append(c.opened, url)
	if len(c.opened) > maxOpened {
		c.opened = c.opened[len(c.opened)-maxOpened:]
	}
	c.logger.Info("window opened", zap.String("url", url))
	return nil
}

// Active returns displayed notifications in display order
func (c *Center) Active() []models.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.Notification, 0, len(c.order))
	for _, tag := range c.order {
		out = append(out, c.active[tag])
	}
	return out
}

// Opened returns the most recently opened pages
func (c *Center) Opened() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.opened...)
}
