// Package agent implements the lifecycle dispatch table of the offline agent.
package agent

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"go.uber.org/zap"

	"go-offline-agent/internal/cache/partition"
	"go-offline-agent/internal/interfaces"
	"go-offline-agent/internal/metrics"
	"go-offline-agent/internal/models"
	"go-offline-agent/internal/push"
	"go-offline-agent/internal/queue"
	"go-offline-agent/internal/strategy"
	"go-offline-agent/internal/tasks"
	"go-offline-agent/internal/utils"
)

var (
	ErrNotInstalled     = errors.New("agent is not installed")
	ErrUnknownSyncTag   = errors.New("unknown sync tag")
	ErrReplayIncomplete = errors.New("some submissions were not delivered")
)

// Deps wires the controller to its collaborators
type Deps struct {
	Origin     *url.URL
	Prefetch   Prefetch
	Router     interfaces.RequestRouter
	Executors  map[models.Lane]strategy.Executor
	Partitions *partition.Manager
	Keys       interfaces.KeyBuilder
	Fetcher    interfaces.Fetcher
	Queue      *queue.Queue
	Push       *push.Handler
	Tasks      *tasks.List
	Logger     *zap.Logger
}

// Prefetch lists the paths stored at install time
type Prefetch struct {
	Shell      []string
	HeroImages []string
}

// Controller implements the Lifecycle interface
type Controller struct {
	deps *Deps

	// mu is held exclusively while activating and shared while intercepting
	mu        sync.RWMutex
	installed bool
	active    bool
}

// Ensure Controller implements the Lifecycle interface
var _ interfaces.Lifecycle = (*Controller)(nil)

func NewController(deps *Deps) *Controller {
	return &Controller{deps: deps}
}

// OnInstall implements Lifecycle interface
func (c *Controller) OnInstall(ctx context.Context) error {
	if err := c.installShell(ctx); err != nil {
		c.deps.Logger.Error("install failed", zap.Error(err))
		return err
	}
	// a cancelled install schedules no background work
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("install cancelled: %w", err)
	}
	c.prefetchHeroImages()

	c.mu.Lock()
	c.installed = true
	c.mu.Unlock()

	c.deps.Logger.Info("agent installed",
		zap.String("shell_partition", c.deps.Partitions.Shell().Name()),
		zap.Int("shell_assets", len(c.deps.Prefetch.Shell)),
		zap.Int("hero_images", len(c.deps.Prefetch.HeroImages)))
	return nil
}

// OnActivate implements Lifecycle interface.
// Stale partitions are purged before control is claimed.
func (c *Controller) OnActivate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.installed {
		return ErrNotInstalled
	}

	deleted, err := c.deps.Partitions.PurgeStale(c.deps.Partitions.CurrentNames())
	if err != nil {
		// leftovers are never read under the current names
		c.deps.Logger.Warn("stale partition purge incomplete", zap.Strings("deleted", deleted), zap.Error(err))
	}

	c.active = true
	c.deps.Logger.Info("agent activated", zap.Strings("purged", deleted))
	return nil
}

// OnIntercept implements Lifecycle interface
func (c *Controller) OnIntercept(ctx context.Context, req *http.Request) *http.Response {
	req = utils.AbsoluteRequest(req, c.deps.Origin)

	c.mu.RLock()
	defer c.mu.RUnlock()

	lane := models.LanePassThrough
	if c.active {
		lane = c.deps.Router.Classify(req)
	}

	metrics.RecordIntercept(string(lane))
	defer metrics.TimeIntercept(string(lane))()

	resp := c.deps.Executors[lane].Execute(ctx, req)
	status := resp.Header.Get(models.CacheStatusHeader)
	if status == "" {
		status = "none"
	}
	metrics.RecordResponse(string(lane), status)
	return resp
}

// OnSync implements Lifecycle interface. The tag names the queue to replay.
func (c *Controller) OnSync(ctx context.Context, tag string) error {
	result, err := c.deps.Queue.Replay(ctx, tag)
	if errors.Is(err, queue.ErrUnknownQueue) {
		return fmt.Errorf("%w: %q", ErrUnknownSyncTag, tag)
	}
	if err != nil {
		return err
	}
	if result.Failed > 0 {
		return fmt.Errorf("%w: %d of %d in %s", ErrReplayIncomplete, result.Failed, result.Attempted, tag)
	}
	return nil
}

// OnPush implements Lifecycle interface
func (c *Controller) OnPush(ctx context.Context, payload []byte) error {
	_, err := c.deps.Push.HandlePush(ctx, payload)
	return err
}

// OnNotificationClick implements Lifecycle interface
func (c *Controller) OnNotificationClick(ctx context.Context, tag, action string) error {
	return c.deps.Push.HandleClick(ctx, tag, action)
}

// State reports whether the agent has been installed and activated
func (c *Controller) State() (installed, active bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.installed, c.active
}

// Drain waits for background work started by the controller
func (c *Controller) Drain(ctx context.Context) error {
	return c.deps.Tasks.Drain(ctx)
}
