package agent

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"go-offline-agent/internal/models"
	"go-offline-agent/internal/utils"
)

type fetched struct {
	key   string
	entry *models.CachedResponse
}

// installShell fetches every shell asset and stores them only if all succeeded
func (c *Controller) installShell(ctx context.Context) error {
	shell, err := c.deps.Partitions.Open(c.deps.Partitions.Shell().Name())
	if err != nil {
		return err
	}

	assets := make([]fetched, 0, len(c.deps.Prefetch.Shell))
	for _, path := range c.deps.Prefetch.Shell {
		key, entry, err := c.fetchAsset(ctx, path)
		if err != nil {
			return fmt.Errorf("failed to prefetch shell asset %s: %w", path, err)
		}
		assets = append(assets, fetched{key: key, entry: entry})
	}

	for _, a := range assets {
		if err := shell.Put(a.key, a.entry); err != nil {
			return fmt.Errorf("failed to store shell asset: %w", err)
		}
	}
	return nil
}

// prefetchHeroImages stores hero images in the background; failures are tolerated
func (c *Controller) prefetchHeroImages() {
	image := c.deps.Partitions.Image()
	for _, path := range c.deps.Prefetch.HeroImages {
		path := path
		c.deps.Tasks.Go("prefetch "+path, func(ctx context.Context) {
			key, entry, err := c.fetchAsset(ctx, path)
			if err != nil {
				c.deps.Logger.Info("hero image prefetch skipped", zap.String("path", path), zap.Error(err))
				return
			}
			if err := image.Put(key, entry); err != nil {
				c.deps.Logger.Warn("failed to store hero image", zap.String("path", path), zap.Error(err))
			}
		})
	}
}

func (c *Controller) fetchAsset(ctx context.Context, path string) (string, *models.CachedResponse, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return "", nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.deps.Origin.ResolveReference(ref).String(), nil)
	if err != nil {
		return "", nil, err
	}

	key, err := c.deps.Keys.Build(req)
	if err != nil {
		return "", nil, err
	}

	resp, err := c.deps.Fetcher.Fetch(ctx, req)
	if err != nil {
		return "", nil, err
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return "", nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	entry, _, err := utils.Snapshot(resp, time.Now())
	if err != nil {
		return "", nil, err
	}
	return key, entry, nil
}
