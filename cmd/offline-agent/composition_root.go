package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"go-offline-agent/internal/agent"
	"go-offline-agent/internal/cache"
	"go-offline-agent/internal/cache/l1"
	"go-offline-agent/internal/cache/l2"
	"go-offline-agent/internal/cache/multi"
	"go-offline-agent/internal/cache/noop"
	"go-offline-agent/internal/cache/partition"
	"go-offline-agent/internal/config"
	"go-offline-agent/internal/httpserver"
	"go-offline-agent/internal/interfaces"
	"go-offline-agent/internal/push"
	"go-offline-agent/internal/queue"
	"go-offline-agent/internal/routing"
	"go-offline-agent/internal/strategy"
	"go-offline-agent/internal/tasks"
	"go-offline-agent/internal/upstream"
)

// CompositionRoot holds all application dependencies and wires them together
type CompositionRoot struct {
	// Configuration
	Config     *config.Config
	Logger     *zap.Logger
	Origin     *url.URL
	RouteRules *routing.RulesConfig

	// Partition storage
	L1Store    interfaces.PartitionStore
	L2Store    interfaces.PartitionStore
	Store      interfaces.PartitionStore
	Partitions *partition.Manager

	// Agent
	Fetcher    interfaces.Fetcher
	Tasks      *tasks.List
	Queue      *queue.Queue
	Center     *push.Center
	Controller *agent.Controller
	Trigger    *queue.Trigger

	HTTPServer *httpserver.Server
}

// NewCompositionRoot creates and initializes all application dependencies.
//
// Initialization order:
// 1. Logger (needed by all other components)
// 2. Configuration and route rules
// 3. Partition stores (L1, L2, layered)
// 4. Agent (router, executors, queue, push, controller)
// 5. HTTP Server
func NewCompositionRoot() (*CompositionRoot, error) {
	root := &CompositionRoot{}

	if err := root.initLogger(); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := root.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := root.loadRouteRules(); err != nil {
		return nil, fmt.Errorf("failed to load route rules: %w", err)
	}

	if err := root.initStores(); err != nil {
		return nil, fmt.Errorf("failed to initialize partition stores: %w", err)
	}

	if err := root.initAgent(); err != nil {
		return nil, fmt.Errorf("failed to initialize agent: %w", err)
	}

	root.initHTTPServer()

	return root, nil
}

// initLogger initializes the application logger
func (r *CompositionRoot) initLogger() error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	r.Logger = logger
	SetRedisLogger(logger)
	return nil
}

// loadConfig loads the application configuration
func (r *CompositionRoot) loadConfig() error {
	cfg, err := config.LoadConfig(GetConfigPath(), r.Logger)
	if err != nil {
		return err
	}
	origin, err := cfg.OriginURL()
	if err != nil {
		return err
	}

	r.Config = cfg
	r.Origin = origin
	return nil
}

// loadRouteRules loads the static asset rules, falling back to built-in defaults
func (r *CompositionRoot) loadRouteRules() error {
	rulesPath := GetRouteRulesPath()
	if rulesPath == "" {
		r.Logger.Info("No route rules file configured, using defaults")
		r.RouteRules = routing.NewRulesConfig(routing.DefaultRules(), r.Logger)
		return nil
	}

	rules, err := routing.LoadRouteRules(rulesPath, r.Logger)
	if err != nil {
		return err
	}
	r.RouteRules = rules
	return nil
}

// initStores initializes the partition storage levels
func (r *CompositionRoot) initStores() error {
	if r.Config.L1.Enabled {
		store, err := l1.NewBigCacheStore(&r.Config.L1, r.Logger)
		if err != nil {
			return fmt.Errorf("failed to initialize L1 store: %w", err)
		}
		r.L1Store = store
		r.Logger.Info("BigCache (L1) initialized", zap.Int("size_mb", r.Config.L1.Size))
	} else {
		r.L1Store = noop.NewNoOpStore()
		r.Logger.Info("BigCache (L1) disabled")
	}

	r.initL2Store()

	r.Store = multi.NewMultiStore(
		[]interfaces.PartitionStore{r.L1Store, r.L2Store},
		r.Config.Multi.EnablePropagation,
		r.Logger,
	)
	r.Partitions = partition.NewManager(r.Store, r.Config.Partitions, r.Logger)
	return nil
}

// initL2Store initializes the KeyDB store, falling back to no L2 when it is unreachable
func (r *CompositionRoot) initL2Store() {
	if !r.Config.L2.Enabled {
		r.L2Store = noop.NewNoOpStore()
		r.Logger.Info("KeyDB (L2) disabled")
		return
	}

	keydbURL, err := GetKeyDBURL(r.Logger)
	if err != nil {
		r.Logger.Warn("KeyDB URL unavailable, falling back to no L2 store", zap.Error(err))
		r.L2Store = noop.NewNoOpStore()
		return
	}

	client, err := l2.NewRedisKeyDbClient(r.Config, keydbURL, r.Logger)
	if err != nil {
		r.Logger.Warn("Failed to connect to KeyDB, falling back to no L2 store",
			zap.String("keydb_url", redactURL(keydbURL)),
			zap.Error(err))
		r.L2Store = noop.NewNoOpStore()
		return
	}

	r.L2Store = l2.NewKeyDBStore(r.Config, client, r.Logger)
	r.Logger.Info("KeyDB (L2) initialized", zap.String("keydb_url", redactURL(keydbURL)))
}

// initAgent wires the interception agent
func (r *CompositionRoot) initAgent() error {
	r.Fetcher = upstream.NewHTTPFetcher(r.Origin, r.Config.GetUpstreamTimeout(), r.Logger)
	r.Tasks = tasks.New(r.Logger)
	router := routing.NewClassifier(r.Logger, r.Origin, r.RouteRules)
	keys := cache.NewKeyBuilder()

	q, err := queue.NewQueue(&r.Config.Queue, r.Origin, r.Partitions, r.Fetcher, r.Logger)
	if err != nil {
		return err
	}
	r.Queue = q

	r.Center = push.NewCenter(r.Logger)

	r.Controller = agent.NewController(&agent.Deps{
		Origin: r.Origin,
		Prefetch: agent.Prefetch{
			Shell:      r.Config.Prefetch.Shell,
			HeroImages: r.Config.Prefetch.HeroImages,
		},
		Router: router,
		Executors: strategy.NewTable(&strategy.Deps{
			Fetcher:    r.Fetcher,
			Router:     router,
			Partitions: r.Partitions,
			Keys:       keys,
			Tasks:      r.Tasks,
			Logger:     r.Logger,
		}),
		Partitions: r.Partitions,
		Keys:       keys,
		Fetcher:    r.Fetcher,
		Queue:      q,
		Push:       push.NewHandler(&r.Config.Push, r.Center, r.Center, r.Logger),
		Tasks:      r.Tasks,
		Logger:     r.Logger,
	})

	probe, err := url.Parse(r.Config.Queue.ProbePath)
	if err != nil {
		return fmt.Errorf("invalid probe path: %w", err)
	}
	r.Trigger = queue.NewTrigger(q, r.Fetcher, r.Origin.ResolveReference(probe),
		r.Config.GetReplayInterval(), r.Controller.OnSync, r.Logger)
	return nil
}

// initHTTPServer initializes the HTTP server
func (r *CompositionRoot) initHTTPServer() {
	secret := GetPushSecret()
	if secret == "" {
		r.Logger.Warn("PUSH_JWT_SECRET is not set, push delivery is disabled")
	}
	adminSecret := GetAdminSecret()
	if adminSecret == "" {
		r.Logger.Warn("CONTROL_JWT_SECRET is not set, control endpoints are disabled")
	}

	r.HTTPServer = httpserver.NewServer(&httpserver.Deps{
		Lifecycle:     r.Controller,
		State:         r.Controller,
		Queue:         r.Queue,
		Notifications: r.Center,
		PushSecret:    secret,
		AdminSecret:   adminSecret,
	}, r.Logger)
}

// Bootstrap installs and activates the configured version
func (r *CompositionRoot) Bootstrap(ctx context.Context) {
	if err := r.Controller.OnInstall(ctx); err != nil {
		r.Logger.Error("Install failed, serving from network until installed", zap.Error(err))
		return
	}
	if ctx.Err() != nil {
		return
	}
	if err := r.Controller.OnActivate(ctx); err != nil {
		r.Logger.Error("Activation failed", zap.Error(err))
	}
}

// Cleanup performs cleanup of all resources
func (r *CompositionRoot) Cleanup() error {
	var errs []error

	if l1Store, ok := r.L1Store.(*l1.BigCacheStore); ok {
		if err := l1Store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close L1 store: %w", err))
		}
	}

	if l2Store, ok := r.L2Store.(*l2.KeyDBStore); ok {
		if err := l2Store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close L2 store: %w", err))
		}
	}

	if r.Logger != nil {
		// stderr sync fails on some platforms; not worth reporting
		_ = r.Logger.Sync()
	}

	return errors.Join(errs...)
}
