package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	// Initialize composition root with all dependencies
	root, err := NewCompositionRoot()
	if err != nil {
		fmt.Printf("Failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	// Ensure cleanup on exit
	defer func() {
		if err := root.Cleanup(); err != nil {
			root.Logger.Error("Failed to cleanup resources", zap.Error(err))
		}
	}()

	listenAddr := root.Config.ListenAddr
	go func() {
		if err := root.HTTPServer.Start(listenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			root.Logger.Error("Agent server failed", zap.Error(err))
		}
	}()

	// Install and activate the current version in the background; until then
	// requests go straight to the network
	bootCtx, cancelBoot := context.WithCancel(context.Background())
	defer cancelBoot()
	booted := make(chan struct{})
	go func() {
		defer close(booted)
		root.Bootstrap(bootCtx)
	}()

	root.Trigger.Start()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	root.Logger.Info("Shutting down agent...")

	// Create a deadline for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := root.HTTPServer.Stop(ctx); err != nil {
		root.Logger.Error("Agent server forced to shutdown", zap.Error(err))
	}
	root.Trigger.Stop()

	// bootstrap may still be registering prefetch tasks
	cancelBoot()
	select {
	case <-booted:
	case <-ctx.Done():
		root.Logger.Warn("Bootstrap did not finish before shutdown deadline")
	}

	if err := root.Controller.Drain(ctx); err != nil {
		root.Logger.Error("Background tasks abandoned", zap.Error(err))
	}

	root.Logger.Info("Agent exited")
}
