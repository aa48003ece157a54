package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/factism001/revogreen-ai-electrician/internal/config"
	"github.com/factism001/revogreen-ai-electrician/internal/handlers"
	"github.com/factism001/revogreen-ai-electrician/internal/logging"
	"github.com/factism001/revogreen-ai-electrician/internal/ratelimit"
	"github.com/factism001/revogreen-ai-electrician/internal/router"
	"github.com/factism001/revogreen-ai-electrician/internal/services"
)

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()

	logger, err := logging.New(cfg.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger initialization failed: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting Revogreen AI electrician backend", zap.String("env", cfg.Env))

	// ──── Step 2: Initialize Rate Limiter ────
	limiter := ratelimit.New(cfg.RateLimitMax, cfg.RateLimitWindow, logger)
	limiter.StartSweep()
	logger.Info("rate limiter ready",
		zap.Int("limit", cfg.RateLimitMax),
		zap.Duration("window", cfg.RateLimitWindow))

	// ──── Step 3: Initialize Gemini Client ────
	// A missing credential is a supported state: flows serve canned
	// guidance instead of failing startup.
	var client services.ModelClient
	if cfg.AIEnabled() {
		gemini, err := services.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Fatal("Gemini client initialization failed", zap.Error(err))
		}
		client = gemini
		defer gemini.Close()
		logger.Info("Gemini client initialized", zap.String("model", cfg.GeminiModel))
	} else {
		logger.Warn("GEMINI_API_KEY not set, running in degraded canned-response mode")
	}

	// ──── Step 4: Wire Flows, Handlers, Router ────
	flows := services.NewFlows(client, logger)
	h := handlers.New(limiter, flows, logger)
	r := router.New(h, cfg.FrontendURL)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("shutting down")
		limiter.Stop()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	logger.Info("server ready", zap.String("addr", server.Addr))

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
