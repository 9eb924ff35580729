package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fontquiz/internal/app"
	"fontquiz/internal/config"
	"fontquiz/internal/logging"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.LogJSON)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx := context.Background()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           a.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("operator", cfg.OperatorUsername),
			zap.Strings("leadSinks", a.Leads.Sinks()),
		)
		logger.Info("endpoints",
			zap.Strings("public", []string{
				"POST /v1/sessions",
				"GET  /v1/questions",
				"GET  /v1/styles",
				"POST /v1/recommend",
				"POST /v1/contact",
				"POST /v1/auth/login",
			}),
			zap.Strings("session", []string{
				"GET  /v1/sessions/me",
				"POST /v1/sessions/me/{start,answers,back,reset,restart}",
				"GET  /v1/sessions/me/{question,results,report}",
				"WS   /v1/ws/sessions/me",
			}),
			zap.Strings("operator", []string{
				"GET/DELETE /v1/sessions/{id}",
				"POST /v1/sessions/{id}/skip",
				"GET  /v1/stats/{styles,questions}",
				"GET  /v1/leads",
				"GET  /v1/reports/{id}",
			}),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		logger.Info("shutting down server", zap.String("signal", sig.String()))
	case err := <-errCh:
		a.Close(ctx)
		return fmt.Errorf("listen and serve: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
	if err := a.Close(shutdownCtx); err != nil {
		logger.Error("failed to close app", zap.Error(err))
	}

	logger.Info("server exited")
	return nil
}
