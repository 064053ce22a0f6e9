package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"foodshare-api/config"
	"foodshare-api/logger"
	"foodshare-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	envFile := flag.String("c", ".env", "path to env file")
	flag.Parse()

	if err := run(*envFile); err != nil {
		logrus.WithError(err).Fatal("Server exited with error")
	}
}

func run(envFile string) error {
	cfg := config.Load(envFile)
	if err := logger.Setup(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	gin.SetMode(cfg.GinMode)

	if err := config.InitDB(cfg.DBPath); err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer func() {
		if err := config.CloseDB(); err != nil {
			logrus.WithError(err).Error("Failed to close database")
		}
	}()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.NewRouter(cfg.CORSOrigins, cfg.StaticDir),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logrus.Infof("🚀 FoodShare server running on http://localhost:%s", cfg.Port)
		logrus.Infof("📊 API available at http://localhost:%s/api", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	logrus.Info("🛑 Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Graceful shutdown failed")
	}
	logrus.Info("👋 Server stopped")
	return nil
}
