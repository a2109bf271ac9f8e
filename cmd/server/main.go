package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"cortado/internal/commons"
	"cortado/internal/config"
	"cortado/internal/infrastructure/logger"
	"cortado/internal/infrastructure/mysql"
	"cortado/internal/menu"
	"cortado/internal/order"
	"cortado/internal/server"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	menuCtrl := menu.NewModule(db, zapLogger)
	orderCtrl := order.NewModule(db, cfg, zapLogger)

	router := server.NewRouter(menuCtrl, orderCtrl, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}

// loadConfig prefers the YAML file and falls back to environment variables.
func loadConfig() (*config.Config, error) {
	path := os.Getenv("CORTADO_CONFIG")
	if path == "" {
		path = "internal/config/config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		return commons.LoadConfig(path)
	}

	return config.Load()
}
