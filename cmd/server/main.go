package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/preston-bernstein/nfl-games-service/internal/config"
	"github.com/preston-bernstein/nfl-games-service/internal/logging"
	"github.com/preston-bernstein/nfl-games-service/internal/server"
)

const (
	appVersion  = "dev"
	serviceName = "nfl-games-service"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, cfgErr := loadConfig()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: serviceName,
		Version: appVersion,
	})
	if cfgErr != nil {
		logging.Warn(logger, "config file unreadable, using environment only", slog.Any("error", cfgErr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}

// loadConfig layers environment over the optional CONFIG_FILE. On a file error it
// falls back to environment and defaults.
func loadConfig() (config.Config, error) {
	path := os.Getenv(config.EnvConfigFile)
	if path == "" {
		return config.Load(), nil
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		return config.Load(), err
	}
	return cfg, nil
}
