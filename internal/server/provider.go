package server

import (
	"log/slog"

	"github.com/preston-bernstein/nfl-games-service/internal/config"
	"github.com/preston-bernstein/nfl-games-service/internal/logging"
	"github.com/preston-bernstein/nfl-games-service/internal/metrics"
	"github.com/preston-bernstein/nfl-games-service/internal/providers"
	"github.com/preston-bernstein/nfl-games-service/internal/providers/espn"
	"github.com/preston-bernstein/nfl-games-service/internal/providers/fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.GameProvider {
	switch name := normalizeProviderName(cfg.Provider); name {
	case providerFixture:
		logging.Info(logger, "using fixture provider", slog.String(logging.FieldProvider, name))
		return fixture.New(nil)
	case providerESPN:
		return newESPNClient(cfg, logger, recorder)
	default:
		logging.Warn(logger, "unknown provider, falling back to espn", slog.String(logging.FieldProvider, cfg.Provider))
		return newESPNClient(cfg, logger, recorder)
	}
}

func newESPNClient(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *espn.Client {
	return espn.NewClient(espn.Config{
		URL:     cfg.Upstream.URL,
		Timeout: cfg.Upstream.Timeout,
		Logger:  logger,
		Metrics: recorder,
	})
}
