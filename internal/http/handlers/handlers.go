package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jonboulle/clockwork"

	domaingames "github.com/preston-bernstein/nfl-games-service/internal/domain/games"
	"github.com/preston-bernstein/nfl-games-service/internal/logging"
	"github.com/preston-bernstein/nfl-games-service/internal/providers"
	"github.com/preston-bernstein/nfl-games-service/internal/timeutil"
)

// Handler wires HTTP routes to the game provider.
type Handler struct {
	provider providers.GameProvider
	logger   *slog.Logger
	clock    clockwork.Clock
}

// NewHandler constructs a Handler. The clock decides what "today" is; nil uses the real clock.
func NewHandler(provider providers.GameProvider, logger *slog.Logger, clock clockwork.Clock) *Handler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Handler{
		provider: provider,
		logger:   logger,
		clock:    clock,
	}
}

// Health reports liveness. It never touches the upstream.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	logging.Info(loggerFromContext(r, h.logger), "health check")
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// GamesToday returns the upstream games whose start falls on the current UTC date.
func (h *Handler) GamesToday(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	today := h.clock.Now().UTC()
	date := timeutil.FormatDate(today)

	var all []domaingames.Game
	if h.provider != nil {
		all = h.provider.FetchGames(r.Context())
	}
	games := domaingames.OnDate(all, today)

	if len(games) == 0 {
		logging.Warn(logger, "no games scheduled for today",
			slog.String(logging.FieldDate, date),
			slog.Int("upstream_count", len(all)),
		)
		writeJSON(w, http.StatusOK, domaingames.NoGamesResponse(), h.logger)
		return
	}

	logging.Info(logger, "served games for today",
		slog.String(logging.FieldDate, date),
		slog.Int(logging.FieldCount, len(games)),
	)
	writeJSON(w, http.StatusOK, domaingames.NewTodayResponse(games), h.logger)
}

// NotFound answers unknown routes with a JSON error.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known routes hit with an unsupported method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
}
