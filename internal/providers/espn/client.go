package espn

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	domaingames "github.com/preston-bernstein/nfl-games-service/internal/domain/games"
	"github.com/preston-bernstein/nfl-games-service/internal/logging"
	"github.com/preston-bernstein/nfl-games-service/internal/metrics"
	"github.com/preston-bernstein/nfl-games-service/internal/providers"
)

// Config controls how the client reaches the ESPN scoreboard.
type Config struct {
	URL     string
	Timeout time.Duration
	// HTTPClient overrides the default client; Timeout is ignored when set.
	HTTPClient *http.Client
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
}

// Client fetches the NFL scoreboard and maps it to domain games.
type Client struct {
	url        string
	httpClient httpDoer
	logger     *slog.Logger
	metrics    *metrics.Recorder
	now        func() time.Time
}

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		url:        normalizeURL(cfg.URL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		now:        time.Now,
	}
}

// FetchGames returns every game on the current scoreboard. Upstream failures are
// logged and produce an empty slice; unparseable events are logged and dropped.
func (c *Client) FetchGames(ctx context.Context) []domaingames.Game {
	start := c.now()
	result, err := c.Scoreboard(ctx)
	elapsed := c.now().Sub(start)
	c.metrics.RecordProviderAttempt(ProviderName, elapsed, err)

	if err != nil {
		args := []any{slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()), slog.Any("error", err)}
		if fe, ok := providers.AsFetchError(err); ok {
			args = append(args, slog.String(logging.FieldErrorKind, string(fe.Kind)))
		}
		providers.LogWithProvider(ctx, c.logger, slog.LevelError, ProviderName, "scoreboard fetch failed", args...)
		return []domaingames.Game{}
	}

	for _, skipped := range result.Skipped {
		providers.LogWithProvider(ctx, c.logger, slog.LevelWarn, ProviderName, "skipping malformed event",
			slog.Int(logging.FieldEventIndex, skipped.Index),
			slog.String(logging.FieldEventID, skipped.EventID),
			slog.Any("error", skipped.Err),
		)
	}
	c.metrics.RecordSkippedEvents(ProviderName, len(result.Skipped))

	return result.Games
}

// Scoreboard performs one GET against the scoreboard URL and parses the body.
// Failures are returned as *providers.FetchError.
func (c *Client) Scoreboard(ctx context.Context) (ParseResult, error) {
	body, err := c.get(ctx)
	if err != nil {
		return ParseResult{}, err
	}

	result, err := Parse(body)
	if err != nil {
		return ParseResult{}, &providers.FetchError{Provider: ProviderName, Kind: providers.KindDecode, Err: err}
	}
	return result, nil
}

func (c *Client) get(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &providers.FetchError{Provider: ProviderName, Kind: providers.KindTransport, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &providers.FetchError{Provider: ProviderName, Kind: providers.KindTransport, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return nil, &providers.FetchError{
			Provider:   ProviderName,
			Kind:       providers.KindStatus,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(snippet))),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &providers.FetchError{Provider: ProviderName, Kind: providers.KindTransport, Err: err}
	}
	return body, nil
}
