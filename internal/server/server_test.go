package server

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/preston-bernstein/nfl-games-service/internal/config"
	domaingames "github.com/preston-bernstein/nfl-games-service/internal/domain/games"
	"github.com/preston-bernstein/nfl-games-service/internal/metrics"
	"github.com/preston-bernstein/nfl-games-service/internal/providers/espn"
	"github.com/preston-bernstein/nfl-games-service/internal/providers/fixture"
	"github.com/preston-bernstein/nfl-games-service/internal/testutil"
)

func testConfig() config.Config {
	cfg := config.Defaults()
	cfg.Port = "0"
	cfg.Metrics.Enabled = false
	return cfg
}

func TestServerServesHealthAndGames(t *testing.T) {
	now := time.Date(2025, 9, 7, 15, 0, 0, 0, time.UTC)
	provider := &testutil.StaticProvider{Games: []domaingames.Game{
		testutil.SampleGame("today", now.Add(2*time.Hour)),
		testutil.SampleGame("tomorrow", now.Add(26*time.Hour)),
	}}
	logger, _ := testutil.NewBufferLogger()
	srv := newServerWithProvider(testConfig(), logger, provider, testutil.ClockAt(now))

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if rr.Body.String() != `{"status":"ok"}` {
		t.Fatalf("unexpected health body %q", rr.Body.String())
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header from middleware")
	}

	rr = testutil.Serve(srv.Handler(), http.MethodGet, "/games/today", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var body struct {
		Games []struct {
			ID string `json:"id"`
		} `json:"games"`
	}
	testutil.DecodeJSON(t, rr, &body)
	if len(body.Games) != 1 || body.Games[0].ID != "today" {
		t.Fatalf("expected only today's game, got %+v", body.Games)
	}
}

func TestServerReturnsMessageWhenNoGames(t *testing.T) {
	srv := newServerWithProvider(testConfig(), nil, &testutil.StaticProvider{}, testutil.ClockAt(time.Now()))

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/games/today", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["message"] != domaingames.NoGamesMessage {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestSelectProvider(t *testing.T) {
	cases := map[string]bool{
		"":        true,
		"espn":    true,
		" ESPN ":  true,
		"unknown": true,
		"fixture": false,
		"Fixture": false,
	}
	for name, wantESPN := range cases {
		cfg := testConfig()
		cfg.Provider = name
		prov := selectProvider(cfg, nil, nil)
		_, isESPN := prov.(*espn.Client)
		_, isFixture := prov.(*fixture.Provider)
		if isESPN != wantESPN || isFixture == wantESPN {
			t.Fatalf("provider %q: unexpected type %T", name, prov)
		}
	}
}

func TestNewConstructsServer(t *testing.T) {
	cfg := testConfig()
	cfg.Provider = "fixture"
	srv := New(cfg, nil)
	if srv == nil || srv.httpServer == nil {
		t.Fatalf("expected server with http server")
	}
	if srv.metricsServer != nil {
		t.Fatalf("expected no metrics server when metrics disabled")
	}
	if srv.Handler() == nil {
		t.Fatalf("expected handler")
	}
}

func TestNewServerWithMetricsHandlesSetupFailure(t *testing.T) {
	orig := metricsSetup
	t.Cleanup(func() { metricsSetup = orig })
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("setup failed")
	}

	cfg := testConfig()
	cfg.Metrics.Enabled = true
	srv := newServerWithMetrics(cfg, nil, &testutil.StaticProvider{}, nil, nil)

	if srv.metrics == nil {
		t.Fatalf("expected fallback recorder")
	}
	if srv.metricsServer != nil || srv.metricsStop != nil {
		t.Fatalf("expected no metrics server after setup failure")
	}
}

func TestBuildMetricsSuccessPathSetsServerAndShutdown(t *testing.T) {
	orig := metricsSetup
	t.Cleanup(func() { metricsSetup = orig })
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return metrics.NewRecorder(), http.NewServeMux(), func(context.Context) error { return nil }, nil
	}

	cfg := testConfig()
	cfg.Metrics.Enabled = true
	cfg.Metrics.Port = "9191"
	rec, srv, stop := buildMetrics(cfg, nil, nil)

	if rec == nil || srv == nil || stop == nil {
		t.Fatalf("expected recorder, server and shutdown")
	}
	if srv.Addr() != ":9191" {
		t.Fatalf("expected metrics addr :9191, got %s", srv.Addr())
	}
}

func TestNewServerWithMetricsUsesInjectedRecorder(t *testing.T) {
	rec := metrics.NewRecorder()
	srv := newServerWithMetrics(testConfig(), nil, &testutil.StaticProvider{}, rec, nil)

	if srv.metrics != rec {
		t.Fatalf("expected injected recorder")
	}

	testutil.Serve(srv.Handler(), http.MethodGet, "/health", nil)
}

func TestGracefulShutdownCallsShutdown(t *testing.T) {
	httpSrv := &testutil.StubHTTPServer{AddrVal: ":0"}
	metricsSrv := &testutil.StubHTTPServer{AddrVal: ":1"}
	srv := newServerWithDeps(testConfig(), nil, httpSrv, metricsSrv)
	stopped := false
	srv.metricsStop = func(context.Context) error {
		stopped = true
		return errors.New("flush failed")
	}

	srv.gracefulShutdown()

	if httpSrv.ShutdownCalls != 1 || metricsSrv.ShutdownCalls != 1 {
		t.Fatalf("expected both servers shut down, got http=%d metrics=%d", httpSrv.ShutdownCalls, metricsSrv.ShutdownCalls)
	}
	if !stopped {
		t.Fatalf("expected metrics stop to run")
	}
}

func TestGracefulShutdownTimesOutLongRunningShutdown(t *testing.T) {
	orig := shutdownTimeout
	shutdownTimeout = 20 * time.Millisecond
	t.Cleanup(func() { shutdownTimeout = orig })

	blocking := &testutil.BlockingHTTPServer{AddrVal: ":0", Unblock: make(chan struct{})}
	logger, _ := testutil.NewBufferLogger()
	srv := newServerWithDeps(testConfig(), logger, blocking, nil)

	done := make(chan struct{})
	go func() {
		srv.gracefulShutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("graceful shutdown did not honor timeout")
	}
	if blocking.ShutdownCalls != 1 {
		t.Fatalf("expected shutdown to be attempted once")
	}
}

func TestServerStartHandlesListenErrorAndStops(t *testing.T) {
	errSrv := &testutil.ErrHTTPServer{}
	srv := newServerWithDeps(testConfig(), nil, errSrv, nil)

	stopped := make(chan struct{})
	srv.startServer(func() { close(stopped) })

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatalf("expected stop to be called on listen error")
	}
}

func TestRunCancelsAndStopsComponents(t *testing.T) {
	closeable := &testutil.CloseableHTTPServer{}
	metricsSrv := &testutil.StubHTTPServer{AddrVal: ":0"}
	srv := newServerWithDeps(testConfig(), nil, closeable, metricsSrv)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("run did not return after cancel")
	}
	if closeable.ShutdownCalls != 1 {
		t.Fatalf("expected http server shutdown, got %d", closeable.ShutdownCalls)
	}
	if metricsSrv.ShutdownCalls != 1 {
		t.Fatalf("expected metrics server shutdown, got %d", metricsSrv.ShutdownCalls)
	}
}
