package config

import "time"

const (
	envPort         = "PORT"
	envProvider     = "PROVIDER"
	envUpstreamURL  = "ESPN_SCOREBOARD_URL"
	envUpstreamTO   = "UPSTREAM_TIMEOUT"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	envCORSOrigins  = "CORS_ALLOWED_ORIGINS"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"

	// EnvConfigFile names the optional YAML file read by LoadFile.
	EnvConfigFile = "CONFIG_FILE"

	defaultPort        = "8000"
	defaultProvider    = "espn"
	defaultUpstreamURL = "https://site.api.espn.com/apis/site/v2/sports/football/nfl/scoreboard"
	// ESPN answers well under this; the bound only guards against a hung socket.
	defaultUpstreamTO  = 30 * Duration(time.Second)
	defaultMetricsPort = "9090"
	defaultServiceName = "nfl-games-service"
	defaultCORSOrigins = "*"
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
)
