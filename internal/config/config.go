package config

// Config holds runtime configuration for the server.
type Config struct {
	Port     string
	Provider string
	Upstream UpstreamConfig
	Metrics  MetricsConfig
	CORS     CORSConfig
	Log      LogConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return applyEnv(Defaults())
}

// Defaults returns the configuration used when nothing is overridden.
func Defaults() Config {
	return Config{
		Port:     defaultPort,
		Provider: defaultProvider,
		Upstream: UpstreamConfig{
			URL:     defaultUpstreamURL,
			Timeout: defaultUpstreamTO,
		},
		Metrics: MetricsConfig{
			Enabled:      true,
			Port:         defaultMetricsPort,
			ServiceName:  defaultServiceName,
			OtlpInsecure: true,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(defaultCORSOrigins),
		},
		Log: LogConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

// applyEnv overlays environment variables on top of base.
func applyEnv(base Config) Config {
	return Config{
		Port:     envOrDefault(envPort, base.Port),
		Provider: envOrDefault(envProvider, base.Provider),
		Upstream: loadUpstream(base.Upstream),
		Metrics:  loadMetrics(base.Metrics),
		CORS:     loadCORS(base.CORS),
		Log:      loadLog(base.Log),
	}
}
