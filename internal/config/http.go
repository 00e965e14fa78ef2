package config

// CORSConfig lists the origins allowed to call the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string
}

// LogConfig selects the slog handler and minimum level.
type LogConfig struct {
	Level  string
	Format string
}

func loadCORS(base CORSConfig) CORSConfig {
	return CORSConfig{
		AllowedOrigins: listEnvOrDefault(envCORSOrigins, base.AllowedOrigins),
	}
}

func loadLog(base LogConfig) LogConfig {
	return LogConfig{
		Level:  envOrDefault(envLogLevel, base.Level),
		Format: envOrDefault(envLogFormat, base.Format),
	}
}
