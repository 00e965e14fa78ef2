package config

// UpstreamConfig controls how we talk to the ESPN scoreboard API.
type UpstreamConfig struct {
	URL     string
	Timeout Duration
}

func loadUpstream(base UpstreamConfig) UpstreamConfig {
	return UpstreamConfig{
		URL:     envOrDefault(envUpstreamURL, base.URL),
		Timeout: durationEnvOrDefault(envUpstreamTO, base.Timeout),
	}
}
