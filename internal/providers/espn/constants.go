package espn

import "time"

const (
	// ProviderName labels logs and metrics for this upstream.
	ProviderName = "espn"

	defaultURL         = "https://site.api.espn.com/apis/site/v2/sports/football/nfl/scoreboard"
	defaultHTTPTimeout = 30 * time.Second
	// errorBodyLimit caps how much of a failed response body is quoted in errors.
	errorBodyLimit = 512

	homeSide = "home"
	awaySide = "away"
)
