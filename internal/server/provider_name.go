package server

import "strings"

const (
	providerESPN    = "espn"
	providerFixture = "fixture"
)

// normalizeProviderName lower-cases and trims the configured provider, treating
// blank as the default upstream.
func normalizeProviderName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return providerESPN
	}
	return name
}
