package games

import "time"

// UnknownLocation is the placeholder used when the upstream omits a venue or city.
const UnknownLocation = "Unknown"

// Location describes where a game is played.
type Location struct {
	Venue string `json:"venue"`
	City  string `json:"city"`
}

// NewLocation fills missing parts with UnknownLocation.
func NewLocation(venue, city string) Location {
	if venue == "" {
		venue = UnknownLocation
	}
	if city == "" {
		city = UnknownLocation
	}
	return Location{Venue: venue, City: city}
}

// Game is the canonical game shape exposed by the service.
type Game struct {
	ID        string     `json:"id"`
	HomeTeam  string     `json:"homeTeam"`
	AwayTeam  string     `json:"awayTeam"`
	StartTime time.Time  `json:"startTime"`
	Location  Location   `json:"location"`
	Type      SeasonType `json:"type"`
}

// NewGame builds a Game with its start time normalized to UTC.
func NewGame(id, home, away string, start time.Time, loc Location, seasonType SeasonType) Game {
	return Game{
		ID:        id,
		HomeTeam:  home,
		AwayTeam:  away,
		StartTime: start.UTC(),
		Location:  loc,
		Type:      seasonType,
	}
}
