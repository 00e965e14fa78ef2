package espn

import jsoniter "github.com/json-iterator/go"

// scoreboardResponse keeps events raw so one malformed event cannot fail the whole decode.
type scoreboardResponse struct {
	Events []jsoniter.RawMessage `json:"events"`
}

// Pointer fields mark what must be present; a nil pointer is a missing key.
type eventResponse struct {
	ID           *string               `json:"id"`
	Date         *string               `json:"date"`
	Season       *seasonResponse       `json:"season"`
	Competitions []competitionResponse `json:"competitions"`
}

type seasonResponse struct {
	Type *int `json:"type"`
}

type competitionResponse struct {
	Competitors []competitorResponse `json:"competitors"`
	Venue       *venueResponse       `json:"venue"`
}

type competitorResponse struct {
	HomeAway string        `json:"homeAway"`
	Team     *teamResponse `json:"team"`
}

type teamResponse struct {
	DisplayName *string `json:"displayName"`
}

type venueResponse struct {
	FullName string           `json:"fullName"`
	Address  *addressResponse `json:"address"`
}

type addressResponse struct {
	City string `json:"city"`
}
