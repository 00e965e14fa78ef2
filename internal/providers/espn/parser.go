package espn

import (
	"bytes"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	domaingames "github.com/preston-bernstein/nfl-games-service/internal/domain/games"
	"github.com/preston-bernstein/nfl-games-service/internal/timeutil"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// FieldError reports a required event field that was missing or malformed.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("event field %s: %v", e.Field, e.Err)
	}
	return "missing event field " + e.Field
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// SkippedEvent identifies an upstream event that could not be turned into a Game.
type SkippedEvent struct {
	Index   int
	EventID string
	Err     error
}

// ParseResult holds the games parsed from a scoreboard, in upstream order, and the events dropped along the way.
type ParseResult struct {
	Games   []domaingames.Game
	Skipped []SkippedEvent
}

// Parse decodes a scoreboard document. An empty body, null, or a document without
// events yields an empty result; only a body that is not a scoreboard object is an error.
func Parse(body []byte) (ParseResult, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return emptyResult(), nil
	}

	var doc scoreboardResponse
	if err := jsonAPI.Unmarshal(body, &doc); err != nil {
		return ParseResult{}, err
	}
	return ParseEvents(doc.Events), nil
}

// ParseEvents folds raw events into a ParseResult. A bad event is recorded in
// Skipped and never stops the remaining events from being parsed.
func ParseEvents(events []jsoniter.RawMessage) ParseResult {
	return fold(events, emptyResult(), func(acc ParseResult, i int, raw jsoniter.RawMessage) ParseResult {
		game, err := parseEvent(raw)
		if err != nil {
			acc.Skipped = append(acc.Skipped, SkippedEvent{Index: i, EventID: eventID(raw), Err: err})
			return acc
		}
		acc.Games = append(acc.Games, game)
		return acc
	})
}

func fold[T, A any](items []T, acc A, step func(A, int, T) A) A {
	for i, item := range items {
		acc = step(acc, i, item)
	}
	return acc
}

func emptyResult() ParseResult {
	return ParseResult{Games: []domaingames.Game{}}
}

func parseEvent(raw jsoniter.RawMessage) (domaingames.Game, error) {
	var ev eventResponse
	if err := jsonAPI.Unmarshal(raw, &ev); err != nil {
		return domaingames.Game{}, &FieldError{Field: "event", Err: err}
	}
	if ev.ID == nil {
		return domaingames.Game{}, &FieldError{Field: "id"}
	}
	if len(ev.Competitions) == 0 {
		return domaingames.Game{}, &FieldError{Field: "competitions[0]"}
	}
	comp := ev.Competitions[0]

	home, err := teamName(comp.Competitors, homeSide)
	if err != nil {
		return domaingames.Game{}, err
	}
	away, err := teamName(comp.Competitors, awaySide)
	if err != nil {
		return domaingames.Game{}, err
	}

	if ev.Date == nil {
		return domaingames.Game{}, &FieldError{Field: "date"}
	}
	start, err := timeutil.ParseUTC(*ev.Date)
	if err != nil {
		return domaingames.Game{}, &FieldError{Field: "date", Err: err}
	}

	if ev.Season == nil || ev.Season.Type == nil {
		return domaingames.Game{}, &FieldError{Field: "season.type"}
	}

	return domaingames.NewGame(
		*ev.ID,
		home,
		away,
		start,
		location(comp.Venue),
		domaingames.SeasonTypeFromCode(*ev.Season.Type),
	), nil
}

// teamName returns the display name of the first competitor on the given side.
func teamName(competitors []competitorResponse, side string) (string, error) {
	for _, c := range competitors {
		if c.HomeAway != side {
			continue
		}
		if c.Team == nil || c.Team.DisplayName == nil {
			return "", &FieldError{Field: "competitors[" + side + "].team.displayName"}
		}
		return *c.Team.DisplayName, nil
	}
	return "", &FieldError{Field: "competitors[" + side + "]"}
}

func location(v *venueResponse) domaingames.Location {
	if v == nil {
		return domaingames.NewLocation("", "")
	}
	city := ""
	if v.Address != nil {
		city = v.Address.City
	}
	return domaingames.NewLocation(v.FullName, city)
}

// eventID pulls the id for log context without requiring the rest of the event to be valid.
func eventID(raw jsoniter.RawMessage) string {
	id := jsonAPI.Get(raw, "id")
	if id.ValueType() != jsoniter.StringValue {
		return ""
	}
	return id.ToString()
}
