package testutil

import (
	"time"

	domaingames "github.com/preston-bernstein/nfl-games-service/internal/domain/games"
)

// SampleGame returns a regular-season game with the provided id and start.
func SampleGame(id string, start time.Time) domaingames.Game {
	return domaingames.NewGame(
		id,
		"Philadelphia Eagles",
		"Dallas Cowboys",
		start,
		domaingames.NewLocation("Lincoln Financial Field", "Philadelphia"),
		domaingames.SeasonRegular,
	)
}
