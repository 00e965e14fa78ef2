package games

import (
	"time"

	"github.com/preston-bernstein/nfl-games-service/internal/timeutil"
)

// NoGamesMessage is returned by /games/today when nothing is scheduled.
const NoGamesMessage = "No games scheduled for today."

// TodayResponse is the payload returned by /games/today when games exist.
type TodayResponse struct {
	Games []Game `json:"games"`
}

// MessageResponse carries an informational message instead of games.
type MessageResponse struct {
	Message string `json:"message"`
}

// NewTodayResponse builds a TodayResponse payload.
func NewTodayResponse(games []Game) TodayResponse {
	if games == nil {
		games = []Game{}
	}
	return TodayResponse{Games: games}
}

// NoGamesResponse is the payload used when no games match today.
func NoGamesResponse() MessageResponse {
	return MessageResponse{Message: NoGamesMessage}
}

// OnDate returns the games whose start falls on day's UTC calendar date, in input order.
func OnDate(games []Game, day time.Time) []Game {
	out := make([]Game, 0, len(games))
	for _, g := range games {
		if timeutil.SameUTCDate(g.StartTime, day) {
			out = append(out, g)
		}
	}
	return out
}
