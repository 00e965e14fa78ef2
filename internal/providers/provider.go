package providers

import (
	"context"

	domaingames "github.com/preston-bernstein/nfl-games-service/internal/domain/games"
)

// GameProvider supplies the games currently published upstream.
// Implementations absorb their own failures: an unreachable or malformed
// upstream yields an empty, non-nil slice rather than an error.
type GameProvider interface {
	FetchGames(ctx context.Context) []domaingames.Game
}
