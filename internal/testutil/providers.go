package testutil

import (
	"context"
	"sync/atomic"

	domaingames "github.com/preston-bernstein/nfl-games-service/internal/domain/games"
)

// StaticProvider returns the same games on every call and counts calls.
type StaticProvider struct {
	Games []domaingames.Game
	calls atomic.Int64
}

func (p *StaticProvider) FetchGames(ctx context.Context) []domaingames.Game {
	_ = ctx
	p.calls.Add(1)
	if p.Games == nil {
		return []domaingames.Game{}
	}
	return p.Games
}

// Calls reports how many times FetchGames ran.
func (p *StaticProvider) Calls() int64 {
	return p.calls.Load()
}

// NotifyingProvider returns games and closes Notify on first fetch.
type NotifyingProvider struct {
	Games  []domaingames.Game
	Notify chan struct{}
}

func (p *NotifyingProvider) FetchGames(ctx context.Context) []domaingames.Game {
	_ = ctx
	if p.Notify != nil {
		select {
		case <-p.Notify:
		default:
			close(p.Notify)
		}
	}
	return p.Games
}
