package fixture

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	domaingames "github.com/preston-bernstein/nfl-games-service/internal/domain/games"
)

// ProviderName labels logs and metrics for the fixture provider.
const ProviderName = "fixture"

// Provider returns a static slate anchored to the clock's current UTC day, for
// local development without reaching ESPN.
type Provider struct {
	clock clockwork.Clock
}

// New creates a fixture provider. A nil clock uses the real clock.
func New(clock clockwork.Clock) *Provider {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Provider{clock: clock}
}

// FetchGames returns two games today and one from the previous day.
func (p *Provider) FetchGames(ctx context.Context) []domaingames.Game {
	_ = ctx

	day := p.clock.Now().UTC().Truncate(24 * time.Hour)

	return []domaingames.Game{
		domaingames.NewGame(
			"fixture-1", "Philadelphia Eagles", "Dallas Cowboys",
			day.Add(17*time.Hour),
			domaingames.NewLocation("Lincoln Financial Field", "Philadelphia"),
			domaingames.SeasonRegular,
		),
		domaingames.NewGame(
			"fixture-2", "Los Angeles Chargers", "Kansas City Chiefs",
			day.Add(20*time.Hour+25*time.Minute),
			domaingames.NewLocation("Neo Química Arena", "São Paulo"),
			domaingames.SeasonRegular,
		),
		domaingames.NewGame(
			"fixture-3", "Green Bay Packers", "Chicago Bears",
			day.Add(-7*time.Hour),
			domaingames.NewLocation("", ""),
			domaingames.SeasonPre,
		),
	}
}
