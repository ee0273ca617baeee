package dataset

import (
	"context"

	"github.com/sourcegraph/conc/pool"
	"github.com/wicketwise/cricket-insights/internal/domain/delivery"
	"github.com/wicketwise/cricket-insights/internal/domain/match"
	"github.com/wicketwise/cricket-insights/internal/domain/player"
	"github.com/wicketwise/cricket-insights/internal/domain/schedule"
)

// Paths names the four tabular sources.
type Paths struct {
	Players    string
	Matches    string
	Deliveries string
	Fixtures   string
}

// Tables is one immutable snapshot of the loaded dataset.
type Tables struct {
	Players    []player.Player
	Matches    []match.Match
	Deliveries []delivery.Delivery
	Fixtures   []schedule.Fixture
}

// Loader reads the four sources from disk. Loading happens once per session
// (startup or an explicit reload); everything downstream treats the result
// as read-only.
type Loader struct {
	paths Paths
}

func NewLoader(paths Paths) *Loader {
	return &Loader{paths: paths}
}

func (l *Loader) Players(context.Context) ([]player.Player, error) {
	return LoadPlayers(l.paths.Players)
}

func (l *Loader) Matches(context.Context) ([]match.Match, error) {
	return LoadMatches(l.paths.Matches)
}

func (l *Loader) Deliveries(context.Context) ([]delivery.Delivery, error) {
	return LoadDeliveries(l.paths.Deliveries)
}

func (l *Loader) Fixtures(context.Context) ([]schedule.Fixture, error) {
	return LoadFixtures(l.paths.Fixtures)
}

// LoadAll loads the four tables concurrently. The first load-time error
// aborts the whole snapshot; there is no partial dataset.
func (l *Loader) LoadAll(ctx context.Context) (Tables, error) {
	tables := Tables{}

	p := pool.New().WithErrors()
	p.Go(func() error {
		players, err := l.Players(ctx)
		if err != nil {
			return err
		}
		tables.Players = players
		return nil
	})
	p.Go(func() error {
		matches, err := l.Matches(ctx)
		if err != nil {
			return err
		}
		tables.Matches = matches
		return nil
	})
	p.Go(func() error {
		deliveries, err := l.Deliveries(ctx)
		if err != nil {
			return err
		}
		tables.Deliveries = deliveries
		return nil
	})
	p.Go(func() error {
		fixtures, err := l.Fixtures(ctx)
		if err != nil {
			return err
		}
		tables.Fixtures = fixtures
		return nil
	})

	if err := p.Wait(); err != nil {
		return Tables{}, err
	}
	return tables, nil
}
