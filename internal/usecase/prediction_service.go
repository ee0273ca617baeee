package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/wicketwise/cricket-insights/internal/domain/match"
	"github.com/wicketwise/cricket-insights/internal/domain/player"
	"github.com/wicketwise/cricket-insights/internal/domain/schedule"
	"github.com/wicketwise/cricket-insights/internal/domain/stats"
	"github.com/wicketwise/cricket-insights/internal/platform/cache"
)

// TopPerformer pairs a recent player-of-the-match award with the player's
// career stats, when the awards table and the stats table agree on the name.
type TopPerformer struct {
	Name   string
	Awards int
	Stats  *player.Player
}

type PredictionService struct {
	matchRepo    match.Repository
	playerRepo   player.Repository
	scheduleRepo schedule.Repository
	store        *cache.Store
	formWindow   int
}

func NewPredictionService(
	matchRepo match.Repository,
	playerRepo player.Repository,
	scheduleRepo schedule.Repository,
	store *cache.Store,
	formWindow int,
) *PredictionService {
	if formWindow <= 0 {
		formWindow = stats.DefaultFormWindow
	}
	return &PredictionService{
		matchRepo:    matchRepo,
		playerRepo:   playerRepo,
		scheduleRepo: scheduleRepo,
		store:        store,
		formWindow:   formWindow,
	}
}

// ListFixtures returns the upcoming fixtures in schedule order.
func (s *PredictionService) ListFixtures(ctx context.Context) ([]schedule.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.ListFixtures")
	defer span.End()

	fixtures, err := s.scheduleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fixtures: %w", err)
	}
	return fixtures, nil
}

// Predict scores a fixture from recent form and head-to-head history.
func (s *PredictionService) Predict(ctx context.Context, team1, team2 string) (stats.Prediction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.Predict")
	defer span.End()

	team1 = strings.TrimSpace(team1)
	team2 = strings.TrimSpace(team2)
	if team1 == "" || team2 == "" {
		return stats.Prediction{}, fmt.Errorf("%w: two team names are required", ErrInvalidInput)
	}
	if team1 == team2 {
		return stats.Prediction{}, fmt.Errorf("%w: teams must differ", ErrInvalidInput)
	}

	key := fmt.Sprintf("predict:%s:%s:%d", team1, team2, s.formWindow)
	return loadCached(ctx, s.store, key, func(ctx context.Context) (stats.Prediction, error) {
		matches, err := s.matchRepo.List(ctx)
		if err != nil {
			return stats.Prediction{}, fmt.Errorf("list matches: %w", err)
		}
		return stats.PredictWinner(matches, team1, team2, s.formWindow), nil
	})
}

// RecentTopPerformers tallies player-of-the-match awards over the most
// recent matches and joins the winners against the player stats table.
// Award winners missing from the stats table are kept with nil Stats.
func (s *PredictionService) RecentTopPerformers(ctx context.Context, window int) ([]TopPerformer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.RecentTopPerformers")
	defer span.End()

	if window <= 0 {
		return nil, fmt.Errorf("%w: window must be positive", ErrInvalidInput)
	}

	key := fmt.Sprintf("predict:top-performers:%d", window)
	return loadCached(ctx, s.store, key, func(ctx context.Context) ([]TopPerformer, error) {
		matches, err := s.matchRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list matches: %w", err)
		}

		recent := make([]match.Match, len(matches))
		copy(recent, matches)
		sort.SliceStable(recent, func(i, j int) bool {
			return recent[i].Date.After(recent[j].Date)
		})
		if len(recent) > window {
			recent = recent[:window]
		}

		awards := make(map[string]int)
		var order []string
		for _, m := range recent {
			name := strings.TrimSpace(m.PlayerOfMatch)
			if name == "" {
				continue
			}
			if _, ok := awards[name]; !ok {
				order = append(order, name)
			}
			awards[name]++
		}

		performers := make([]TopPerformer, 0, len(order))
		for _, name := range order {
			performer := TopPerformer{Name: name, Awards: awards[name]}
			if p, ok, err := s.playerRepo.GetByName(ctx, name); err != nil {
				return nil, fmt.Errorf("get player %q: %w", name, err)
			} else if ok {
				found := p
				performer.Stats = &found
			}
			performers = append(performers, performer)
		}

		sort.SliceStable(performers, func(i, j int) bool {
			return performers[i].Awards > performers[j].Awards
		})
		return performers, nil
	})
}
