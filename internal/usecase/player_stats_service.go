package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/wicketwise/cricket-insights/internal/domain/player"
	"github.com/wicketwise/cricket-insights/internal/domain/stats"
	"github.com/wicketwise/cricket-insights/internal/platform/cache"
)

// Player filter modes from the explorer view.
const (
	PlayerFilterAll     = "all"
	PlayerFilterBatsmen = "batsmen"
	PlayerFilterBowlers = "bowlers"
)

// PlayerFilter narrows the season statistics table before aggregation.
type PlayerFilter struct {
	Type  string
	Names []string
}

// HeadlineStats are the explorer's top-line numbers. A nil field means no
// row in the filtered set carried a usable value for it.
type HeadlineStats struct {
	MostRuns       *float64
	BestStrikeRate *float64
	MostWickets    *float64
	BestEconomy    *float64
}

type PlayerStatsService struct {
	playerRepo player.Repository
	store      *cache.Store
}

func NewPlayerStatsService(playerRepo player.Repository, store *cache.Store) *PlayerStatsService {
	return &PlayerStatsService{playerRepo: playerRepo, store: store}
}

// ListPlayers returns the cleaned table narrowed by filter. An unknown name
// in the selection simply matches nothing.
func (s *PlayerStatsService) ListPlayers(ctx context.Context, filter PlayerFilter) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.ListPlayers")
	defer span.End()

	filterType, err := normalizeFilterType(filter.Type)
	if err != nil {
		return nil, err
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return filterPlayers(players, filterType, filter.Names), nil
}

// TopPlayers ranks the filtered set by metric, capped at n.
func (s *PlayerStatsService) TopPlayers(ctx context.Context, filter PlayerFilter, metric string, n int, descending bool) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.TopPlayers")
	defer span.End()

	if !player.KnownMetric(metric) {
		return nil, fmt.Errorf("%w: unknown metric %q", ErrInvalidInput, metric)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: n must be > 0", ErrInvalidInput)
	}

	key := fmt.Sprintf("players:top:%s:%s:%s:%d:%t", filter.Type, strings.Join(filter.Names, "|"), metric, n, descending)
	return loadCached(ctx, s.store, key, func(ctx context.Context) ([]player.Player, error) {
		filtered, err := s.ListPlayers(ctx, filter)
		if err != nil {
			return nil, err
		}
		return stats.TopNByMetric(filtered, metric, n, descending), nil
	})
}

// Headline computes the explorer's four metric tiles over the filtered set.
func (s *PlayerStatsService) Headline(ctx context.Context, filter PlayerFilter) (HeadlineStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.Headline")
	defer span.End()

	key := fmt.Sprintf("players:headline:%s:%s", filter.Type, strings.Join(filter.Names, "|"))
	return loadCached(ctx, s.store, key, func(ctx context.Context) (HeadlineStats, error) {
		filtered, err := s.ListPlayers(ctx, filter)
		if err != nil {
			return HeadlineStats{}, err
		}

		headline := HeadlineStats{}
		if value, ok := stats.ExtremeMetric(filtered, player.MetricRunsScored, stats.ExtremeMax); ok {
			headline.MostRuns = &value
		}
		if value, ok := stats.ExtremeMetric(filtered, player.MetricBattingStrikeRate, stats.ExtremeMax); ok {
			headline.BestStrikeRate = &value
		}
		if value, ok := stats.ExtremeMetric(filtered, player.MetricWicketsTaken, stats.ExtremeMax); ok {
			headline.MostWickets = &value
		}
		if value, ok := stats.ExtremeMetric(filtered, player.MetricEconomyRate, stats.ExtremeMin); ok {
			headline.BestEconomy = &value
		}
		return headline, nil
	})
}

func normalizeFilterType(value string) (string, error) {
	filterType := strings.ToLower(strings.TrimSpace(value))
	switch filterType {
	case "":
		return PlayerFilterAll, nil
	case PlayerFilterAll, PlayerFilterBatsmen, PlayerFilterBowlers:
		return filterType, nil
	default:
		return "", fmt.Errorf("%w: unknown player filter %q", ErrInvalidInput, value)
	}
}

func filterPlayers(players []player.Player, filterType string, names []string) []player.Player {
	selected := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name != "" {
			selected[name] = struct{}{}
		}
	}

	out := make([]player.Player, 0, len(players))
	for _, p := range players {
		switch filterType {
		case PlayerFilterBatsmen:
			if p.RunsScored == nil || *p.RunsScored <= 0 {
				continue
			}
		case PlayerFilterBowlers:
			if p.WicketsTaken == nil || *p.WicketsTaken <= 0 {
				continue
			}
		}
		if len(selected) > 0 {
			if _, ok := selected[p.Name]; !ok {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}
