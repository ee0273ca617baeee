package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/wicketwise/cricket-insights/internal/domain/match"
	"github.com/wicketwise/cricket-insights/internal/domain/stats"
	"github.com/wicketwise/cricket-insights/internal/platform/cache"
)

// TossDecisionOutcome reports how often a toss decision converted into a
// match win, across every team.
type TossDecisionOutcome struct {
	Decision string
	Taken    int
	Won      int
	WinRate  float64
}

type TossService struct {
	matchRepo match.Repository
	store     *cache.Store
}

func NewTossService(matchRepo match.Repository, store *cache.Store) *TossService {
	return &TossService{matchRepo: matchRepo, store: store}
}

// WinRate is the percentage of matches a team won after winning the toss
// and taking the given decision. A team/decision pair with no matches
// reports zero.
func (s *TossService) WinRate(ctx context.Context, team, decision string) (float64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TossService.WinRate")
	defer span.End()

	team = strings.TrimSpace(team)
	if team == "" {
		return 0, fmt.Errorf("%w: team is required", ErrInvalidInput)
	}
	normalized := match.NormalizeDecision(decision)
	if normalized == "" {
		return 0, fmt.Errorf("%w: unknown toss decision %q", ErrInvalidInput, decision)
	}

	key := fmt.Sprintf("toss:win-rate:%s:%s", team, normalized)
	return loadCached(ctx, s.store, key, func(ctx context.Context) (float64, error) {
		matches, err := s.matchRepo.List(ctx)
		if err != nil {
			return 0, fmt.Errorf("list matches: %w", err)
		}
		return stats.TossWinRate(matches, team, normalized), nil
	})
}

// Impact breaks down toss decisions across all teams: how often each was
// taken and how often the toss winner went on to win the match.
func (s *TossService) Impact(ctx context.Context) ([]TossDecisionOutcome, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TossService.Impact")
	defer span.End()

	return loadCached(ctx, s.store, "toss:impact", func(ctx context.Context) ([]TossDecisionOutcome, error) {
		matches, err := s.matchRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list matches: %w", err)
		}

		outcomes := make([]TossDecisionOutcome, 0, 2)
		for _, decision := range []string{match.DecisionBat, match.DecisionField} {
			outcome := TossDecisionOutcome{Decision: decision}
			for _, m := range matches {
				if m.TossDecision != decision {
					continue
				}
				outcome.Taken++
				if !m.NoResult() && m.Winner == m.TossWinner {
					outcome.Won++
				}
			}
			if outcome.Taken > 0 {
				outcome.WinRate = float64(outcome.Won) / float64(outcome.Taken) * 100
			}
			outcomes = append(outcomes, outcome)
		}
		return outcomes, nil
	})
}

// SeasonWins returns win tallies per season and team, ordered by season
// then team name.
func (s *TossService) SeasonWins(ctx context.Context) ([]stats.SeasonWinRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TossService.SeasonWins")
	defer span.End()

	return loadCached(ctx, s.store, "toss:season-wins", func(ctx context.Context) ([]stats.SeasonWinRow, error) {
		matches, err := s.matchRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list matches: %w", err)
		}
		return stats.SeasonWins(matches), nil
	})
}
