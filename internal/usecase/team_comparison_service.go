package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/wicketwise/cricket-insights/internal/domain/match"
	"github.com/wicketwise/cricket-insights/internal/domain/stats"
	"github.com/wicketwise/cricket-insights/internal/platform/cache"
)

// teamColors drives the comparison charts on the dashboard. Teams outside
// the map fall back to defaultTeamColor.
var teamColors = map[string]string{
	"Chennai Super Kings":         "#f1c40f",
	"Royal Challengers Bangalore": "#c0392b",
	"Mumbai Indians":              "#2980b9",
	"Sunrisers Hyderabad":         "#e67e22",
	"Kolkata Knight Riders":       "#8e44ad",
	"Delhi Capitals":              "#3498db",
	"Punjab Kings":                "#e74c3c",
	"Rajasthan Royals":            "#ff69b4",
	"Lucknow Super Giants":        "#5dade2",
	"Gujarat Titans":              "#34495e",
}

const defaultTeamColor = "gray"

// TeamColor returns the chart color for a team.
func TeamColor(team string) string {
	if color, ok := teamColors[team]; ok {
		return color
	}
	return defaultTeamColor
}

// TeamSide is one half of a comparison: total wins plus the standout
// player-of-the-match for that team.
type TeamSide struct {
	Name           string
	Color          string
	Wins           int
	TopPlayer      string
	TopPlayerCount int
}

type TeamComparison struct {
	Team1 TeamSide
	Team2 TeamSide
}

type TeamComparisonService struct {
	matchRepo match.Repository
	store     *cache.Store
}

func NewTeamComparisonService(matchRepo match.Repository, store *cache.Store) *TeamComparisonService {
	return &TeamComparisonService{matchRepo: matchRepo, store: store}
}

// ListTeams returns the distinct team names seen across all matches, in
// first-appearance order.
func (s *TeamComparisonService) ListTeams(ctx context.Context) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamComparisonService.ListTeams")
	defer span.End()

	return loadCached(ctx, s.store, "teams:list", func(ctx context.Context) ([]string, error) {
		matches, err := s.matchRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list matches: %w", err)
		}

		seen := make(map[string]struct{})
		var teams []string
		for _, m := range matches {
			for _, team := range []string{m.Team1, m.Team2} {
				if team == "" {
					continue
				}
				if _, ok := seen[team]; ok {
					continue
				}
				seen[team] = struct{}{}
				teams = append(teams, team)
			}
		}
		return teams, nil
	})
}

// Compare builds the side-by-side view for two teams. The two names must
// differ; a team with no recorded matches simply shows zero wins.
func (s *TeamComparisonService) Compare(ctx context.Context, team1, team2 string) (TeamComparison, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamComparisonService.Compare")
	defer span.End()

	team1 = strings.TrimSpace(team1)
	team2 = strings.TrimSpace(team2)
	if team1 == "" || team2 == "" {
		return TeamComparison{}, fmt.Errorf("%w: two team names are required", ErrInvalidInput)
	}
	if team1 == team2 {
		return TeamComparison{}, fmt.Errorf("%w: teams must differ", ErrInvalidInput)
	}

	key := fmt.Sprintf("teams:compare:%s:%s", team1, team2)
	return loadCached(ctx, s.store, key, func(ctx context.Context) (TeamComparison, error) {
		matches, err := s.matchRepo.List(ctx)
		if err != nil {
			return TeamComparison{}, fmt.Errorf("list matches: %w", err)
		}

		return TeamComparison{
			Team1: buildTeamSide(matches, team1),
			Team2: buildTeamSide(matches, team2),
		}, nil
	})
}

func buildTeamSide(matches []match.Match, team string) TeamSide {
	side := TeamSide{
		Name:  team,
		Color: TeamColor(team),
		Wins:  stats.TeamWins(matches, team),
	}
	if name, count, ok := stats.TopPlayerOfMatch(matches, team); ok {
		side.TopPlayer = name
		side.TopPlayerCount = count
	}
	return side
}
