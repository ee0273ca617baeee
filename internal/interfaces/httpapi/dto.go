package httpapi

import (
	"context"

	"github.com/wicketwise/cricket-insights/internal/domain/match"
	"github.com/wicketwise/cricket-insights/internal/domain/player"
	"github.com/wicketwise/cricket-insights/internal/domain/schedule"
	"github.com/wicketwise/cricket-insights/internal/domain/stats"
	"github.com/wicketwise/cricket-insights/internal/usecase"
)

const matchDateFormat = "2006-01-02"

type playerDTO struct {
	Name              string   `json:"name"`
	MatchesBatted     *float64 `json:"matchesBatted,omitempty"`
	NotOuts           *float64 `json:"notOuts,omitempty"`
	RunsScored        *float64 `json:"runsScored,omitempty"`
	BallsFaced        *float64 `json:"ballsFaced,omitempty"`
	BattingAverage    *float64 `json:"battingAverage,omitempty"`
	BattingStrikeRate *float64 `json:"battingStrikeRate,omitempty"`
	Centuries         *float64 `json:"centuries,omitempty"`
	MatchesBowled     *float64 `json:"matchesBowled,omitempty"`
	BallsBowled       *float64 `json:"ballsBowled,omitempty"`
	RunsConceded      *float64 `json:"runsConceded,omitempty"`
	WicketsTaken      *float64 `json:"wicketsTaken,omitempty"`
	BowlingAverage    *float64 `json:"bowlingAverage,omitempty"`
	EconomyRate       *float64 `json:"economyRate,omitempty"`
	BowlingStrikeRate *float64 `json:"bowlingStrikeRate,omitempty"`
	FourWicketHauls   *float64 `json:"fourWicketHauls,omitempty"`
	FiveWicketHauls   *float64 `json:"fiveWicketHauls,omitempty"`
}

type headlineStatsDTO struct {
	MostRuns       *float64 `json:"mostRuns,omitempty"`
	BestStrikeRate *float64 `json:"bestStrikeRate,omitempty"`
	MostWickets    *float64 `json:"mostWickets,omitempty"`
	BestEconomy    *float64 `json:"bestEconomy,omitempty"`
}

type matchDTO struct {
	ID            string `json:"id"`
	Season        string `json:"season"`
	Date          string `json:"date,omitempty"`
	Team1         string `json:"team1"`
	Team2         string `json:"team2"`
	TossWinner    string `json:"tossWinner"`
	TossDecision  string `json:"tossDecision"`
	Winner        string `json:"winner,omitempty"`
	Venue         string `json:"venue"`
	City          string `json:"city"`
	PlayerOfMatch string `json:"playerOfMatch,omitempty"`
}

type overRunsDTO struct {
	Inning int `json:"inning"`
	Over   int `json:"over"`
	Runs   int `json:"runs"`
}

type matchSummaryDTO struct {
	Match    matchDTO      `json:"match"`
	Momentum []overRunsDTO `json:"momentum"`
}

type venueDTO struct {
	Venue string  `json:"venue"`
	City  string  `json:"city"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

type duelDTO struct {
	Batter     string              `json:"batter"`
	Bowler     string              `json:"bowler"`
	Balls      int                 `json:"balls"`
	Runs       int                 `json:"runs"`
	Dismissals int                 `json:"dismissals"`
	Fours      int                 `json:"fours"`
	Sixes      int                 `json:"sixes"`
	Average    *float64            `json:"average,omitempty"`
	Breakdown  []dismissalCountDTO `json:"dismissalBreakdown"`
}

type dismissalCountDTO struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`
}

type teamSideDTO struct {
	Name           string `json:"name"`
	Color          string `json:"color"`
	Wins           int    `json:"wins"`
	TopPlayer      string `json:"topPlayer,omitempty"`
	TopPlayerCount int    `json:"topPlayerCount,omitempty"`
}

type teamComparisonDTO struct {
	Team1 teamSideDTO `json:"team1"`
	Team2 teamSideDTO `json:"team2"`
}

type tossOutcomeDTO struct {
	Decision string  `json:"decision"`
	Taken    int     `json:"taken"`
	Won      int     `json:"won"`
	WinRate  float64 `json:"winRate"`
}

type seasonWinsDTO struct {
	Season string `json:"season"`
	Winner string `json:"winner"`
	Wins   int    `json:"wins"`
}

type fixtureDTO struct {
	HomeTeam string `json:"homeTeam"`
	AwayTeam string `json:"awayTeam"`
	Label    string `json:"label"`
}

type headToHeadDTO struct {
	Team1Wins int `json:"team1Wins"`
	Team2Wins int `json:"team2Wins"`
	Total     int `json:"total"`
}

type predictionDTO struct {
	Team1      string        `json:"team1"`
	Team2      string        `json:"team2"`
	Winner     string        `json:"winner"`
	Team1Form  float64       `json:"team1Form"`
	Team2Form  float64       `json:"team2Form"`
	Team1Score float64       `json:"team1Score"`
	Team2Score float64       `json:"team2Score"`
	HeadToHead headToHeadDTO `json:"headToHead"`
}

type topPerformerDTO struct {
	Name   string     `json:"name"`
	Awards int        `json:"awards"`
	Stats  *playerDTO `json:"stats,omitempty"`
}

type reloadTableDTO struct {
	Table      string `json:"table"`
	Rows       int    `json:"rows"`
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"durationMs"`
}

type reloadResultDTO struct {
	SuccessCount int              `json:"successCount"`
	FailedCount  int              `json:"failedCount"`
	Swapped      bool             `json:"swapped"`
	Tables       []reloadTableDTO `json:"tables"`
}

func playerToDTO(ctx context.Context, v player.Player) playerDTO {
	ctx, span := startSpan(ctx, "httpapi.playerToDTO")
	defer span.End()

	return playerDTO{
		Name:              v.Name,
		MatchesBatted:     v.MatchesBatted,
		NotOuts:           v.NotOuts,
		RunsScored:        v.RunsScored,
		BallsFaced:        v.BallsFaced,
		BattingAverage:    v.BattingAverage,
		BattingStrikeRate: v.BattingStrikeRate,
		Centuries:         v.Centuries,
		MatchesBowled:     v.MatchesBowled,
		BallsBowled:       v.BallsBowled,
		RunsConceded:      v.RunsConceded,
		WicketsTaken:      v.WicketsTaken,
		BowlingAverage:    v.BowlingAverage,
		EconomyRate:       v.EconomyRate,
		BowlingStrikeRate: v.BowlingStrikeRate,
		FourWicketHauls:   v.FourWicketHauls,
		FiveWicketHauls:   v.FiveWicketHauls,
	}
}

func matchToDTO(ctx context.Context, v match.Match) matchDTO {
	ctx, span := startSpan(ctx, "httpapi.matchToDTO")
	defer span.End()

	date := ""
	if !v.Date.IsZero() {
		date = v.Date.Format(matchDateFormat)
	}

	return matchDTO{
		ID:            v.ID,
		Season:        v.Season,
		Date:          date,
		Team1:         v.Team1,
		Team2:         v.Team2,
		TossWinner:    v.TossWinner,
		TossDecision:  v.TossDecision,
		Winner:        v.Winner,
		Venue:         v.Venue,
		City:          v.City,
		PlayerOfMatch: v.PlayerOfMatch,
	}
}

func matchSummaryToDTO(ctx context.Context, v usecase.MatchSummary) matchSummaryDTO {
	ctx, span := startSpan(ctx, "httpapi.matchSummaryToDTO")
	defer span.End()

	momentum := make([]overRunsDTO, 0, len(v.Momentum))
	for _, over := range v.Momentum {
		momentum = append(momentum, overRunsDTO{
			Inning: over.Inning,
			Over:   over.Over,
			Runs:   over.Runs,
		})
	}

	return matchSummaryDTO{
		Match:    matchToDTO(ctx, v.Match),
		Momentum: momentum,
	}
}

func duelToDTO(ctx context.Context, v usecase.DuelResult) duelDTO {
	ctx, span := startSpan(ctx, "httpapi.duelToDTO")
	defer span.End()

	breakdown := make([]dismissalCountDTO, 0, len(v.Dismissals))
	for _, item := range v.Dismissals {
		breakdown = append(breakdown, dismissalCountDTO{Kind: item.Kind, Count: item.Wickets})
	}

	dto := duelDTO{
		Batter:     v.Batter,
		Bowler:     v.Bowler,
		Balls:      v.Summary.Balls,
		Runs:       v.Summary.Runs,
		Dismissals: v.Summary.Dismissals,
		Fours:      v.Summary.Fours,
		Sixes:      v.Summary.Sixes,
		Breakdown:  breakdown,
	}
	if average, ok := v.Summary.Average(); ok {
		dto.Average = &average
	}
	return dto
}

func teamComparisonToDTO(ctx context.Context, v usecase.TeamComparison) teamComparisonDTO {
	ctx, span := startSpan(ctx, "httpapi.teamComparisonToDTO")
	defer span.End()

	return teamComparisonDTO{
		Team1: teamSideToDTO(v.Team1),
		Team2: teamSideToDTO(v.Team2),
	}
}

func teamSideToDTO(v usecase.TeamSide) teamSideDTO {
	return teamSideDTO{
		Name:           v.Name,
		Color:          v.Color,
		Wins:           v.Wins,
		TopPlayer:      v.TopPlayer,
		TopPlayerCount: v.TopPlayerCount,
	}
}

func seasonWinsToDTO(ctx context.Context, rows []stats.SeasonWinRow) []seasonWinsDTO {
	ctx, span := startSpan(ctx, "httpapi.seasonWinsToDTO")
	defer span.End()

	items := make([]seasonWinsDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, seasonWinsDTO{
			Season: row.Season,
			Winner: row.Winner,
			Wins:   row.Wins,
		})
	}
	return items
}

func fixtureToDTO(ctx context.Context, v schedule.Fixture) fixtureDTO {
	ctx, span := startSpan(ctx, "httpapi.fixtureToDTO")
	defer span.End()

	return fixtureDTO{
		HomeTeam: v.HomeTeam,
		AwayTeam: v.AwayTeam,
		Label:    v.Label(),
	}
}

func predictionToDTO(ctx context.Context, v stats.Prediction) predictionDTO {
	ctx, span := startSpan(ctx, "httpapi.predictionToDTO")
	defer span.End()

	return predictionDTO{
		Team1:      v.Team1,
		Team2:      v.Team2,
		Winner:     v.Winner,
		Team1Form:  v.Team1Form,
		Team2Form:  v.Team2Form,
		Team1Score: v.Team1Score,
		Team2Score: v.Team2Score,
		HeadToHead: headToHeadDTO{
			Team1Wins: v.HeadToHead.Team1Wins,
			Team2Wins: v.HeadToHead.Team2Wins,
			Total:     v.HeadToHead.Total,
		},
	}
}

func topPerformerToDTO(ctx context.Context, v usecase.TopPerformer) topPerformerDTO {
	ctx, span := startSpan(ctx, "httpapi.topPerformerToDTO")
	defer span.End()

	dto := topPerformerDTO{Name: v.Name, Awards: v.Awards}
	if v.Stats != nil {
		mapped := playerToDTO(ctx, *v.Stats)
		dto.Stats = &mapped
	}
	return dto
}

func reloadResultToDTO(ctx context.Context, v usecase.ReloadResult) reloadResultDTO {
	ctx, span := startSpan(ctx, "httpapi.reloadResultToDTO")
	defer span.End()

	tables := make([]reloadTableDTO, 0, len(v.Tables))
	for _, table := range v.Tables {
		tables = append(tables, reloadTableDTO{
			Table:      table.Table,
			Rows:       table.Rows,
			Status:     table.Status,
			Message:    table.Message,
			DurationMs: table.DurationMs,
		})
	}

	return reloadResultDTO{
		SuccessCount: v.SuccessCount,
		FailedCount:  v.FailedCount,
		Swapped:      v.Swapped,
		Tables:       tables,
	}
}
