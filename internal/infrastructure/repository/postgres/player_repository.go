package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/wicketwise/cricket-insights/internal/domain/player"
	qb "github.com/wicketwise/cricket-insights/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

var playerSelectColumns = []string{
	"id",
	"name",
	"matches_batted",
	"not_outs",
	"runs_scored",
	"balls_faced",
	"batting_average",
	"batting_strike_rate",
	"centuries",
	"matches_bowled",
	"balls_bowled",
	"runs_conceded",
	"wickets_taken",
	"bowling_average",
	"economy_rate",
	"bowling_strike_rate",
	"four_wicket_hauls",
	"five_wicket_hauls",
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}

	return out, nil
}

func (r *PlayerRepository) GetByName(ctx context.Context, name string) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("name", name)).
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player by name query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player by name: %w", err)
	}

	return playerFromRow(row), true, nil
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		Name:              row.Name,
		MatchesBatted:     row.MatchesBatted,
		NotOuts:           row.NotOuts,
		RunsScored:        row.RunsScored,
		BallsFaced:        row.BallsFaced,
		BattingAverage:    row.BattingAverage,
		BattingStrikeRate: row.BattingStrikeRate,
		Centuries:         row.Centuries,
		MatchesBowled:     row.MatchesBowled,
		BallsBowled:       row.BallsBowled,
		RunsConceded:      row.RunsConceded,
		WicketsTaken:      row.WicketsTaken,
		BowlingAverage:    row.BowlingAverage,
		EconomyRate:       row.EconomyRate,
		BowlingStrikeRate: row.BowlingStrikeRate,
		FourWicketHauls:   row.FourWicketHauls,
		FiveWicketHauls:   row.FiveWicketHauls,
	}
}
