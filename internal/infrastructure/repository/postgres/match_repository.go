package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/wicketwise/cricket-insights/internal/domain/match"
	qb "github.com/wicketwise/cricket-insights/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

var matchSelectColumns = []string{
	"id",
	"match_id",
	"season",
	"match_date",
	"team1",
	"team2",
	"toss_winner",
	"toss_decision",
	"winner",
	"venue",
	"city",
	"player_of_match",
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select(matchSelectColumns...).From("matches").
		OrderBy("match_date", "match_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}

	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (match.Match, bool, error) {
	query, args, err := qb.Select(matchSelectColumns...).From("matches").
		Where(qb.Eq("match_id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match by id: %w", err)
	}

	return matchFromRow(row), true, nil
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:            row.MatchID,
		Season:        row.Season,
		Date:          row.MatchDate,
		Team1:         row.Team1,
		Team2:         row.Team2,
		TossWinner:    row.TossWinner,
		TossDecision:  row.TossDecision,
		Winner:        row.Winner.String,
		Venue:         row.Venue,
		City:          row.City,
		PlayerOfMatch: row.PlayerOfMatch.String,
	}
}
