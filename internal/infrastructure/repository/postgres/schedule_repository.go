package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/wicketwise/cricket-insights/internal/domain/schedule"
	qb "github.com/wicketwise/cricket-insights/internal/platform/querybuilder"
)

type ScheduleRepository struct {
	db *sqlx.DB
}

var fixtureSelectColumns = []string{
	"id",
	"home_team",
	"away_team",
}

func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) List(ctx context.Context) ([]schedule.Fixture, error) {
	query, args, err := qb.Select(fixtureSelectColumns...).From("fixtures").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fixtures query: %w", err)
	}

	var rows []fixtureTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fixtures: %w", err)
	}

	out := make([]schedule.Fixture, 0, len(rows))
	for _, row := range rows {
		out = append(out, schedule.Fixture{
			HomeTeam: row.HomeTeam,
			AwayTeam: row.AwayTeam,
		})
	}

	return out, nil
}
