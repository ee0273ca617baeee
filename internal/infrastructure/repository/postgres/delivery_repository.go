package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/wicketwise/cricket-insights/internal/domain/delivery"
	qb "github.com/wicketwise/cricket-insights/internal/platform/querybuilder"
)

type DeliveryRepository struct {
	db *sqlx.DB
}

var deliverySelectColumns = []string{
	"id",
	"match_id",
	"inning",
	"over_number",
	"ball_number",
	"batter",
	"bowler",
	"batsman_runs",
	"total_runs",
	"is_wicket",
	"player_dismissed",
	"dismissal_kind",
}

func NewDeliveryRepository(db *sqlx.DB) *DeliveryRepository {
	return &DeliveryRepository{db: db}
}

func (r *DeliveryRepository) ListByMatch(ctx context.Context, matchID string) ([]delivery.Delivery, error) {
	query, args, err := qb.Select(deliverySelectColumns...).From("deliveries").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("inning", "over_number", "ball_number").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select deliveries by match query: %w", err)
	}

	var rows []deliveryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select deliveries by match: %w", err)
	}

	return deliveriesFromRows(rows), nil
}

func (r *DeliveryRepository) ListByBatterAndBowler(ctx context.Context, batter, bowler string) ([]delivery.Delivery, error) {
	query, args, err := qb.Select(deliverySelectColumns...).From("deliveries").
		Where(
			qb.Eq("batter", batter),
			qb.Eq("bowler", bowler),
		).
		OrderBy("match_id", "inning", "over_number", "ball_number").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select deliveries by duel query: %w", err)
	}

	var rows []deliveryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select deliveries by duel: %w", err)
	}

	return deliveriesFromRows(rows), nil
}

func deliveriesFromRows(rows []deliveryTableModel) []delivery.Delivery {
	out := make([]delivery.Delivery, 0, len(rows))
	for _, row := range rows {
		out = append(out, delivery.Delivery{
			MatchID:         row.MatchID,
			Inning:          row.Inning,
			Over:            row.OverNumber,
			Ball:            row.BallNumber,
			Batter:          row.Batter,
			Bowler:          row.Bowler,
			BatsmanRuns:     row.BatsmanRuns,
			TotalRuns:       row.TotalRuns,
			IsWicket:        row.IsWicket,
			PlayerDismissed: row.PlayerDismissed.String,
			DismissalKind:   row.DismissalKind.String,
		})
	}

	return out
}
