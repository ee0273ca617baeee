package postgres

import "database/sql"

type deliveryTableModel struct {
	ID              int64          `db:"id"`
	MatchID         string         `db:"match_id"`
	Inning          int            `db:"inning"`
	OverNumber      int            `db:"over_number"`
	BallNumber      int            `db:"ball_number"`
	Batter          string         `db:"batter"`
	Bowler          string         `db:"bowler"`
	BatsmanRuns     int            `db:"batsman_runs"`
	TotalRuns       int            `db:"total_runs"`
	IsWicket        bool           `db:"is_wicket"`
	PlayerDismissed sql.NullString `db:"player_dismissed"`
	DismissalKind   sql.NullString `db:"dismissal_kind"`
}
