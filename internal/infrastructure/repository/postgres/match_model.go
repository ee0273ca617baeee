package postgres

import (
	"database/sql"
	"time"
)

type matchTableModel struct {
	ID            int64          `db:"id"`
	MatchID       string         `db:"match_id"`
	Season        string         `db:"season"`
	MatchDate     time.Time      `db:"match_date"`
	Team1         string         `db:"team1"`
	Team2         string         `db:"team2"`
	TossWinner    string         `db:"toss_winner"`
	TossDecision  string         `db:"toss_decision"`
	Winner        sql.NullString `db:"winner"`
	Venue         string         `db:"venue"`
	City          string         `db:"city"`
	PlayerOfMatch sql.NullString `db:"player_of_match"`
}
