package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/wicketwise/cricket-insights/internal/infrastructure/dataset"
)

// ImportSnapshot replaces the four tables with the given dataset snapshot
// inside one transaction. Deliveries go through COPY because the ball-by-ball
// table is orders of magnitude larger than the others.
func ImportSnapshot(ctx context.Context, db *sqlx.DB, tables dataset.Tables) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `TRUNCATE players, matches, deliveries, fixtures RESTART IDENTITY`); err != nil {
		return fmt.Errorf("truncate tables: %w", err)
	}

	for _, p := range tables.Players {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO players (
	name, matches_batted, not_outs, runs_scored, balls_faced,
	batting_average, batting_strike_rate, centuries, matches_bowled,
	balls_bowled, runs_conceded, wickets_taken, bowling_average,
	economy_rate, bowling_strike_rate, four_wicket_hauls, five_wicket_hauls
) VALUES (
	:name, :matches_batted, :not_outs, :runs_scored, :balls_faced,
	:batting_average, :batting_strike_rate, :centuries, :matches_bowled,
	:balls_bowled, :runs_conceded, :wickets_taken, :bowling_average,
	:economy_rate, :bowling_strike_rate, :four_wicket_hauls, :five_wicket_hauls
)`, map[string]any{
			"name":                p.Name,
			"matches_batted":      p.MatchesBatted,
			"not_outs":            p.NotOuts,
			"runs_scored":         p.RunsScored,
			"balls_faced":         p.BallsFaced,
			"batting_average":     p.BattingAverage,
			"batting_strike_rate": p.BattingStrikeRate,
			"centuries":           p.Centuries,
			"matches_bowled":      p.MatchesBowled,
			"balls_bowled":        p.BallsBowled,
			"runs_conceded":       p.RunsConceded,
			"wickets_taken":       p.WicketsTaken,
			"bowling_average":     p.BowlingAverage,
			"economy_rate":        p.EconomyRate,
			"bowling_strike_rate": p.BowlingStrikeRate,
			"four_wicket_hauls":   p.FourWicketHauls,
			"five_wicket_hauls":   p.FiveWicketHauls,
		})
		if err != nil {
			return fmt.Errorf("bind insert player %s query: %w", p.Name, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("insert player %s: %w", p.Name, err)
		}
	}

	for _, m := range tables.Matches {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO matches (
	match_id, season, match_date, team1, team2,
	toss_winner, toss_decision, winner, venue, city, player_of_match
) VALUES (
	:match_id, :season, :match_date, :team1, :team2,
	:toss_winner, :toss_decision, :winner, :venue, :city, :player_of_match
)`, map[string]any{
			"match_id":        m.ID,
			"season":          m.Season,
			"match_date":      m.Date,
			"team1":           m.Team1,
			"team2":           m.Team2,
			"toss_winner":     m.TossWinner,
			"toss_decision":   m.TossDecision,
			"winner":          nullableString(m.Winner),
			"venue":           m.Venue,
			"city":            m.City,
			"player_of_match": nullableString(m.PlayerOfMatch),
		})
		if err != nil {
			return fmt.Errorf("bind insert match %s query: %w", m.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("insert match %s: %w", m.ID, err)
		}
	}

	if err := copyDeliveries(ctx, tx, tables); err != nil {
		return err
	}

	for _, f := range tables.Fixtures {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO fixtures (home_team, away_team)
VALUES (:home_team, :away_team)`, map[string]any{
			"home_team": f.HomeTeam,
			"away_team": f.AwayTeam,
		})
		if err != nil {
			return fmt.Errorf("bind insert fixture %s query: %w", f.Label(), err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("insert fixture %s: %w", f.Label(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import tx: %w", err)
	}

	return nil
}

func copyDeliveries(ctx context.Context, tx *sqlx.Tx, tables dataset.Tables) error {
	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("deliveries",
		"match_id", "inning", "over_number", "ball_number",
		"batter", "bowler", "batsman_runs", "total_runs",
		"is_wicket", "player_dismissed", "dismissal_kind",
	))
	if err != nil {
		return fmt.Errorf("prepare deliveries copy: %w", err)
	}

	for _, d := range tables.Deliveries {
		if _, err := stmt.ExecContext(ctx,
			d.MatchID, d.Inning, d.Over, d.Ball,
			d.Batter, d.Bowler, d.BatsmanRuns, d.TotalRuns,
			d.IsWicket, nullableString(d.PlayerDismissed), nullableString(d.DismissalKind),
		); err != nil {
			_ = stmt.Close()
			return fmt.Errorf("copy delivery: %w", err)
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		return fmt.Errorf("flush deliveries copy: %w", err)
	}
	if err := stmt.Close(); err != nil {
		return fmt.Errorf("close deliveries copy: %w", err)
	}

	return nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
