package postgres

type playerTableModel struct {
	ID                int64    `db:"id"`
	Name              string   `db:"name"`
	MatchesBatted     *float64 `db:"matches_batted"`
	NotOuts           *float64 `db:"not_outs"`
	RunsScored        *float64 `db:"runs_scored"`
	BallsFaced        *float64 `db:"balls_faced"`
	BattingAverage    *float64 `db:"batting_average"`
	BattingStrikeRate *float64 `db:"batting_strike_rate"`
	Centuries         *float64 `db:"centuries"`
	MatchesBowled     *float64 `db:"matches_bowled"`
	BallsBowled       *float64 `db:"balls_bowled"`
	RunsConceded      *float64 `db:"runs_conceded"`
	WicketsTaken      *float64 `db:"wickets_taken"`
	BowlingAverage    *float64 `db:"bowling_average"`
	EconomyRate       *float64 `db:"economy_rate"`
	BowlingStrikeRate *float64 `db:"bowling_strike_rate"`
	FourWicketHauls   *float64 `db:"four_wicket_hauls"`
	FiveWicketHauls   *float64 `db:"five_wicket_hauls"`
}
