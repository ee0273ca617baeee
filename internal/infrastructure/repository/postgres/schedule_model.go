package postgres

type fixtureTableModel struct {
	ID       int64  `db:"id"`
	HomeTeam string `db:"home_team"`
	AwayTeam string `db:"away_team"`
}
