package player

// Player is one row of the season statistics table. Numeric fields are
// pointers because the source data distinguishes "no stats" from zero.
type Player struct {
	Name              string
	MatchesBatted     *float64
	NotOuts           *float64
	RunsScored        *float64
	BallsFaced        *float64
	BattingAverage    *float64
	BattingStrikeRate *float64
	Centuries         *float64
	MatchesBowled     *float64
	BallsBowled       *float64
	RunsConceded      *float64
	WicketsTaken      *float64
	BowlingAverage    *float64
	EconomyRate       *float64
	BowlingStrikeRate *float64
	FourWicketHauls   *float64
	FiveWicketHauls   *float64
}

// Metric names accepted by the ranking and extreme-value queries.
const (
	MetricMatchesBatted     = "matches_batted"
	MetricNotOuts           = "not_outs"
	MetricRunsScored        = "runs_scored"
	MetricBallsFaced        = "balls_faced"
	MetricBattingAverage    = "batting_average"
	MetricBattingStrikeRate = "batting_strike_rate"
	MetricCenturies         = "centuries"
	MetricMatchesBowled     = "matches_bowled"
	MetricBallsBowled       = "balls_bowled"
	MetricRunsConceded      = "runs_conceded"
	MetricWicketsTaken      = "wickets_taken"
	MetricBowlingAverage    = "bowling_average"
	MetricEconomyRate       = "economy_rate"
	MetricBowlingStrikeRate = "bowling_strike_rate"
	MetricFourWicketHauls   = "four_wicket_hauls"
	MetricFiveWicketHauls   = "five_wicket_hauls"
)

var metricAccessors = map[string]func(Player) *float64{
	MetricMatchesBatted:     func(p Player) *float64 { return p.MatchesBatted },
	MetricNotOuts:           func(p Player) *float64 { return p.NotOuts },
	MetricRunsScored:        func(p Player) *float64 { return p.RunsScored },
	MetricBallsFaced:        func(p Player) *float64 { return p.BallsFaced },
	MetricBattingAverage:    func(p Player) *float64 { return p.BattingAverage },
	MetricBattingStrikeRate: func(p Player) *float64 { return p.BattingStrikeRate },
	MetricCenturies:         func(p Player) *float64 { return p.Centuries },
	MetricMatchesBowled:     func(p Player) *float64 { return p.MatchesBowled },
	MetricBallsBowled:       func(p Player) *float64 { return p.BallsBowled },
	MetricRunsConceded:      func(p Player) *float64 { return p.RunsConceded },
	MetricWicketsTaken:      func(p Player) *float64 { return p.WicketsTaken },
	MetricBowlingAverage:    func(p Player) *float64 { return p.BowlingAverage },
	MetricEconomyRate:       func(p Player) *float64 { return p.EconomyRate },
	MetricBowlingStrikeRate: func(p Player) *float64 { return p.BowlingStrikeRate },
	MetricFourWicketHauls:   func(p Player) *float64 { return p.FourWicketHauls },
	MetricFiveWicketHauls:   func(p Player) *float64 { return p.FiveWicketHauls },
}

// KnownMetric reports whether name maps to a numeric column.
func KnownMetric(name string) bool {
	_, ok := metricAccessors[name]
	return ok
}

// MetricValue returns the metric value for p, ok=false when the column is
// unknown or the value is missing.
func MetricValue(p Player, name string) (float64, bool) {
	accessor, ok := metricAccessors[name]
	if !ok {
		return 0, false
	}
	value := accessor(p)
	if value == nil {
		return 0, false
	}
	return *value, true
}
