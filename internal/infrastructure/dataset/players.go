package dataset

import (
	"math"
	"strconv"

	"github.com/wicketwise/cricket-insights/internal/domain/player"
)

// noStatsSentinel is how the season statistics export marks absent values.
const noStatsSentinel = "No stats"

// PlayerRow is one raw row of the season statistics source, before cleaning.
type PlayerRow struct {
	Name              string
	MatchesBatted     string
	NotOuts           string
	RunsScored        string
	BallsFaced        string
	BattingAverage    string
	BattingStrikeRate string
	Centuries         string
	MatchesBowled     string
	BallsBowled       string
	RunsConceded      string
	WicketsTaken      string
	BowlingAverage    string
	EconomyRate       string
	BowlingStrikeRate string
	FourWicketHauls   string
	FiveWicketHauls   string
}

var playerColumns = []string{
	"Player_Name",
	"Matches_Batted",
	"Not_Outs",
	"Runs_Scored",
	"Balls_Faced",
	"Batting_Average",
	"Batting_Strike_Rate",
	"Centuries",
	"Matches_Bowled",
	"Balls_Bowled",
	"Runs_Conceded",
	"Wickets_Taken",
	"Bowling_Average",
	"Economy_Rate",
	"Bowling_Strike_Rate",
	"Four_Wicket_Hauls",
	"Five_Wicket_Hauls",
}

// LoadPlayers reads and cleans the season statistics source.
func LoadPlayers(path string) ([]player.Player, error) {
	t, err := readTable(path, playerColumns)
	if err != nil {
		return nil, err
	}

	rows := make([]PlayerRow, 0, len(t.rows))
	for _, record := range t.rows {
		rows = append(rows, PlayerRow{
			Name:              t.value(record, "Player_Name"),
			MatchesBatted:     t.value(record, "Matches_Batted"),
			NotOuts:           t.value(record, "Not_Outs"),
			RunsScored:        t.value(record, "Runs_Scored"),
			BallsFaced:        t.value(record, "Balls_Faced"),
			BattingAverage:    t.value(record, "Batting_Average"),
			BattingStrikeRate: t.value(record, "Batting_Strike_Rate"),
			Centuries:         t.value(record, "Centuries"),
			MatchesBowled:     t.value(record, "Matches_Bowled"),
			BallsBowled:       t.value(record, "Balls_Bowled"),
			RunsConceded:      t.value(record, "Runs_Conceded"),
			WicketsTaken:      t.value(record, "Wickets_Taken"),
			BowlingAverage:    t.value(record, "Bowling_Average"),
			EconomyRate:       t.value(record, "Economy_Rate"),
			BowlingStrikeRate: t.value(record, "Bowling_Strike_Rate"),
			FourWicketHauls:   t.value(record, "Four_Wicket_Hauls"),
			FiveWicketHauls:   t.value(record, "Five_Wicket_Hauls"),
		})
	}

	return CleanPlayers(rows), nil
}

// CleanPlayers normalizes raw season statistics rows: the "No stats" sentinel
// becomes missing, rows without a player name are dropped, and each numeric
// column either parses to a finite number or stays missing. Bad values never
// produce an error.
func CleanPlayers(rows []PlayerRow) []player.Player {
	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		name := row.Name
		if name == "" || name == noStatsSentinel {
			continue
		}
		out = append(out, player.Player{
			Name:              name,
			MatchesBatted:     coerceNumeric(row.MatchesBatted),
			NotOuts:           coerceNumeric(row.NotOuts),
			RunsScored:        coerceNumeric(row.RunsScored),
			BallsFaced:        coerceNumeric(row.BallsFaced),
			BattingAverage:    coerceNumeric(row.BattingAverage),
			BattingStrikeRate: coerceNumeric(row.BattingStrikeRate),
			Centuries:         coerceNumeric(row.Centuries),
			MatchesBowled:     coerceNumeric(row.MatchesBowled),
			BallsBowled:       coerceNumeric(row.BallsBowled),
			RunsConceded:      coerceNumeric(row.RunsConceded),
			WicketsTaken:      coerceNumeric(row.WicketsTaken),
			BowlingAverage:    coerceNumeric(row.BowlingAverage),
			EconomyRate:       coerceNumeric(row.EconomyRate),
			BowlingStrikeRate: coerceNumeric(row.BowlingStrikeRate),
			FourWicketHauls:   coerceNumeric(row.FourWicketHauls),
			FiveWicketHauls:   coerceNumeric(row.FiveWicketHauls),
		})
	}
	return out
}

func coerceNumeric(raw string) *float64 {
	if raw == "" || raw == noStatsSentinel {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	// ParseFloat accepts "NaN" and "Inf"; cleaned columns hold finite
	// numbers or nothing.
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil
	}
	return &value
}
