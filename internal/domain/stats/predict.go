package stats

import (
	"sort"

	"github.com/wicketwise/cricket-insights/internal/domain/match"
)

// Weights for the outcome heuristic. Kept exactly as the dashboard has
// always computed them; they are illustrative, not calibrated.
const (
	formWeight       = 0.7
	headToHeadWeight = 0.3
)

// DefaultFormWindow is the number of recent matches the form ratio looks at.
const DefaultFormWindow = 5

// RecentForm is the win ratio for team over its most recent matches, newest
// first by date, capped at window. A team with no matches scores exactly 0.
func RecentForm(matches []match.Match, team string, window int) float64 {
	if window <= 0 {
		window = DefaultFormWindow
	}

	involved := make([]match.Match, 0)
	for _, m := range matches {
		if m.Involves(team) {
			involved = append(involved, m)
		}
	}
	if len(involved) == 0 {
		return 0
	}

	sort.SliceStable(involved, func(i, j int) bool {
		return involved[i].Date.After(involved[j].Date)
	})
	if len(involved) > window {
		involved = involved[:window]
	}

	wins := 0
	for _, m := range involved {
		if m.Winner == team {
			wins++
		}
	}
	return float64(wins) / float64(len(involved))
}

// HeadToHeadRecord tallies decided matches between two teams. Total counts
// only matches one of the pair won, so the ratios below always sum to 1
// when any history exists.
type HeadToHeadRecord struct {
	Team1Wins int
	Team2Wins int
	Total     int
}

// HeadToHead counts wins for each side across matches where the pair met in
// either home/away order. Symmetric: swapping the teams swaps the tallies.
func HeadToHead(matches []match.Match, team1, team2 string) HeadToHeadRecord {
	record := HeadToHeadRecord{}
	for _, m := range matches {
		paired := (m.Team1 == team1 && m.Team2 == team2) || (m.Team1 == team2 && m.Team2 == team1)
		if !paired {
			continue
		}
		switch m.Winner {
		case team1:
			record.Team1Wins++
		case team2:
			record.Team2Wins++
		}
	}
	record.Total = record.Team1Wins + record.Team2Wins
	return record
}

// Prediction is the heuristic outcome for an upcoming pairing, including the
// intermediate numbers so callers can show how the pick was made.
type Prediction struct {
	Team1      string
	Team2      string
	Winner     string
	Team1Form  float64
	Team2Form  float64
	Team1Score float64
	Team2Score float64
	HeadToHead HeadToHeadRecord
}

// PredictWinner combines recent form and head-to-head history into a weighted
// score per team and picks the higher one. An exact tie goes to team1; the
// tie-break is deterministic but arbitrary, and consumers should treat the
// whole result as illustrative rather than a statistical model.
func PredictWinner(matches []match.Match, team1, team2 string, formWindow int) Prediction {
	prediction := Prediction{
		Team1:     team1,
		Team2:     team2,
		Team1Form: RecentForm(matches, team1, formWindow),
		Team2Form: RecentForm(matches, team2, formWindow),
	}

	record := HeadToHead(matches, team1, team2)
	prediction.HeadToHead = record

	team1Ratio := 0.0
	team2Ratio := 0.0
	if record.Total > 0 {
		team1Ratio = float64(record.Team1Wins) / float64(record.Total)
		team2Ratio = float64(record.Team2Wins) / float64(record.Total)
	}

	prediction.Team1Score = prediction.Team1Form*formWeight + team1Ratio*headToHeadWeight
	prediction.Team2Score = prediction.Team2Form*formWeight + team2Ratio*headToHeadWeight

	prediction.Winner = team1
	if prediction.Team2Score > prediction.Team1Score {
		prediction.Winner = team2
	}
	return prediction
}
