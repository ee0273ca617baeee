package match

import (
	"strings"
	"time"
)

const (
	DecisionBat   = "bat"
	DecisionField = "field"
)

// Match is one completed (or abandoned) match from the results table.
// Winner and PlayerOfMatch are empty for no-result matches.
type Match struct {
	ID            string
	Season        string
	Date          time.Time
	Team1         string
	Team2         string
	TossWinner    string
	TossDecision  string
	Winner        string
	Venue         string
	City          string
	PlayerOfMatch string
}

// Involves reports whether team played in m on either side.
func (m Match) Involves(team string) bool {
	return m.Team1 == team || m.Team2 == team
}

// NoResult reports whether the match produced no winner.
func (m Match) NoResult() bool {
	return m.Winner == ""
}

func NormalizeDecision(value string) string {
	decision := strings.ToLower(strings.TrimSpace(value))
	switch decision {
	case DecisionBat, DecisionField:
		return decision
	default:
		return ""
	}
}
