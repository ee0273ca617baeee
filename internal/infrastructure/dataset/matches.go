package dataset

import (
	"time"

	"github.com/wicketwise/cricket-insights/internal/domain/match"
)

const matchDateLayout = "2006-01-02"

var matchColumns = []string{
	"id",
	"season",
	"date",
	"team1",
	"team2",
	"toss_winner",
	"toss_decision",
	"winner",
	"venue",
	"city",
	"player_of_match",
}

// LoadMatches reads the match results source. Winner and player_of_match stay
// empty for no-result matches; unparseable dates keep a zero time, which
// sorts oldest in the recent-form query.
func LoadMatches(path string) ([]match.Match, error) {
	t, err := readTable(path, matchColumns)
	if err != nil {
		return nil, err
	}

	out := make([]match.Match, 0, len(t.rows))
	for _, record := range t.rows {
		id := t.value(record, "id")
		if id == "" {
			continue
		}

		date := time.Time{}
		if raw := t.value(record, "date"); raw != "" {
			if parsed, parseErr := time.Parse(matchDateLayout, raw); parseErr == nil {
				date = parsed
			}
		}

		out = append(out, match.Match{
			ID:            id,
			Season:        t.value(record, "season"),
			Date:          date,
			Team1:         t.value(record, "team1"),
			Team2:         t.value(record, "team2"),
			TossWinner:    t.value(record, "toss_winner"),
			TossDecision:  match.NormalizeDecision(t.value(record, "toss_decision")),
			Winner:        t.value(record, "winner"),
			Venue:         t.value(record, "venue"),
			City:          t.value(record, "city"),
			PlayerOfMatch: t.value(record, "player_of_match"),
		})
	}
	return out, nil
}
