package stats

import (
	"sort"

	"github.com/wicketwise/cricket-insights/internal/domain/match"
)

// TeamWins counts matches won by team.
func TeamWins(matches []match.Match, team string) int {
	wins := 0
	for _, m := range matches {
		if m.Winner == team {
			wins++
		}
	}
	return wins
}

// TopPlayerOfMatch returns the most frequent player-of-match across matches
// won by team. ok is false when the team has no wins with an award recorded.
// Ties resolve to the name seen first in table order.
func TopPlayerOfMatch(matches []match.Match, team string) (string, int, bool) {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, m := range matches {
		if m.Winner != team || m.PlayerOfMatch == "" {
			continue
		}
		if _, seen := counts[m.PlayerOfMatch]; !seen {
			order = append(order, m.PlayerOfMatch)
		}
		counts[m.PlayerOfMatch]++
	}

	best := ""
	bestCount := 0
	for _, name := range order {
		if counts[name] > bestCount {
			best = name
			bestCount = counts[name]
		}
	}
	if best == "" {
		return "", 0, false
	}
	return best, bestCount, true
}

// TossWinRate is the percentage of matches the toss winner went on to win,
// among matches where tossWinner won the toss and chose decision. An empty
// filter set yields exactly 0, never a division error.
func TossWinRate(matches []match.Match, tossWinner, decision string) float64 {
	wins := 0
	total := 0
	for _, m := range matches {
		if m.TossWinner != tossWinner || m.TossDecision != decision {
			continue
		}
		total++
		if m.Winner == tossWinner {
			wins++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(wins) / float64(total) * 100
}

// SeasonWinRow is one (season, winner) win tally.
type SeasonWinRow struct {
	Season string
	Winner string
	Wins   int
}

// SeasonWins tallies wins per team per season, excluding no-result matches.
// Rows are ordered by season then winner. Feeds the season timeline chart.
func SeasonWins(matches []match.Match) []SeasonWinRow {
	type key struct {
		season string
		winner string
	}

	totals := make(map[key]int)
	for _, m := range matches {
		if m.NoResult() {
			continue
		}
		totals[key{season: m.Season, winner: m.Winner}]++
	}

	out := make([]SeasonWinRow, 0, len(totals))
	for k, wins := range totals {
		out = append(out, SeasonWinRow{Season: k.season, Winner: k.winner, Wins: wins})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Season != out[j].Season {
			return out[i].Season < out[j].Season
		}
		return out[i].Winner < out[j].Winner
	})
	return out
}
