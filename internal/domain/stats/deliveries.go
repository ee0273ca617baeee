package stats

import (
	"sort"

	"github.com/wicketwise/cricket-insights/internal/domain/delivery"
)

// OverRuns is the summed total runs for one over of one inning.
type OverRuns struct {
	Inning int
	Over   int
	Runs   int
}

// RunsPerOver groups deliveries by (inning, over) and sums total runs,
// ordered by inning then over. Feeds the match momentum chart.
func RunsPerOver(deliveries []delivery.Delivery) []OverRuns {
	type key struct {
		inning int
		over   int
	}

	totals := make(map[key]int)
	for _, d := range deliveries {
		totals[key{inning: d.Inning, over: d.Over}] += d.TotalRuns
	}

	out := make([]OverRuns, 0, len(totals))
	for k, runs := range totals {
		out = append(out, OverRuns{Inning: k.inning, Over: k.over, Runs: runs})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Inning != out[j].Inning {
			return out[i].Inning < out[j].Inning
		}
		return out[i].Over < out[j].Over
	})
	return out
}

// DuelSummary aggregates one batter-vs-bowler matchup. Balls==0 means the
// pair never faced each other, which callers must distinguish from a faced
// but never-dismissed matchup.
type DuelSummary struct {
	Balls      int
	Runs       int
	Dismissals int
	Fours      int
	Sixes      int
}

// Average is runs per dismissal. ok is false while the batter was never
// dismissed in the matchup (the "not out" sentinel).
func (s DuelSummary) Average() (float64, bool) {
	if s.Dismissals <= 0 {
		return 0, false
	}
	return float64(s.Runs) / float64(s.Dismissals), true
}

// Duel summarizes deliveries already filtered to one batter/bowler pair.
// Dismissals count only balls on which that batter was the one dismissed.
func Duel(deliveries []delivery.Delivery, batter string) DuelSummary {
	summary := DuelSummary{}
	for _, d := range deliveries {
		summary.Balls++
		summary.Runs += d.BatsmanRuns
		if d.PlayerDismissed == batter {
			summary.Dismissals++
		}
		switch d.BatsmanRuns {
		case 4:
			summary.Fours++
		case 6:
			summary.Sixes++
		}
	}
	return summary
}

// DismissalCount is the number of wickets of one dismissal kind.
type DismissalCount struct {
	Kind    string
	Wickets int
}

// DismissalBreakdown tallies wicket deliveries per dismissal kind, ordered
// by descending count then kind for a stable result.
func DismissalBreakdown(deliveries []delivery.Delivery) []DismissalCount {
	totals := make(map[string]int)
	for _, d := range deliveries {
		if !d.IsWicket || d.DismissalKind == "" {
			continue
		}
		totals[d.DismissalKind]++
	}

	out := make([]DismissalCount, 0, len(totals))
	for kind, wickets := range totals {
		out = append(out, DismissalCount{Kind: kind, Wickets: wickets})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Wickets != out[j].Wickets {
			return out[i].Wickets > out[j].Wickets
		}
		return out[i].Kind < out[j].Kind
	})
	return out
}
