package stats

import (
	"sort"

	"github.com/wicketwise/cricket-insights/internal/domain/player"
)

// TopNByMetric returns up to n players ordered by the named metric. The sort
// is stable, so ties keep the original row order. Players with a missing
// value for the metric sort after every player that has one. An empty input
// or unknown metric yields an empty slice.
func TopNByMetric(players []player.Player, metric string, n int, descending bool) []player.Player {
	if n <= 0 || len(players) == 0 || !player.KnownMetric(metric) {
		return []player.Player{}
	}

	out := make([]player.Player, len(players))
	copy(out, players)

	sort.SliceStable(out, func(i, j int) bool {
		left, leftOK := player.MetricValue(out[i], metric)
		right, rightOK := player.MetricValue(out[j], metric)
		if leftOK != rightOK {
			return leftOK
		}
		if !leftOK {
			return false
		}
		if descending {
			return left > right
		}
		return left < right
	})

	if len(out) > n {
		out = out[:n]
	}
	return out
}

const (
	ExtremeMax = "max"
	ExtremeMin = "min"
)

// ExtremeMetric returns the maximum or minimum value of the named metric
// across players. ok is false when the table is empty, the metric is unknown,
// or every row is missing the value.
func ExtremeMetric(players []player.Player, metric, kind string) (float64, bool) {
	best := 0.0
	found := false
	for _, p := range players {
		value, ok := player.MetricValue(p, metric)
		if !ok {
			continue
		}
		if !found {
			best = value
			found = true
			continue
		}
		if kind == ExtremeMin {
			if value < best {
				best = value
			}
			continue
		}
		if value > best {
			best = value
		}
	}
	return best, found
}
