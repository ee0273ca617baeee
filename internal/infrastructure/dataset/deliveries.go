package dataset

import (
	"strconv"

	"github.com/wicketwise/cricket-insights/internal/domain/delivery"
)

var deliveryColumns = []string{
	"match_id",
	"inning",
	"over",
	"ball",
	"batter",
	"bowler",
	"batsman_runs",
	"total_runs",
	"is_wicket",
	"player_dismissed",
	"dismissal_kind",
}

// LoadDeliveries reads the ball-by-ball source, usually a gzip-compressed CSV.
func LoadDeliveries(path string) ([]delivery.Delivery, error) {
	t, err := readTable(path, deliveryColumns)
	if err != nil {
		return nil, err
	}

	out := make([]delivery.Delivery, 0, len(t.rows))
	for _, record := range t.rows {
		matchID := t.value(record, "match_id")
		if matchID == "" {
			continue
		}
		out = append(out, delivery.Delivery{
			MatchID:         matchID,
			Inning:          coerceInt(t.value(record, "inning")),
			Over:            coerceInt(t.value(record, "over")),
			Ball:            coerceInt(t.value(record, "ball")),
			Batter:          t.value(record, "batter"),
			Bowler:          t.value(record, "bowler"),
			BatsmanRuns:     coerceInt(t.value(record, "batsman_runs")),
			TotalRuns:       coerceInt(t.value(record, "total_runs")),
			IsWicket:        coerceBool(t.value(record, "is_wicket")),
			PlayerDismissed: t.value(record, "player_dismissed"),
			DismissalKind:   t.value(record, "dismissal_kind"),
		})
	}
	return out, nil
}

func coerceInt(raw string) int {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}

func coerceBool(raw string) bool {
	switch raw {
	case "1", "true", "True", "TRUE":
		return true
	default:
		return false
	}
}
