package dataset

import "github.com/wicketwise/cricket-insights/internal/domain/schedule"

var fixtureColumns = []string{
	"Home Team",
	"Away Team",
}

// LoadFixtures reads the upcoming schedule source.
func LoadFixtures(path string) ([]schedule.Fixture, error) {
	t, err := readTable(path, fixtureColumns)
	if err != nil {
		return nil, err
	}

	out := make([]schedule.Fixture, 0, len(t.rows))
	for _, record := range t.rows {
		home := t.value(record, "Home Team")
		away := t.value(record, "Away Team")
		if home == "" || away == "" {
			continue
		}
		out = append(out, schedule.Fixture{HomeTeam: home, AwayTeam: away})
	}
	return out, nil
}
