package schedule

// Fixture is one upcoming match from the schedule table. No result exists yet.
type Fixture struct {
	HomeTeam string
	AwayTeam string
}

// Label is the display form used to identify a fixture in selection lists.
func (f Fixture) Label() string {
	return f.HomeTeam + " vs " + f.AwayTeam
}
