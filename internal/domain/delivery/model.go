package delivery

// Delivery is one ball from the ball-by-ball table. PlayerDismissed and
// DismissalKind are empty when no wicket fell on the ball.
type Delivery struct {
	MatchID         string
	Inning          int
	Over            int
	Ball            int
	Batter          string
	Bowler          string
	BatsmanRuns     int
	TotalRuns       int
	IsWicket        bool
	PlayerDismissed string
	DismissalKind   string
}
