package stats

import (
	"testing"

	"github.com/wicketwise/cricket-insights/internal/domain/match"
)

func TestTeamWins(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		{ID: "1", Winner: "Chennai Super Kings"},
		{ID: "2", Winner: "Mumbai Indians"},
		{ID: "3", Winner: "Chennai Super Kings"},
		{ID: "4"}, // no result
	}

	if got := TeamWins(matches, "Chennai Super Kings"); got != 2 {
		t.Fatalf("expected 2 wins, got %d", got)
	}
	if got := TeamWins(matches, "Rajasthan Royals"); got != 0 {
		t.Fatalf("expected 0 wins for absent team, got %d", got)
	}
}

func TestTossWinRate_ScenarioFromHistory(t *testing.T) {
	t.Parallel()

	// Team A wins the toss and bats in 2 of 3 matches, winning 1 of those.
	matches := []match.Match{
		{ID: "1", TossWinner: "A", TossDecision: match.DecisionBat, Winner: "A"},
		{ID: "2", TossWinner: "A", TossDecision: match.DecisionBat, Winner: "B"},
		{ID: "3", TossWinner: "B", TossDecision: match.DecisionField, Winner: "B"},
	}

	if got := TossWinRate(matches, "A", match.DecisionBat); got != 50.0 {
		t.Fatalf("expected 50.0, got %v", got)
	}
}

func TestTossWinRate_EmptyFilterIsZero(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		{ID: "1", TossWinner: "A", TossDecision: match.DecisionBat, Winner: "A"},
	}

	if got := TossWinRate(matches, "A", match.DecisionField); got != 0 {
		t.Fatalf("expected 0 for empty filter set, got %v", got)
	}
	if got := TossWinRate(nil, "A", match.DecisionBat); got != 0 {
		t.Fatalf("expected 0 for empty table, got %v", got)
	}
}

func TestTopPlayerOfMatch(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		{ID: "1", Winner: "A", PlayerOfMatch: "MS Dhoni"},
		{ID: "2", Winner: "A", PlayerOfMatch: "RA Jadeja"},
		{ID: "3", Winner: "A", PlayerOfMatch: "MS Dhoni"},
		{ID: "4", Winner: "B", PlayerOfMatch: "RG Sharma"},
	}

	name, count, ok := TopPlayerOfMatch(matches, "A")
	if !ok || name != "MS Dhoni" || count != 2 {
		t.Fatalf("unexpected result: name=%q count=%d ok=%t", name, count, ok)
	}

	if _, _, ok := TopPlayerOfMatch(matches, "C"); ok {
		t.Fatal("expected ok=false for a team with no wins")
	}
}

func TestSeasonWins(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		{ID: "1", Season: "2024", Winner: "A"},
		{ID: "2", Season: "2024", Winner: "A"},
		{ID: "3", Season: "2024", Winner: "B"},
		{ID: "4", Season: "2025", Winner: "B"},
		{ID: "5", Season: "2025"}, // no result, excluded
	}

	got := SeasonWins(matches)
	want := []SeasonWinRow{
		{Season: "2024", Winner: "A", Wins: 2},
		{Season: "2024", Winner: "B", Wins: 1},
		{Season: "2025", Winner: "B", Wins: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}
