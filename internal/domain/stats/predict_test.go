package stats

import (
	"testing"
	"time"

	"github.com/wicketwise/cricket-insights/internal/domain/match"
)

func day(offset int) time.Time {
	return time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func TestRecentForm_WindowAndOrdering(t *testing.T) {
	t.Parallel()

	// Seven matches for A, most recent five: W W L W L -> 3/5.
	matches := []match.Match{
		{ID: "1", Date: day(0), Team1: "A", Team2: "B", Winner: "A"},
		{ID: "2", Date: day(1), Team1: "A", Team2: "C", Winner: "A"},
		{ID: "3", Date: day(2), Team1: "B", Team2: "A", Winner: "B"},
		{ID: "4", Date: day(3), Team1: "A", Team2: "D", Winner: "A"},
		{ID: "5", Date: day(4), Team1: "D", Team2: "A", Winner: "D"},
		{ID: "6", Date: day(5), Team1: "A", Team2: "B", Winner: "A"},
		{ID: "7", Date: day(6), Team1: "C", Team2: "A", Winner: "A"},
	}

	if got := RecentForm(matches, "A", 5); got != 0.6 {
		t.Fatalf("expected 0.6, got %v", got)
	}
}

func TestRecentForm_FewerMatchesThanWindow(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		{ID: "1", Date: day(0), Team1: "A", Team2: "B", Winner: "A"},
		{ID: "2", Date: day(1), Team1: "B", Team2: "A", Winner: "A"},
	}

	if got := RecentForm(matches, "A", 5); got != 1.0 {
		t.Fatalf("expected 1.0 over two straight wins, got %v", got)
	}
}

func TestRecentForm_NoMatchesIsZero(t *testing.T) {
	t.Parallel()

	if got := RecentForm(nil, "A", 5); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	matches := []match.Match{{ID: "1", Team1: "B", Team2: "C", Winner: "B"}}
	if got := RecentForm(matches, "A", 5); got != 0 {
		t.Fatalf("expected 0 when the team never appears, got %v", got)
	}
}

func TestHeadToHead_Symmetric(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		{ID: "1", Team1: "A", Team2: "B", Winner: "A"},
		{ID: "2", Team1: "B", Team2: "A", Winner: "A"},
		{ID: "3", Team1: "B", Team2: "A", Winner: "B"},
		{ID: "4", Team1: "A", Team2: "B"}, // no result, not counted in total
		{ID: "5", Team1: "A", Team2: "C", Winner: "A"},
	}

	forward := HeadToHead(matches, "A", "B")
	if forward.Team1Wins != 2 || forward.Team2Wins != 1 || forward.Total != 3 {
		t.Fatalf("unexpected record: %+v", forward)
	}

	backward := HeadToHead(matches, "B", "A")
	if backward.Team1Wins != forward.Team2Wins || backward.Team2Wins != forward.Team1Wins || backward.Total != forward.Total {
		t.Fatalf("head-to-head is not symmetric: %+v vs %+v", forward, backward)
	}
}

func TestPredictWinner_CombinesFormAndHistory(t *testing.T) {
	t.Parallel()

	// A: form 1.0 over two matches, both head-to-head wins.
	matches := []match.Match{
		{ID: "1", Date: day(0), Team1: "A", Team2: "B", Winner: "A"},
		{ID: "2", Date: day(1), Team1: "B", Team2: "A", Winner: "A"},
	}

	got := PredictWinner(matches, "A", "B", 5)
	if got.Winner != "A" {
		t.Fatalf("expected A, got %q", got.Winner)
	}
	if got.Team1Form != 1.0 || got.Team2Form != 0.0 {
		t.Fatalf("unexpected form: %v / %v", got.Team1Form, got.Team2Form)
	}
	if got.Team1Score != 1.0 || got.Team2Score != 0.0 {
		t.Fatalf("unexpected scores: %v / %v", got.Team1Score, got.Team2Score)
	}
	if got.HeadToHead.Team1Wins != 2 || got.HeadToHead.Total != 2 {
		t.Fatalf("unexpected head-to-head: %+v", got.HeadToHead)
	}
}

func TestPredictWinner_TieGoesToTeam1(t *testing.T) {
	t.Parallel()

	// No history at all: both scores are exactly zero.
	got := PredictWinner(nil, "A", "B", 5)
	if got.Team1Score != got.Team2Score {
		t.Fatalf("expected equal scores, got %v / %v", got.Team1Score, got.Team2Score)
	}
	if got.Winner != "A" {
		t.Fatalf("expected tie to resolve to team1, got %q", got.Winner)
	}

	// Mirrored history: one win each, identical form.
	matches := []match.Match{
		{ID: "1", Date: day(0), Team1: "A", Team2: "B", Winner: "A"},
		{ID: "2", Date: day(1), Team1: "A", Team2: "B", Winner: "B"},
	}
	got = PredictWinner(matches, "A", "B", 5)
	if got.Team1Score != got.Team2Score {
		t.Fatalf("expected equal scores, got %v / %v", got.Team1Score, got.Team2Score)
	}
	if got.Winner != "A" {
		t.Fatalf("expected tie to resolve to team1, got %q", got.Winner)
	}
}
