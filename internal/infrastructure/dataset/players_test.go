package dataset

import (
	"testing"
)

func TestCleanPlayers_SentinelBecomesMissing(t *testing.T) {
	t.Parallel()

	rows := []PlayerRow{
		{
			Name:         "V Kohli",
			RunsScored:   "741",
			EconomyRate:  "No stats",
			WicketsTaken: "",
		},
	}

	got := CleanPlayers(rows)
	if len(got) != 1 {
		t.Fatalf("expected 1 player, got %d", len(got))
	}
	if got[0].RunsScored == nil || *got[0].RunsScored != 741 {
		t.Fatalf("expected runs 741, got %v", got[0].RunsScored)
	}
	if got[0].EconomyRate != nil {
		t.Fatalf("expected sentinel to become missing, got %v", *got[0].EconomyRate)
	}
	if got[0].WicketsTaken != nil {
		t.Fatalf("expected empty value to stay missing, got %v", *got[0].WicketsTaken)
	}
}

func TestCleanPlayers_DropsRowsWithoutName(t *testing.T) {
	t.Parallel()

	rows := []PlayerRow{
		{Name: "", RunsScored: "100"},
		{Name: "No stats", RunsScored: "100"},
		{Name: "MS Dhoni", RunsScored: "161"},
	}

	got := CleanPlayers(rows)
	if len(got) != 1 || got[0].Name != "MS Dhoni" {
		t.Fatalf("expected only MS Dhoni to survive, got %+v", got)
	}
}

func TestCleanPlayers_UnparseableBecomesMissingNotError(t *testing.T) {
	t.Parallel()

	rows := []PlayerRow{
		{Name: "A", BattingAverage: "abc", BattingStrikeRate: "-", Centuries: "2"},
	}

	got := CleanPlayers(rows)
	if len(got) != 1 {
		t.Fatalf("expected 1 player, got %d", len(got))
	}
	if got[0].BattingAverage != nil || got[0].BattingStrikeRate != nil {
		t.Fatal("expected unparseable values to become missing")
	}
	if got[0].Centuries == nil || *got[0].Centuries != 2 {
		t.Fatalf("expected centuries 2, got %v", got[0].Centuries)
	}
}

func TestCleanPlayers_NonFiniteBecomesMissing(t *testing.T) {
	t.Parallel()

	rows := []PlayerRow{
		{
			Name:           "A",
			RunsScored:     "NaN",
			BattingAverage: "Inf",
			EconomyRate:    "-Inf",
			BallsFaced:     "120",
		},
	}

	got := CleanPlayers(rows)
	if len(got) != 1 {
		t.Fatalf("expected 1 player, got %d", len(got))
	}
	if got[0].RunsScored != nil {
		t.Fatalf("expected NaN to become missing, got %v", *got[0].RunsScored)
	}
	if got[0].BattingAverage != nil {
		t.Fatalf("expected Inf to become missing, got %v", *got[0].BattingAverage)
	}
	if got[0].EconomyRate != nil {
		t.Fatalf("expected -Inf to become missing, got %v", *got[0].EconomyRate)
	}
	if got[0].BallsFaced == nil || *got[0].BallsFaced != 120 {
		t.Fatalf("expected balls faced 120, got %v", got[0].BallsFaced)
	}
}
