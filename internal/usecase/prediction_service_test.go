package usecase

import (
	"errors"
	"testing"

	"github.com/wicketwise/cricket-insights/internal/domain/schedule"
	"github.com/wicketwise/cricket-insights/internal/infrastructure/repository/memory"
)

func newPredictionService(t *testing.T) *PredictionService {
	t.Helper()
	return NewPredictionService(
		memory.NewMatchRepository(seedMatches()),
		memory.NewPlayerRepository(seedPlayers()),
		memory.NewScheduleRepository([]schedule.Fixture{
			{HomeTeam: "Chennai Super Kings", AwayTeam: "Mumbai Indians"},
			{HomeTeam: "Gujarat Titans", AwayTeam: "Mumbai Indians"},
		}),
		nil,
		0,
	)
}

func TestPredictionService_ListFixtures(t *testing.T) {
	svc := newPredictionService(t)

	got, err := svc.ListFixtures(t.Context())
	if err != nil {
		t.Fatalf("list fixtures failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected fixture count: %d", len(got))
	}
	if got[0].Label() != "Chennai Super Kings vs Mumbai Indians" {
		t.Fatalf("unexpected first fixture: %s", got[0].Label())
	}
}

func TestPredictionService_Predict(t *testing.T) {
	svc := newPredictionService(t)

	got, err := svc.Predict(t.Context(), "Chennai Super Kings", "Mumbai Indians")
	if err != nil {
		t.Fatalf("predict failed: %v", err)
	}
	// CSK played 1001 (won) and 1003 (no result); MI played 1001 (lost)
	// and 1002 (won). Their only meeting went to CSK.
	if got.Winner != "Chennai Super Kings" {
		t.Fatalf("unexpected winner: %s", got.Winner)
	}
	if got.HeadToHead.Team1Wins != 1 || got.HeadToHead.Team2Wins != 0 || got.HeadToHead.Total != 1 {
		t.Fatalf("unexpected head-to-head: %+v", got.HeadToHead)
	}
	if got.Team1Score <= got.Team2Score {
		t.Fatalf("expected team1 to outscore team2: %+v", got)
	}
}

func TestPredictionService_Predict_InvalidInput(t *testing.T) {
	svc := newPredictionService(t)

	if _, err := svc.Predict(t.Context(), "", "Mumbai Indians"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Predict(t.Context(), "Mumbai Indians", "Mumbai Indians"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPredictionService_RecentTopPerformers(t *testing.T) {
	svc := newPredictionService(t)

	got, err := svc.RecentTopPerformers(t.Context(), 5)
	if err != nil {
		t.Fatalf("recent top performers failed: %v", err)
	}
	// 1003 has no award; 1002 and 1001 each crowned one player.
	if len(got) != 2 {
		t.Fatalf("unexpected performer count: %d", len(got))
	}
	for _, performer := range got {
		if performer.Awards != 1 {
			t.Fatalf("unexpected award count: %+v", performer)
		}
	}

	// JJ Bumrah exists in the stats table, RD Gaikwad does not.
	byName := make(map[string]TopPerformer, len(got))
	for _, performer := range got {
		byName[performer.Name] = performer
	}
	if byName["JJ Bumrah"].Stats == nil {
		t.Fatalf("expected stats join for JJ Bumrah")
	}
	if byName["RD Gaikwad"].Stats != nil {
		t.Fatalf("expected nil stats for player missing from the table")
	}
}

func TestPredictionService_RecentTopPerformers_InvalidWindow(t *testing.T) {
	svc := newPredictionService(t)

	if _, err := svc.RecentTopPerformers(t.Context(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
