package usecase

import (
	"errors"
	"testing"

	"github.com/wicketwise/cricket-insights/internal/domain/delivery"
	"github.com/wicketwise/cricket-insights/internal/infrastructure/repository/memory"
)

func TestDuelService_GetDuel(t *testing.T) {
	deliveryRepo := memory.NewDeliveryRepository([]delivery.Delivery{
		{MatchID: "1001", Batter: "V Kohli", Bowler: "JJ Bumrah", BatsmanRuns: 4, TotalRuns: 4},
		{MatchID: "1001", Batter: "V Kohli", Bowler: "JJ Bumrah", BatsmanRuns: 6, TotalRuns: 6},
		{MatchID: "1002", Batter: "V Kohli", Bowler: "JJ Bumrah", BatsmanRuns: 0, TotalRuns: 0,
			IsWicket: true, PlayerDismissed: "V Kohli", DismissalKind: "bowled"},
		{MatchID: "1002", Batter: "V Kohli", Bowler: "R Ashwin", BatsmanRuns: 1, TotalRuns: 1},
	})

	svc := NewDuelService(deliveryRepo, nil)

	got, err := svc.GetDuel(t.Context(), "V Kohli", "JJ Bumrah")
	if err != nil {
		t.Fatalf("get duel failed: %v", err)
	}
	if got.Summary.Balls != 3 {
		t.Fatalf("unexpected ball count: %d", got.Summary.Balls)
	}
	if got.Summary.Runs != 10 {
		t.Fatalf("unexpected runs: %d", got.Summary.Runs)
	}
	if got.Summary.Dismissals != 1 || got.Summary.Fours != 1 || got.Summary.Sixes != 1 {
		t.Fatalf("unexpected summary: %+v", got.Summary)
	}
	if len(got.Dismissals) != 1 || got.Dismissals[0].Kind != "bowled" {
		t.Fatalf("unexpected dismissal breakdown: %+v", got.Dismissals)
	}
}

func TestDuelService_GetDuel_NoFaceOffs(t *testing.T) {
	svc := NewDuelService(memory.NewDeliveryRepository(nil), nil)

	got, err := svc.GetDuel(t.Context(), "V Kohli", "JJ Bumrah")
	if err != nil {
		t.Fatalf("get duel failed: %v", err)
	}
	if got.Summary.Balls != 0 || len(got.Dismissals) != 0 {
		t.Fatalf("expected an empty duel, got %+v", got)
	}
}

func TestDuelService_GetDuel_RequiresBothNames(t *testing.T) {
	svc := NewDuelService(memory.NewDeliveryRepository(nil), nil)

	if _, err := svc.GetDuel(t.Context(), "", "JJ Bumrah"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.GetDuel(t.Context(), "V Kohli", "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
