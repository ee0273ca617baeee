package usecase

import (
	"errors"
	"testing"

	"github.com/wicketwise/cricket-insights/internal/domain/player"
	"github.com/wicketwise/cricket-insights/internal/infrastructure/repository/memory"
)

func statPtr(v float64) *float64 { return &v }

func seedPlayers() []player.Player {
	return []player.Player{
		{
			Name:              "V Kohli",
			RunsScored:        statPtr(7263),
			BattingStrikeRate: statPtr(130.02),
		},
		{
			Name:         "JJ Bumrah",
			RunsScored:   statPtr(56),
			WicketsTaken: statPtr(145),
			EconomyRate:  statPtr(7.39),
		},
		{
			Name:         "R Ashwin",
			WicketsTaken: statPtr(171),
			EconomyRate:  statPtr(6.99),
		},
	}
}

func TestPlayerStatsService_ListPlayers_Filters(t *testing.T) {
	svc := NewPlayerStatsService(memory.NewPlayerRepository(seedPlayers()), nil)

	t.Run("all", func(t *testing.T) {
		got, err := svc.ListPlayers(t.Context(), PlayerFilter{Type: PlayerFilterAll})
		if err != nil {
			t.Fatalf("list players failed: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("unexpected player count: %d", len(got))
		}
	})

	t.Run("batsmen require runs", func(t *testing.T) {
		got, err := svc.ListPlayers(t.Context(), PlayerFilter{Type: PlayerFilterBatsmen})
		if err != nil {
			t.Fatalf("list players failed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("unexpected batsman count: %d", len(got))
		}
		for _, p := range got {
			if p.Name == "R Ashwin" {
				t.Fatalf("player without runs kept in batsman view")
			}
		}
	})

	t.Run("bowlers require wickets", func(t *testing.T) {
		got, err := svc.ListPlayers(t.Context(), PlayerFilter{Type: PlayerFilterBowlers})
		if err != nil {
			t.Fatalf("list players failed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("unexpected bowler count: %d", len(got))
		}
	})

	t.Run("name selection", func(t *testing.T) {
		got, err := svc.ListPlayers(t.Context(), PlayerFilter{Names: []string{"JJ Bumrah", "Nobody"}})
		if err != nil {
			t.Fatalf("list players failed: %v", err)
		}
		if len(got) != 1 || got[0].Name != "JJ Bumrah" {
			t.Fatalf("unexpected selection: %+v", got)
		}
	})

	t.Run("unknown filter type", func(t *testing.T) {
		_, err := svc.ListPlayers(t.Context(), PlayerFilter{Type: "keepers"})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestPlayerStatsService_TopPlayers(t *testing.T) {
	svc := NewPlayerStatsService(memory.NewPlayerRepository(seedPlayers()), nil)

	got, err := svc.TopPlayers(t.Context(), PlayerFilter{}, player.MetricWicketsTaken, 2, true)
	if err != nil {
		t.Fatalf("top players failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected result count: %d", len(got))
	}
	if got[0].Name != "R Ashwin" || got[1].Name != "JJ Bumrah" {
		t.Fatalf("unexpected order: %s, %s", got[0].Name, got[1].Name)
	}
}

func TestPlayerStatsService_TopPlayers_UnknownMetric(t *testing.T) {
	svc := NewPlayerStatsService(memory.NewPlayerRepository(seedPlayers()), nil)

	_, err := svc.TopPlayers(t.Context(), PlayerFilter{}, "sixes_hit", 5, true)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPlayerStatsService_Headline(t *testing.T) {
	svc := NewPlayerStatsService(memory.NewPlayerRepository(seedPlayers()), nil)

	got, err := svc.Headline(t.Context(), PlayerFilter{})
	if err != nil {
		t.Fatalf("headline failed: %v", err)
	}
	if got.MostRuns == nil || *got.MostRuns != 7263 {
		t.Fatalf("unexpected most runs: %v", got.MostRuns)
	}
	if got.MostWickets == nil || *got.MostWickets != 171 {
		t.Fatalf("unexpected most wickets: %v", got.MostWickets)
	}
	if got.BestEconomy == nil || *got.BestEconomy != 6.99 {
		t.Fatalf("unexpected best economy: %v", got.BestEconomy)
	}
}

func TestPlayerStatsService_Headline_EmptyTable(t *testing.T) {
	svc := NewPlayerStatsService(memory.NewPlayerRepository(nil), nil)

	got, err := svc.Headline(t.Context(), PlayerFilter{})
	if err != nil {
		t.Fatalf("headline failed: %v", err)
	}
	if got.MostRuns != nil || got.BestStrikeRate != nil || got.MostWickets != nil || got.BestEconomy != nil {
		t.Fatalf("expected empty headline, got %+v", got)
	}
}
