package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/wicketwise/cricket-insights/internal/domain/delivery"
	"github.com/wicketwise/cricket-insights/internal/domain/stats"
	"github.com/wicketwise/cricket-insights/internal/platform/cache"
)

// DuelResult is the batter-vs-bowler view. Summary.Balls == 0 means the two
// never faced each other; callers render that as "no face-offs" rather than
// a zeroed scorecard.
type DuelResult struct {
	Batter     string
	Bowler     string
	Summary    stats.DuelSummary
	Dismissals []stats.DismissalCount
}

type DuelService struct {
	deliveryRepo delivery.Repository
	store        *cache.Store
}

func NewDuelService(deliveryRepo delivery.Repository, store *cache.Store) *DuelService {
	return &DuelService{deliveryRepo: deliveryRepo, store: store}
}

// GetDuel aggregates every delivery between batter and bowler. Names that
// never meet yield an empty result, never an error.
func (s *DuelService) GetDuel(ctx context.Context, batter, bowler string) (DuelResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DuelService.GetDuel")
	defer span.End()

	batter = strings.TrimSpace(batter)
	bowler = strings.TrimSpace(bowler)
	if batter == "" || bowler == "" {
		return DuelResult{}, fmt.Errorf("%w: batter and bowler are required", ErrInvalidInput)
	}

	key := fmt.Sprintf("duel:%s:%s", batter, bowler)
	return loadCached(ctx, s.store, key, func(ctx context.Context) (DuelResult, error) {
		deliveries, err := s.deliveryRepo.ListByBatterAndBowler(ctx, batter, bowler)
		if err != nil {
			return DuelResult{}, fmt.Errorf("list duel deliveries: %w", err)
		}

		return DuelResult{
			Batter:     batter,
			Bowler:     bowler,
			Summary:    stats.Duel(deliveries, batter),
			Dismissals: stats.DismissalBreakdown(deliveries),
		}, nil
	})
}
