package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/wicketwise/cricket-insights/internal/domain/delivery"
	"github.com/wicketwise/cricket-insights/internal/domain/match"
	"github.com/wicketwise/cricket-insights/internal/domain/stats"
	"github.com/wicketwise/cricket-insights/internal/platform/cache"
)

// MatchSummary is the highlights view for one match: the result line plus
// the per-over momentum series.
type MatchSummary struct {
	Match    match.Match
	Momentum []stats.OverRuns
}

// VenueLocation is one distinct venue with mapped coordinates. Unknown
// cities keep (0, 0), mirroring how the dashboard has always plotted them.
type VenueLocation struct {
	Venue string
	City  string
	Lat   float64
	Lon   float64
}

// stadiumLocations maps host cities to stadium coordinates for the venue map.
var stadiumLocations = map[string][2]float64{
	"Mumbai":    {19.0760, 72.8777},
	"Delhi":     {28.6139, 77.2090},
	"Bangalore": {12.9716, 77.5946},
	"Kolkata":   {22.5726, 88.3639},
	"Chennai":   {13.0827, 80.2707},
	"Hyderabad": {17.3850, 78.4867},
	"Ahmedabad": {23.0225, 72.5714},
	"Jaipur":    {26.9124, 75.7873},
}

type MatchInsightsService struct {
	matchRepo    match.Repository
	deliveryRepo delivery.Repository
	store        *cache.Store
}

func NewMatchInsightsService(matchRepo match.Repository, deliveryRepo delivery.Repository, store *cache.Store) *MatchInsightsService {
	return &MatchInsightsService{matchRepo: matchRepo, deliveryRepo: deliveryRepo, store: store}
}

// ListMatches returns the full results table for the selection widget.
func (s *MatchInsightsService) ListMatches(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchInsightsService.ListMatches")
	defer span.End()

	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return matches, nil
}

// GetSummary builds the highlights view for one match id.
func (s *MatchInsightsService) GetSummary(ctx context.Context, matchID string) (MatchSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchInsightsService.GetSummary")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return MatchSummary{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	return loadCached(ctx, s.store, "matches:summary:"+matchID, func(ctx context.Context) (MatchSummary, error) {
		m, exists, err := s.matchRepo.GetByID(ctx, matchID)
		if err != nil {
			return MatchSummary{}, fmt.Errorf("get match: %w", err)
		}
		if !exists {
			return MatchSummary{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
		}

		deliveries, err := s.deliveryRepo.ListByMatch(ctx, matchID)
		if err != nil {
			return MatchSummary{}, fmt.Errorf("list deliveries: %w", err)
		}

		return MatchSummary{
			Match:    m,
			Momentum: stats.RunsPerOver(deliveries),
		}, nil
	})
}

// ListVenues returns distinct (venue, city) pairs annotated with stadium
// coordinates. First appearance in table order wins for duplicates.
func (s *MatchInsightsService) ListVenues(ctx context.Context) ([]VenueLocation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchInsightsService.ListVenues")
	defer span.End()

	return loadCached(ctx, s.store, "matches:venues", func(ctx context.Context) ([]VenueLocation, error) {
		matches, err := s.matchRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list matches: %w", err)
		}

		seen := make(map[string]struct{})
		out := make([]VenueLocation, 0)
		for _, m := range matches {
			if m.Venue == "" {
				continue
			}
			key := m.Venue + "|" + m.City
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}

			coords := stadiumLocations[m.City]
			out = append(out, VenueLocation{
				Venue: m.Venue,
				City:  m.City,
				Lat:   coords[0],
				Lon:   coords[1],
			})
		}
		return out, nil
	})
}
