package httpapi

import (
	"net/http"
)

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	matches, err := h.matchInsightsService.ListMatches(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(ctx, m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMatchSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchSummary")
	defer span.End()

	matchID := r.PathValue("matchID")
	summary, err := h.matchInsightsService.GetSummary(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "match summary failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchSummaryToDTO(ctx, summary))
}

func (h *Handler) ListVenues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListVenues")
	defer span.End()

	venues, err := h.matchInsightsService.ListVenues(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list venues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]venueDTO, 0, len(venues))
	for _, v := range venues {
		items = append(items, venueDTO{Venue: v.Venue, City: v.City, Lat: v.Lat, Lon: v.Lon})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
