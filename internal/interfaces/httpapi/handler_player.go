package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/wicketwise/cricket-insights/internal/usecase"
)

type topPlayersRequest struct {
	Metric string `validate:"required"`
	Limit  int    `validate:"required,min=1,max=200"`
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	filter := playerFilterFromQuery(r)
	players, err := h.playerStatsService.ListPlayers(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "filter", filter.Type, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(ctx, p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) TopPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TopPlayers")
	defer span.End()

	query := r.URL.Query()
	metric := strings.TrimSpace(query.Get("metric"))
	limit := intQueryParam(query.Get("limit"), 10)
	descending := !strings.EqualFold(strings.TrimSpace(query.Get("order")), "asc")

	if err := h.validateRequest(ctx, topPlayersRequest{Metric: metric, Limit: limit}); err != nil {
		writeError(ctx, w, err)
		return
	}

	filter := playerFilterFromQuery(r)
	players, err := h.playerStatsService.TopPlayers(ctx, filter, metric, limit, descending)
	if err != nil {
		h.logger.WarnContext(ctx, "top players failed", "metric", metric, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(ctx, p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) HeadlineStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.HeadlineStats")
	defer span.End()

	filter := playerFilterFromQuery(r)
	headline, err := h.playerStatsService.Headline(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "headline stats failed", "filter", filter.Type, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, headlineStatsDTO{
		MostRuns:       headline.MostRuns,
		BestStrikeRate: headline.BestStrikeRate,
		MostWickets:    headline.MostWickets,
		BestEconomy:    headline.BestEconomy,
	})
}

func playerFilterFromQuery(r *http.Request) usecase.PlayerFilter {
	query := r.URL.Query()

	filter := usecase.PlayerFilter{Type: strings.TrimSpace(query.Get("type"))}
	for _, name := range strings.Split(query.Get("names"), ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			filter.Names = append(filter.Names, name)
		}
	}
	return filter
}

func intQueryParam(value string, fallback int) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
