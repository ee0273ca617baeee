package httpapi

import (
	"net/http"
	"strings"
)

type predictionRequest struct {
	Team1 string `validate:"required"`
	Team2 string `validate:"required"`
}

type topPerformersRequest struct {
	Window int `validate:"required,min=1,max=100"`
}

func (h *Handler) ListFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixtures")
	defer span.End()

	fixtures, err := h.predictionService.ListFixtures(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list fixtures failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]fixtureDTO, 0, len(fixtures))
	for _, f := range fixtures {
		items = append(items, fixtureToDTO(ctx, f))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) PredictWinner(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PredictWinner")
	defer span.End()

	query := r.URL.Query()
	req := predictionRequest{
		Team1: strings.TrimSpace(query.Get("team1")),
		Team2: strings.TrimSpace(query.Get("team2")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	prediction, err := h.predictionService.Predict(ctx, req.Team1, req.Team2)
	if err != nil {
		h.logger.WarnContext(ctx, "prediction failed", "team1", req.Team1, "team2", req.Team2, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, predictionToDTO(ctx, prediction))
}

func (h *Handler) ListTopPerformers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopPerformers")
	defer span.End()

	window := intQueryParam(r.URL.Query().Get("window"), 10)
	if err := h.validateRequest(ctx, topPerformersRequest{Window: window}); err != nil {
		writeError(ctx, w, err)
		return
	}

	performers, err := h.predictionService.RecentTopPerformers(ctx, window)
	if err != nil {
		h.logger.WarnContext(ctx, "top performers failed", "window", window, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]topPerformerDTO, 0, len(performers))
	for _, performer := range performers {
		items = append(items, topPerformerToDTO(ctx, performer))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
