package httpapi

import (
	"net/http"
	"strings"
)

type teamComparisonRequest struct {
	Team1 string `validate:"required"`
	Team2 string `validate:"required"`
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.teamComparisonService.ListTeams(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teams)
}

func (h *Handler) CompareTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CompareTeams")
	defer span.End()

	query := r.URL.Query()
	req := teamComparisonRequest{
		Team1: strings.TrimSpace(query.Get("team1")),
		Team2: strings.TrimSpace(query.Get("team2")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	comparison, err := h.teamComparisonService.Compare(ctx, req.Team1, req.Team2)
	if err != nil {
		h.logger.WarnContext(ctx, "team comparison failed", "team1", req.Team1, "team2", req.Team2, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamComparisonToDTO(ctx, comparison))
}
