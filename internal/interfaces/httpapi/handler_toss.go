package httpapi

import (
	"net/http"
	"strings"
)

type tossWinRateRequest struct {
	Team     string `validate:"required"`
	Decision string `validate:"required"`
}

func (h *Handler) GetTossWinRate(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTossWinRate")
	defer span.End()

	query := r.URL.Query()
	req := tossWinRateRequest{
		Team:     strings.TrimSpace(query.Get("team")),
		Decision: strings.TrimSpace(query.Get("decision")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	rate, err := h.tossService.WinRate(ctx, req.Team, req.Decision)
	if err != nil {
		h.logger.WarnContext(ctx, "toss win rate failed", "team", req.Team, "decision", req.Decision, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"team":     req.Team,
		"decision": strings.ToLower(req.Decision),
		"winRate":  rate,
	})
}

func (h *Handler) GetTossImpact(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTossImpact")
	defer span.End()

	outcomes, err := h.tossService.Impact(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "toss impact failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]tossOutcomeDTO, 0, len(outcomes))
	for _, outcome := range outcomes {
		items = append(items, tossOutcomeDTO{
			Decision: outcome.Decision,
			Taken:    outcome.Taken,
			Won:      outcome.Won,
			WinRate:  outcome.WinRate,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListSeasonWins(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasonWins")
	defer span.End()

	rows, err := h.tossService.SeasonWins(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "season wins failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonWinsToDTO(ctx, rows))
}
