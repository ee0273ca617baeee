package httpapi

import (
	"net/http"
	"strings"
)

type duelRequest struct {
	Batter string `validate:"required"`
	Bowler string `validate:"required"`
}

func (h *Handler) GetDuel(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDuel")
	defer span.End()

	query := r.URL.Query()
	req := duelRequest{
		Batter: strings.TrimSpace(query.Get("batter")),
		Bowler: strings.TrimSpace(query.Get("bowler")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	duel, err := h.duelService.GetDuel(ctx, req.Batter, req.Bowler)
	if err != nil {
		h.logger.WarnContext(ctx, "duel lookup failed", "batter", req.Batter, "bowler", req.Bowler, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, duelToDTO(ctx, duel))
}
