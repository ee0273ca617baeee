package httpapi

import (
	"fmt"
	"net/http"

	"github.com/wicketwise/cricket-insights/internal/usecase"
)

func (h *Handler) RunDatasetReload(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunDatasetReload")
	defer span.End()

	if h.reloadService == nil {
		writeError(ctx, w, fmt.Errorf("%w: snapshot reload is unavailable when serving from postgres", usecase.ErrDependencyUnavailable))
		return
	}

	result, err := h.reloadService.Reload(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "dataset reload failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, reloadResultToDTO(ctx, result))
}
