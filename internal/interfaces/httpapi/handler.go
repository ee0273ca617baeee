package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/wicketwise/cricket-insights/internal/platform/logging"
	"github.com/wicketwise/cricket-insights/internal/usecase"
)

type Handler struct {
	playerStatsService    *usecase.PlayerStatsService
	matchInsightsService  *usecase.MatchInsightsService
	duelService           *usecase.DuelService
	teamComparisonService *usecase.TeamComparisonService
	tossService           *usecase.TossService
	predictionService     *usecase.PredictionService
	reloadService         *usecase.ReloadService
	logger                *logging.Logger
	validator             *validator.Validate
}

func NewHandler(
	playerStatsService *usecase.PlayerStatsService,
	matchInsightsService *usecase.MatchInsightsService,
	duelService *usecase.DuelService,
	teamComparisonService *usecase.TeamComparisonService,
	tossService *usecase.TossService,
	predictionService *usecase.PredictionService,
	reloadService *usecase.ReloadService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		playerStatsService:    playerStatsService,
		matchInsightsService:  matchInsightsService,
		duelService:           duelService,
		teamComparisonService: teamComparisonService,
		tossService:           tossService,
		predictionService:     predictionService,
		reloadService:         reloadService,
		logger:                logger,
		validator:             validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
