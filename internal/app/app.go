package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/wicketwise/cricket-insights/internal/config"
	"github.com/wicketwise/cricket-insights/internal/domain/delivery"
	"github.com/wicketwise/cricket-insights/internal/domain/match"
	"github.com/wicketwise/cricket-insights/internal/domain/player"
	"github.com/wicketwise/cricket-insights/internal/domain/schedule"
	"github.com/wicketwise/cricket-insights/internal/infrastructure/dataset"
	"github.com/wicketwise/cricket-insights/internal/infrastructure/repository/memory"
	"github.com/wicketwise/cricket-insights/internal/infrastructure/repository/postgres"
	"github.com/wicketwise/cricket-insights/internal/interfaces/httpapi"
	"github.com/wicketwise/cricket-insights/internal/platform/cache"
	"github.com/wicketwise/cricket-insights/internal/platform/logging"
	"github.com/wicketwise/cricket-insights/internal/usecase"
)

// NewHTTPServer wires the serving stack. With DB_URL unset the four source
// tables are loaded from disk into in-memory repositories and the internal
// reload job can swap them; with DB_URL set, queries read from Postgres and
// the snapshot reload job is unavailable.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	var (
		playerRepo   player.Repository
		matchRepo    match.Repository
		deliveryRepo delivery.Repository
		scheduleRepo schedule.Repository
		reloadSvc    *usecase.ReloadService
	)

	if cfg.DBURL != "" {
		db, err := openDB(ctx, cfg)
		if err != nil {
			return nil, err
		}

		playerRepo = postgres.NewPlayerRepository(db)
		matchRepo = postgres.NewMatchRepository(db)
		deliveryRepo = postgres.NewDeliveryRepository(db)
		scheduleRepo = postgres.NewScheduleRepository(db)

		logger.Info("serving dataset from postgres", "db_name", dbNameFromURL(cfg.DBURL))
	} else {
		loader := dataset.NewLoader(dataset.Paths{
			Players:    cfg.DatasetPlayersPath,
			Matches:    cfg.DatasetMatchesPath,
			Deliveries: cfg.DatasetDeliveriesPath,
			Fixtures:   cfg.DatasetFixturesPath,
		})

		tables, err := loader.LoadAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("load dataset: %w", err)
		}

		playerMem := memory.NewPlayerRepository(tables.Players)
		matchMem := memory.NewMatchRepository(tables.Matches)
		deliveryMem := memory.NewDeliveryRepository(tables.Deliveries)
		scheduleMem := memory.NewScheduleRepository(tables.Fixtures)

		reloadSvc = usecase.NewReloadService(loader, playerMem, matchMem, deliveryMem, scheduleMem, store, logger)

		playerRepo = playerMem
		matchRepo = matchMem
		deliveryRepo = deliveryMem
		scheduleRepo = scheduleMem

		logger.Info("dataset loaded",
			"players", len(tables.Players),
			"matches", len(tables.Matches),
			"deliveries", len(tables.Deliveries),
			"fixtures", len(tables.Fixtures),
		)
	}

	playerStatsSvc := usecase.NewPlayerStatsService(playerRepo, store)
	matchInsightsSvc := usecase.NewMatchInsightsService(matchRepo, deliveryRepo, store)
	duelSvc := usecase.NewDuelService(deliveryRepo, store)
	teamComparisonSvc := usecase.NewTeamComparisonService(matchRepo, store)
	tossSvc := usecase.NewTossService(matchRepo, store)
	predictionSvc := usecase.NewPredictionService(matchRepo, playerRepo, scheduleRepo, store, cfg.PredictionFormWindow)

	handler := httpapi.NewHandler(
		playerStatsSvc,
		matchInsightsSvc,
		duelSvc,
		teamComparisonSvc,
		tossSvc,
		predictionSvc,
		reloadSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
