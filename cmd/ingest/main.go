package main

import (
	"context"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/wicketwise/cricket-insights/internal/config"
	"github.com/wicketwise/cricket-insights/internal/infrastructure/dataset"
	"github.com/wicketwise/cricket-insights/internal/infrastructure/repository/postgres"
	"github.com/wicketwise/cricket-insights/internal/platform/logging"
)

// Loads the four tabular sources from disk and imports them into Postgres.
// Run migrations first; the import truncates and rewrites the tables.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer logger.Sync()

	if cfg.DBURL == "" {
		logger.Error("DB_URL is required for dataset import")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loader := dataset.NewLoader(dataset.Paths{
		Players:    cfg.DatasetPlayersPath,
		Matches:    cfg.DatasetMatchesPath,
		Deliveries: cfg.DatasetDeliveriesPath,
		Fixtures:   cfg.DatasetFixturesPath,
	})

	started := time.Now()
	tables, err := loader.LoadAll(ctx)
	if err != nil {
		logger.Error("load dataset", "error", err)
		os.Exit(1)
	}

	db, err := sqlx.ConnectContext(ctx, "postgres", normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary))
	if err != nil {
		logger.Error("connect postgres", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.ImportSnapshot(ctx, db, tables); err != nil {
		logger.Error("import dataset", "error", err)
		os.Exit(1)
	}

	logger.Info("dataset imported",
		"players", len(tables.Players),
		"matches", len(tables.Matches),
		"deliveries", len(tables.Deliveries),
		"fixtures", len(tables.Fixtures),
		"took", time.Since(started).String(),
	)
}

func normalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	if !disablePreparedBinaryResult {
		return raw
	}

	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed == nil {
		return raw
	}

	query := parsed.Query()
	if query.Get("disable_prepared_binary_result") == "" {
		query.Set("disable_prepared_binary_result", "yes")
		parsed.RawQuery = query.Encode()
	}

	return parsed.String()
}
