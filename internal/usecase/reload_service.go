package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/wicketwise/cricket-insights/internal/domain/delivery"
	"github.com/wicketwise/cricket-insights/internal/domain/match"
	"github.com/wicketwise/cricket-insights/internal/domain/player"
	"github.com/wicketwise/cricket-insights/internal/domain/schedule"
	"github.com/wicketwise/cricket-insights/internal/infrastructure/dataset"
	"github.com/wicketwise/cricket-insights/internal/platform/cache"
	"github.com/wicketwise/cricket-insights/internal/platform/logging"
)

const (
	reloadStatusSuccess = "success"
	reloadStatusFailed  = "failed"

	reloadTableCount = 4
)

type ReloadTableResult struct {
	Table      string
	Rows       int
	Status     string
	Message    string
	DurationMs int64
}

type ReloadResult struct {
	SuccessCount int
	FailedCount  int
	Swapped      bool
	Tables       []ReloadTableResult
}

// reloadTarget is a repository that can atomically swap its backing rows.
type reloadTarget[T any] interface {
	Replace(items []T)
}

// ReloadService re-reads the source tables and swaps them into the serving
// repositories. The swap is all-or-nothing: if any table fails to load, the
// repositories and cache keep serving the previous snapshot.
type ReloadService struct {
	loader       *dataset.Loader
	playerRepo   reloadTarget[player.Player]
	matchRepo    reloadTarget[match.Match]
	deliveryRepo reloadTarget[delivery.Delivery]
	scheduleRepo reloadTarget[schedule.Fixture]
	store        *cache.Store
	logger       *logging.Logger

	mu sync.Mutex
}

func NewReloadService(
	loader *dataset.Loader,
	playerRepo reloadTarget[player.Player],
	matchRepo reloadTarget[match.Match],
	deliveryRepo reloadTarget[delivery.Delivery],
	scheduleRepo reloadTarget[schedule.Fixture],
	store *cache.Store,
	logger *logging.Logger,
) *ReloadService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &ReloadService{
		loader:       loader,
		playerRepo:   playerRepo,
		matchRepo:    matchRepo,
		deliveryRepo: deliveryRepo,
		scheduleRepo: scheduleRepo,
		store:        store,
		logger:       logger,
	}
}

// Reload loads the four tables on a worker pool and, if every table
// succeeds, replaces the repository contents and purges the cache.
// Concurrent calls are serialized; the second caller reloads again.
func (s *ReloadService) Reload(ctx context.Context) (ReloadResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReloadService.Reload")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		players    []player.Player
		matches    []match.Match
		deliveries []delivery.Delivery
		fixtures   []schedule.Fixture
	)

	tasks := []struct {
		table string
		run   func(context.Context) (int, error)
	}{
		{table: "players", run: func(ctx context.Context) (int, error) {
			rows, err := s.loader.Players(ctx)
			players = rows
			return len(rows), err
		}},
		{table: "matches", run: func(ctx context.Context) (int, error) {
			rows, err := s.loader.Matches(ctx)
			matches = rows
			return len(rows), err
		}},
		{table: "deliveries", run: func(ctx context.Context) (int, error) {
			rows, err := s.loader.Deliveries(ctx)
			deliveries = rows
			return len(rows), err
		}},
		{table: "fixtures", run: func(ctx context.Context) (int, error) {
			rows, err := s.loader.Fixtures(ctx)
			fixtures = rows
			return len(rows), err
		}},
	}

	pool, err := ants.NewPool(reloadTableCount)
	if err != nil {
		return ReloadResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan ReloadTableResult, len(tasks))

	var successCount atomic.Int32
	var failedCount atomic.Int32

	var workers sync.WaitGroup
	for _, task := range tasks {
		task := task
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := ReloadTableResult{Table: task.table, Status: reloadStatusSuccess}

			rows, err := task.run(ctx)
			row.Rows = rows
			row.DurationMs = time.Since(start).Milliseconds()
			if err != nil {
				row.Status = reloadStatusFailed
				row.Message = err.Error()
				failedCount.Add(1)
			} else {
				successCount.Add(1)
			}

			results <- row
		}); err != nil {
			workers.Done()
			return ReloadResult{}, fmt.Errorf("submit table load to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	result := ReloadResult{
		SuccessCount: int(successCount.Load()),
		FailedCount:  int(failedCount.Load()),
		Tables:       make([]ReloadTableResult, 0, len(tasks)),
	}
	for row := range results {
		result.Tables = append(result.Tables, row)
	}
	sort.SliceStable(result.Tables, func(i, j int) bool {
		return result.Tables[i].Table < result.Tables[j].Table
	})

	if result.FailedCount > 0 {
		s.logger.WarnContext(ctx, "dataset reload kept previous snapshot",
			"failed_tables", result.FailedCount)
		return result, nil
	}

	s.playerRepo.Replace(players)
	s.matchRepo.Replace(matches)
	s.deliveryRepo.Replace(deliveries)
	s.scheduleRepo.Replace(fixtures)
	if s.store != nil {
		s.store.Purge(ctx)
	}
	result.Swapped = true

	s.logger.InfoContext(ctx, "dataset reloaded",
		"players", len(players),
		"matches", len(matches),
		"deliveries", len(deliveries),
		"fixtures", len(fixtures))
	return result, nil
}
