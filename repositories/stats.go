package repositories

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"promisewatch-be/docstore"
	"promisewatch-be/models"
)

// ComputeStats summarises promises and the report count. Every tracked
// party, status and category appears in the maps, zero or not; values
// outside the tracked sets count toward the total only.
func ComputeStats(promises []models.Promise, reportCount int) models.Stats {
	stats := models.Stats{
		TotalPromises: len(promises),
		TotalReports:  reportCount,
		ByParty:       make(map[models.Party]int, len(models.Parties)),
		ByStatus:      make(map[models.PromiseStatus]int, len(models.TrackedStatuses)),
		ByCategory:    make(map[models.PromiseCategory]int, len(models.TrackedCategories)),
	}
	for _, p := range models.Parties {
		stats.ByParty[p] = 0
	}
	for _, s := range models.TrackedStatuses {
		stats.ByStatus[s] = 0
	}
	for _, c := range models.TrackedCategories {
		stats.ByCategory[c] = 0
	}

	for _, p := range promises {
		if _, ok := stats.ByParty[p.Party]; ok {
			stats.ByParty[p.Party]++
		}
		if _, ok := stats.ByStatus[p.Status]; ok {
			stats.ByStatus[p.Status]++
		}
		if _, ok := stats.ByCategory[p.Category]; ok {
			stats.ByCategory[p.Category]++
		}
		if p.Priority == models.Flagship {
			stats.FlagshipPromises++
		}
	}
	return stats
}

// StatsRepository builds the statistics summary from the store.
type StatsRepository struct {
	store docstore.Store
	log   zerolog.Logger
}

func NewStatsRepository(store docstore.Store, log zerolog.Logger) *StatsRepository {
	return &StatsRepository{store: store, log: log.With().Str("component", "stats_repository").Logger()}
}

// Stats reads promises and reports concurrently. A failed read yields nil,
// never a zero-filled summary: nil means unavailable, zeros mean empty.
func (r *StatsRepository) Stats(ctx context.Context) (*models.Stats, error) {
	var (
		promises    []models.Promise
		reportCount int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		raws, err := r.store.GetAll(gctx, PromisesCollection)
		if err != nil {
			return fmt.Errorf("read promises: %w", err)
		}
		promises, err = docstore.Decode[models.Promise](raws)
		return err
	})
	g.Go(func() error {
		raws, err := r.store.GetAll(gctx, ReportsCollection)
		if err != nil {
			return fmt.Errorf("read reports: %w", err)
		}
		reportCount = len(raws)
		return nil
	})
	if err := g.Wait(); err != nil {
		r.log.Error().Err(err).Msg("stats unavailable")
		return nil, fmt.Errorf("%w: %w", models.ErrUnavailable, err)
	}

	stats := ComputeStats(promises, reportCount)
	return &stats, nil
}
