// Package repositories reads and writes promises, reports and indicator
// history through a docstore.Store.
package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"

	"promisewatch-be/docstore"
	"promisewatch-be/manifesto"
	"promisewatch-be/models"
)

const PromisesCollection = "promises"

// PromiseRepository seeds, clears and queries promise documents.
type PromiseRepository struct {
	store     docstore.Store
	batchSize int
	log       zerolog.Logger
	now       func() time.Time
}

// NewPromiseRepository clamps batchSize to the store's batch limit.
func NewPromiseRepository(store docstore.Store, batchSize int, log zerolog.Logger) *PromiseRepository {
	if batchSize <= 0 || batchSize > docstore.MaxBatchSize {
		batchSize = docstore.MaxBatchSize
	}
	return &PromiseRepository{
		store:     store,
		batchSize: batchSize,
		log:       log.With().Str("component", "promise_repository").Logger(),
		now:       time.Now,
	}
}

// Seed inserts promises with fresh metadata, one batch per window of
// batchSize, committed in order. The first failing batch stops the run and
// the count of promises already committed is returned with the error.
// There is no natural key, so seeding the same data twice duplicates it.
func (r *PromiseRepository) Seed(ctx context.Context, promises []models.Promise) (int, error) {
	seeded := 0
	for start := 0; start < len(promises); start += r.batchSize {
		end := min(start+r.batchSize, len(promises))

		now := r.now().UTC()
		docs := make([]any, 0, end-start)
		for _, p := range promises[start:end] {
			p.ID = ""
			p.CreatedAt = now
			p.UpdatedAt = now
			p.Views, p.Reports, p.Likes = 0, 0, 0
			docs = append(docs, p)
		}

		if err := r.store.BatchWrite(ctx, PromisesCollection, docs); err != nil {
			seedBatches.WithLabelValues("seed", "error").Inc()
			r.log.Error().Err(err).Int("committed", seeded).Int("batch_start", start).Msg("seed batch failed")
			return seeded, fmt.Errorf("seed batch at %d: %w", start, err)
		}
		seedBatches.WithLabelValues("seed", "ok").Inc()
		seeded += len(docs)
		r.log.Info().Int("batch", len(docs)).Int("total", seeded).Msg("committed promise batch")
	}
	return seeded, nil
}

// SeedAll seeds every embedded manifesto.
func (r *PromiseRepository) SeedAll(ctx context.Context) (int, error) {
	promises, err := manifesto.All()
	if err != nil {
		return 0, err
	}
	return r.Seed(ctx, promises)
}

// SeedSubset seeds one party's manifesto for one election year.
func (r *PromiseRepository) SeedSubset(ctx context.Context, party models.Party, year int) (int, error) {
	table, ok := manifesto.Find(party, year)
	if !ok {
		return 0, fmt.Errorf("%w: no manifesto for %s %d", models.ErrNotFound, party, year)
	}
	promises, err := manifesto.Load(table)
	if err != nil {
		return 0, err
	}
	return r.Seed(ctx, promises)
}

// ClearAll deletes every promise in batches and returns how many were
// deleted before any failure.
func (r *PromiseRepository) ClearAll(ctx context.Context) (int, error) {
	raws, err := r.store.GetAll(ctx, PromisesCollection)
	if err != nil {
		r.log.Error().Err(err).Msg("list promises for clear failed")
		return 0, fmt.Errorf("list promises: %w", err)
	}
	ids, err := docstore.IDs(raws)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for start := 0; start < len(ids); start += r.batchSize {
		end := min(start+r.batchSize, len(ids))
		if err := r.store.BatchDelete(ctx, PromisesCollection, ids[start:end]); err != nil {
			seedBatches.WithLabelValues("clear", "error").Inc()
			r.log.Error().Err(err).Int("deleted", deleted).Msg("clear batch failed")
			return deleted, fmt.Errorf("clear batch at %d: %w", start, err)
		}
		seedBatches.WithLabelValues("clear", "ok").Inc()
		deleted += end - start
		r.log.Info().Int("batch", end-start).Int("total", deleted).Msg("cleared promise batch")
	}
	return deleted, nil
}

// Reseed clears then seeds every manifesto. Seeding is skipped when the
// clear fails.
func (r *PromiseRepository) Reseed(ctx context.Context) (int, error) {
	if _, err := r.ClearAll(ctx); err != nil {
		return 0, fmt.Errorf("reseed: %w", err)
	}
	return r.SeedAll(ctx)
}

// All returns every promise. On failure the slice is empty, never nil, so
// callers can render it directly; the error says why it is empty.
func (r *PromiseRepository) All(ctx context.Context) ([]models.Promise, error) {
	raws, err := r.store.GetAll(ctx, PromisesCollection)
	return r.decode(raws, err, "all")
}

func (r *PromiseRepository) ByCategory(ctx context.Context, category models.PromiseCategory) ([]models.Promise, error) {
	return r.where(ctx, "category", category)
}

func (r *PromiseRepository) ByParty(ctx context.Context, party models.Party) ([]models.Promise, error) {
	return r.where(ctx, "party", party)
}

func (r *PromiseRepository) ByStatus(ctx context.Context, status models.PromiseStatus) ([]models.Promise, error) {
	return r.where(ctx, "status", status)
}

func (r *PromiseRepository) Flagship(ctx context.Context) ([]models.Promise, error) {
	return r.where(ctx, "priority", models.Flagship)
}

// ByRegion returns promises for region plus every national promise.
func (r *PromiseRepository) ByRegion(ctx context.Context, region string) ([]models.Promise, error) {
	all, err := r.All(ctx)
	if err != nil {
		return all, err
	}
	out := make([]models.Promise, 0)
	for _, p := range all {
		if strings.EqualFold(p.Region, region) || p.IsNational() {
			out = append(out, p)
		}
	}
	return out, nil
}

// ByID looks a promise up by its store id.
func (r *PromiseRepository) ByID(ctx context.Context, id string) (models.Promise, error) {
	promises, err := r.All(ctx)
	if err != nil {
		return models.Promise{}, err
	}
	for _, p := range promises {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Promise{}, fmt.Errorf("promise %s: %w", id, models.ErrNotFound)
}

// Search matches keyword case-insensitively against title, description and
// category. The store has no text index, so this scans All in memory.
func (r *PromiseRepository) Search(ctx context.Context, keyword string) ([]models.Promise, error) {
	all, err := r.All(ctx)
	if err != nil {
		return all, err
	}
	needle := strings.ToLower(keyword)
	out := make([]models.Promise, 0)
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) ||
			strings.Contains(strings.ToLower(string(p.Category)), needle) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PromiseRepository) where(ctx context.Context, field string, value any) ([]models.Promise, error) {
	raws, err := r.store.GetWhere(ctx, PromisesCollection, field, value)
	return r.decode(raws, err, field)
}

func (r *PromiseRepository) decode(raws []bson.Raw, err error, query string) ([]models.Promise, error) {
	if err != nil {
		r.log.Error().Err(err).Str("query", query).Msg("promise query failed")
		return []models.Promise{}, errors.Join(models.ErrUnavailable, err)
	}
	promises, err := docstore.Decode[models.Promise](raws)
	if err != nil {
		r.log.Error().Err(err).Str("query", query).Msg("promise decode failed")
		return []models.Promise{}, err
	}
	return promises, nil
}
