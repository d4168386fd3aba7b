package repositories

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"promisewatch-be/docstore"
	"promisewatch-be/models"
)

const (
	EconomicDataCollection = "economicData"
	DefaultHistoryLimit    = 12
)

// IndicatorHistoryRepository keeps saved indicator snapshots.
type IndicatorHistoryRepository struct {
	store docstore.Store
	log   zerolog.Logger
	now   func() time.Time
}

func NewIndicatorHistoryRepository(store docstore.Store, log zerolog.Logger) *IndicatorHistoryRepository {
	return &IndicatorHistoryRepository{
		store: store,
		log:   log.With().Str("component", "indicator_history").Logger(),
		now:   time.Now,
	}
}

// Save stores rec as a new history point.
func (r *IndicatorHistoryRepository) Save(ctx context.Context, rec models.IndicatorRecord) (string, error) {
	if !rec.Indicator.Valid() {
		return "", fmt.Errorf("%w: unknown indicator %q", models.ErrValidation, rec.Indicator)
	}
	snap := models.IndicatorSnapshot{IndicatorRecord: rec, SavedAt: r.now().UTC()}
	id, err := r.store.AddOne(ctx, EconomicDataCollection, snap)
	if err != nil {
		r.log.Error().Err(err).Str("indicator", string(rec.Indicator)).Msg("save indicator snapshot failed")
		return "", fmt.Errorf("save %s snapshot: %w", rec.Indicator, err)
	}
	return id, nil
}

// SaveAll stores every record, stopping at the first failure.
func (r *IndicatorHistoryRepository) SaveAll(ctx context.Context, recs []models.IndicatorRecord) (int, error) {
	for i, rec := range recs {
		if _, err := r.Save(ctx, rec); err != nil {
			return i, err
		}
	}
	return len(recs), nil
}

// History returns up to limit snapshots for indicator ordered by the end of
// the period their date names, newest first, with savedAt breaking ties.
// A date in no known format is ordered by its savedAt. A non-positive limit uses
// DefaultHistoryLimit.
func (r *IndicatorHistoryRepository) History(ctx context.Context, indicator models.Indicator, limit int) ([]models.IndicatorSnapshot, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	raws, err := r.store.GetWhere(ctx, EconomicDataCollection, "indicator", indicator)
	if err != nil {
		r.log.Error().Err(err).Str("indicator", string(indicator)).Msg("history query failed")
		return []models.IndicatorSnapshot{}, errors.Join(models.ErrUnavailable, err)
	}
	snaps, err := docstore.Decode[models.IndicatorSnapshot](raws)
	if err != nil {
		return []models.IndicatorSnapshot{}, err
	}
	keys := make([]time.Time, len(snaps))
	for i, s := range snaps {
		keys[i] = s.SavedAt
		if end, ok := periodEnd(s.Date); ok {
			keys[i] = end
		}
	}
	idx := make([]int, len(snaps))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		i, j := idx[a], idx[b]
		if !keys[i].Equal(keys[j]) {
			return keys[i].After(keys[j])
		}
		return snaps[i].SavedAt.After(snaps[j].SavedAt)
	})
	ordered := make([]models.IndicatorSnapshot, 0, len(snaps))
	for _, i := range idx {
		ordered = append(ordered, snaps[i])
	}
	snaps = ordered
	if len(snaps) > limit {
		snaps = snaps[:limit]
	}
	return snaps, nil
}

// periodEnd reads the date labels sources publish: RFC3339 instants, days,
// months, quarters ("2024-Q3") and years. It returns the instant the period
// closes.
func periodEnd(label string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, label); err == nil {
		return t.UTC(), true
	}
	if t, err := time.Parse(time.DateOnly, label); err == nil {
		return t.AddDate(0, 0, 1), true
	}
	if t, err := time.Parse("2006-01", label); err == nil {
		return t.AddDate(0, 1, 0), true
	}
	var year, quarter int
	if n, err := fmt.Sscanf(label, "%4d-Q%1d", &year, &quarter); err == nil && n == 2 && len(label) == 7 && quarter >= 1 && quarter <= 4 {
		return time.Date(year, time.Month(3*quarter+1), 1, 0, 0, 0, 0, time.UTC), true
	}
	if t, err := time.Parse("2006", label); err == nil {
		return t.AddDate(1, 0, 0), true
	}
	return time.Time{}, false
}
