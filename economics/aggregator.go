package economics

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"promisewatch-be/models"
)

// Snapshot is one point-in-time view of every tracked indicator.
type Snapshot struct {
	Inflation    models.IndicatorRecord `json:"inflation"`
	GDP          models.IndicatorRecord `json:"gdp"`
	Exchange     models.IndicatorRecord `json:"exchange"`
	Unemployment models.IndicatorRecord `json:"unemployment"`
	Debt         models.IndicatorRecord `json:"debt"`
	LastUpdated  time.Time              `json:"lastUpdated"`
}

// Records returns the snapshot's records in display order.
func (s Snapshot) Records() []models.IndicatorRecord {
	return []models.IndicatorRecord{s.Inflation, s.GDP, s.Exchange, s.Unemployment, s.Debt}
}

// Aggregator fans out to the Fetcher for every tracked indicator.
type Aggregator struct {
	fetcher *Fetcher
	catalog Catalog
	now     func() time.Time
}

func NewAggregator(fetcher *Fetcher, catalog Catalog) *Aggregator {
	return &Aggregator{fetcher: fetcher, catalog: catalog, now: time.Now}
}

// One fetches a single indicator. ok is false for an unknown indicator.
func (a *Aggregator) One(ctx context.Context, indicator models.Indicator) (models.IndicatorRecord, bool) {
	d, ok := a.catalog.Lookup(indicator)
	if !ok {
		if !indicator.Valid() {
			return models.IndicatorRecord{}, false
		}
		return StaticDefault(indicator), true
	}
	return a.fetcher.Fetch(ctx, d), true
}

// All fetches the five indicators concurrently and waits for all of them.
// Fetches cannot fail, so neither can All.
func (a *Aggregator) All(ctx context.Context) Snapshot {
	records := make([]models.IndicatorRecord, len(models.Indicators))

	var g errgroup.Group
	for i, indicator := range models.Indicators {
		g.Go(func() error {
			records[i], _ = a.One(ctx, indicator)
			return nil
		})
	}
	_ = g.Wait()

	return Snapshot{
		Inflation:    records[0],
		GDP:          records[1],
		Exchange:     records[2],
		Unemployment: records[3],
		Debt:         records[4],
		LastUpdated:  a.now().UTC(),
	}
}
