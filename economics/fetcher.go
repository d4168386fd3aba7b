package economics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"promisewatch-be/cache"
	"promisewatch-be/models"
)

const defaultUserAgent = "promisewatch-be/1.0"

// NewHTTPClient returns the client used for remote indicator sources. The
// timeout applies per request; a timed-out request takes the same fallback
// path as any other transport failure.
func NewHTTPClient(timeout time.Duration) *resty.Client {
	return resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", defaultUserAgent)
}

// Fetcher produces indicator records, preferring fresh cache, then the
// remote source, then stale cache, then the embedded default.
type Fetcher struct {
	cache  cache.Store
	client *resty.Client
	log    zerolog.Logger
	now    func() time.Time
}

func NewFetcher(store cache.Store, client *resty.Client, log zerolog.Logger) *Fetcher {
	return &Fetcher{
		cache:  store,
		client: client,
		log:    log.With().Str("component", "indicator_fetcher").Logger(),
		now:    time.Now,
	}
}

// WithClock replaces the time source; used by tests.
func (f *Fetcher) WithClock(now func() time.Time) *Fetcher {
	f.now = now
	return f
}

// Fetch never fails: every path ends in a record for d.Indicator.
func (f *Fetcher) Fetch(ctx context.Context, d Descriptor) models.IndicatorRecord {
	now := f.now()
	log := f.log.With().Str("indicator", string(d.Indicator)).Logger()

	if entry, ok := f.readCache(ctx, d, log); ok && entry.Fresh(now, d.TTL) {
		rec, err := d.Parse(entry.Payload, d, entry.CachedAt)
		if err == nil {
			fetchOutcomes.WithLabelValues(string(d.Indicator), outcomeCache).Inc()
			return rec
		}
		log.Warn().Err(err).Msg("cached payload unreadable, refetching")
	}

	rec, err := f.fetchRemote(ctx, d, now, log)
	if err == nil {
		fetchOutcomes.WithLabelValues(string(d.Indicator), outcomeLive).Inc()
		return rec
	}
	log.Warn().Err(err).Msg("remote fetch failed, falling back")

	if entry, ok := f.readCache(ctx, d, log); ok {
		rec, err := d.Parse(entry.Payload, d, entry.CachedAt)
		if err == nil {
			fetchOutcomes.WithLabelValues(string(d.Indicator), outcomeStale).Inc()
			return rec
		}
		log.Warn().Err(err).Msg("stale payload unreadable")
	}

	fetchOutcomes.WithLabelValues(string(d.Indicator), outcomeDefault).Inc()
	return d.Default()
}

func (f *Fetcher) fetchRemote(ctx context.Context, d Descriptor, now time.Time, log zerolog.Logger) (models.IndicatorRecord, error) {
	if d.Endpoint == "" {
		return models.IndicatorRecord{}, errors.New("no endpoint configured")
	}

	start := time.Now()
	resp, err := f.client.R().SetContext(ctx).Get(d.Endpoint)
	remoteDuration.WithLabelValues(string(d.Indicator)).Observe(time.Since(start).Seconds())
	if err != nil {
		return models.IndicatorRecord{}, fmt.Errorf("GET %s: %w", d.Endpoint, err)
	}
	if !resp.IsSuccess() {
		return models.IndicatorRecord{}, fmt.Errorf("GET %s: HTTP %d", d.Endpoint, resp.StatusCode())
	}

	raw := resp.Body()
	rec, err := d.Parse(raw, d, now)
	if err != nil {
		return models.IndicatorRecord{}, fmt.Errorf("parse %s: %w", d.Endpoint, err)
	}

	if d.Carry != nil && rec.PreviousValue == nil {
		if prev, ok := f.priorValue(ctx, d, rec.Date, log); ok {
			raw, rec = f.carry(raw, rec, prev, d, now, log)
		}
	}

	if err := f.cache.Set(ctx, d.CacheKey, cache.Entry{Payload: raw, CachedAt: now}); err != nil {
		log.Warn().Err(err).Str("key", d.CacheKey).Msg("cache write failed")
	}
	return rec, nil
}

// priorValue reads the entry about to be overwritten. A prior payload for the
// same date hands on its own previous value rather than itself.
func (f *Fetcher) priorValue(ctx context.Context, d Descriptor, date string, log zerolog.Logger) (float64, bool) {
	entry, ok := f.readCache(ctx, d, log)
	if !ok {
		return 0, false
	}
	prior, err := d.Parse(entry.Payload, d, entry.CachedAt)
	if err != nil {
		log.Warn().Err(err).Msg("prior payload unreadable, no previous value")
		return 0, false
	}
	if prior.Date != date {
		return prior.Value, true
	}
	if prior.PreviousValue != nil {
		return *prior.PreviousValue, true
	}
	return 0, false
}

func (f *Fetcher) carry(raw []byte, rec models.IndicatorRecord, prev float64, d Descriptor, now time.Time, log zerolog.Logger) ([]byte, models.IndicatorRecord) {
	carried, err := d.Carry(raw, prev)
	if err != nil {
		log.Warn().Err(err).Msg("carry previous value failed")
		return raw, rec
	}
	withPrev, err := d.Parse(carried, d, now)
	if err != nil {
		log.Warn().Err(err).Msg("carried payload unreadable")
		return raw, rec
	}
	return carried, withPrev
}

// readCache treats any cache error as a miss.
func (f *Fetcher) readCache(ctx context.Context, d Descriptor, log zerolog.Logger) (cache.Entry, bool) {
	entry, ok, err := f.cache.Get(ctx, d.CacheKey)
	if err != nil {
		log.Warn().Err(err).Str("key", d.CacheKey).Msg("cache read failed")
		return cache.Entry{}, false
	}
	return entry, ok
}
