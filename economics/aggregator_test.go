package economics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promisewatch-be/cache"
	"promisewatch-be/models"
)

// sourcesServer serves inflation and the exchange rate; every other series fails.
func sourcesServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/wb/FP.CPI.TOTL.ZG", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(inflationSeries))
	})
	mux.HandleFunc("/fx", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"date":"2025-03-01","rates":{"GHS":15.5}}`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestAggregatorReturnsEveryIndicator(t *testing.T) {
	srv := sourcesServer(t)
	catalog := DefaultCatalog(Sources{WorldBankBaseURL: srv.URL + "/wb", ExchangeURL: srv.URL + "/fx"})
	agg := NewAggregator(newTestFetcher(cache.NewMemoryStore()), catalog)

	snap := agg.All(context.Background())

	assert.Equal(t, models.Inflation, snap.Inflation.Indicator)
	assert.Equal(t, 38.1, snap.Inflation.Value)
	assert.Equal(t, "World Bank", snap.Inflation.Source)

	assert.Equal(t, models.USDGHS, snap.Exchange.Indicator)
	assert.Equal(t, 15.5, snap.Exchange.Value)

	assert.Equal(t, models.GDPGrowth, snap.GDP.Indicator)
	assert.Equal(t, 2.9, snap.GDP.Value)
	assert.Equal(t, models.Unemployment, snap.Unemployment.Indicator)
	assert.Equal(t, 14.7, snap.Unemployment.Value)
	assert.Equal(t, models.PublicDebt, snap.Debt.Indicator)
	assert.Equal(t, 88.1, snap.Debt.Value)

	assert.False(t, snap.LastUpdated.IsZero())
}

func TestAggregatorWithEverySourceDown(t *testing.T) {
	srv, _ := countingServer(t, http.StatusInternalServerError, "")
	catalog := DefaultCatalog(Sources{WorldBankBaseURL: srv.URL, ExchangeURL: srv.URL})
	agg := NewAggregator(newTestFetcher(cache.NewMemoryStore()), catalog)

	snap := agg.All(context.Background())

	for i, rec := range snap.Records() {
		assert.Equal(t, models.Indicators[i], rec.Indicator)
		assert.Equal(t, StaticDefault(rec.Indicator).Value, rec.Value)
		assert.NotNil(t, rec.Change)
	}
}

func TestAggregatorFillsMissingDescriptorsWithDefaults(t *testing.T) {
	agg := NewAggregator(newTestFetcher(cache.NewMemoryStore()), NewCatalog())

	snap := agg.All(context.Background())
	assert.Equal(t, 23.2, snap.Inflation.Value)
	assert.Equal(t, 15.85, snap.Exchange.Value)
}

func TestAggregatorOneRejectsUnknownIndicator(t *testing.T) {
	agg := NewAggregator(newTestFetcher(cache.NewMemoryStore()), NewCatalog())

	_, ok := agg.One(context.Background(), models.Indicator("housing"))
	assert.False(t, ok)
}

func TestAggregatorRunsFetchesConcurrently(t *testing.T) {
	const delay = 150 * time.Millisecond
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(delay)
		http.Error(w, "slow and broken", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	fetcher := NewFetcher(cache.NewMemoryStore(), NewHTTPClient(5*time.Second), zerolog.Nop())
	agg := NewAggregator(fetcher, DefaultCatalog(Sources{WorldBankBaseURL: srv.URL, ExchangeURL: srv.URL}))

	start := time.Now()
	snap := agg.All(context.Background())
	elapsed := time.Since(start)

	require.Equal(t, 23.2, snap.Inflation.Value)
	assert.Less(t, elapsed, 4*delay, "five fetches should overlap")
}
