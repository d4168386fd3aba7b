// Package economics fetches, caches and aggregates the macroeconomic
// indicators shown next to manifesto promises.
package economics

import (
	"strings"
	"time"

	"promisewatch-be/models"
)

const (
	defaultWorldBankBaseURL = "https://api.worldbank.org/v2/country/gha/indicator"
	defaultExchangeURL      = "https://api.exchangerate.host/latest?base=USD&symbols=GHS"
)

// Parser turns a raw remote payload into a record. now is the time the
// payload was obtained.
type Parser func(raw []byte, d Descriptor, now time.Time) (models.IndicatorRecord, error)

// Carrier stores previous in a payload whose source publishes only the
// latest value, so Parse can report a change from it.
type Carrier func(raw []byte, previous float64) ([]byte, error)

// Descriptor is everything needed to fetch one indicator.
type Descriptor struct {
	Indicator models.Indicator
	Name      string
	Unit      string
	Endpoint  string
	CacheKey  string
	TTL       time.Duration
	Parse     Parser
	Carry     Carrier
}

// Default returns the embedded fallback record for the descriptor's indicator.
func (d Descriptor) Default() models.IndicatorRecord {
	return StaticDefault(d.Indicator)
}

// Sources holds the remote endpoints; empty fields use the public defaults.
type Sources struct {
	WorldBankBaseURL string
	ExchangeURL      string
}

func (s Sources) worldBank(series string) string {
	base := s.WorldBankBaseURL
	if base == "" {
		base = defaultWorldBankBaseURL
	}
	return strings.TrimRight(base, "/") + "/" + series + "?format=json&per_page=100"
}

func (s Sources) exchange() string {
	if s.ExchangeURL == "" {
		return defaultExchangeURL
	}
	return s.ExchangeURL
}

// Catalog maps each tracked indicator to its descriptor.
type Catalog struct {
	descriptors map[models.Indicator]Descriptor
}

func NewCatalog(descriptors ...Descriptor) Catalog {
	c := Catalog{descriptors: make(map[models.Indicator]Descriptor, len(descriptors))}
	for _, d := range descriptors {
		c.descriptors[d.Indicator] = d
	}
	return c
}

// DefaultCatalog describes the five tracked indicators. Exchange rates move
// fastest and get the shortest TTL; debt figures are published rarely.
func DefaultCatalog(src Sources) Catalog {
	return NewCatalog(
		Descriptor{
			Indicator: models.Inflation,
			Name:      "Inflation Rate",
			Unit:      "%",
			Endpoint:  src.worldBank("FP.CPI.TOTL.ZG"),
			CacheKey:  "econ_inflation_v1",
			TTL:       time.Hour,
			Parse:     ParseWorldBank,
		},
		Descriptor{
			Indicator: models.GDPGrowth,
			Name:      "GDP Growth Rate",
			Unit:      "%",
			Endpoint:  src.worldBank("NY.GDP.MKTP.KD.ZG"),
			CacheKey:  "econ_gdp_v1",
			TTL:       2 * time.Hour,
			Parse:     ParseWorldBank,
		},
		Descriptor{
			Indicator: models.USDGHS,
			Name:      "USD to GHS Rate",
			Unit:      "GHS",
			Endpoint:  src.exchange(),
			CacheKey:  "econ_exchange_v1",
			TTL:       10 * time.Minute,
			Parse:     ParseExchangeRate,
			Carry:     CarryExchangePrevious,
		},
		Descriptor{
			Indicator: models.Unemployment,
			Name:      "Unemployment Rate",
			Unit:      "%",
			Endpoint:  src.worldBank("SL.UEM.TOTL.ZS"),
			CacheKey:  "econ_unemployment_v1",
			TTL:       2 * time.Hour,
			Parse:     ParseWorldBank,
		},
		Descriptor{
			Indicator: models.PublicDebt,
			Name:      "Public Debt",
			Unit:      "% of GDP",
			Endpoint:  src.worldBank("GC.DOD.TOTL.GD.ZS"),
			CacheKey:  "econ_debt_v1",
			TTL:       6 * time.Hour,
			Parse:     ParseWorldBank,
		},
	)
}

func (c Catalog) Lookup(indicator models.Indicator) (Descriptor, bool) {
	d, ok := c.descriptors[indicator]
	return d, ok
}
