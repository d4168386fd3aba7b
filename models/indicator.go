package models

import "time"

// Indicator enum
type Indicator string

const (
	Inflation    Indicator = "inflation"
	GDPGrowth    Indicator = "gdp_growth"
	USDGHS       Indicator = "usd_ghs"
	Unemployment Indicator = "unemployment"
	PublicDebt   Indicator = "public_debt"
)

// Indicators lists every tracked indicator in display order.
var Indicators = []Indicator{Inflation, GDPGrowth, USDGHS, Unemployment, PublicDebt}

// Valid reports whether i names a tracked indicator.
func (i Indicator) Valid() bool {
	for _, known := range Indicators {
		if i == known {
			return true
		}
	}
	return false
}

// IndicatorRecord is one economic measurement. Records are built fresh on
// every fetch and never mutated afterwards.
type IndicatorRecord struct {
	Indicator     Indicator `bson:"indicator" json:"indicator"`
	Value         float64   `bson:"value" json:"value"`
	PreviousValue *float64  `bson:"previousValue" json:"previousValue"`
	Change        *float64  `bson:"change" json:"change"`
	Date          string    `bson:"date" json:"date"`
	Source        string    `bson:"source" json:"source"`
	SourceURL     string    `bson:"sourceUrl" json:"sourceUrl"`
}

// NewIndicatorRecord builds a record and derives Change when previous is known.
func NewIndicatorRecord(indicator Indicator, value float64, previous *float64, date, source, sourceURL string) IndicatorRecord {
	rec := IndicatorRecord{
		Indicator: indicator,
		Value:     value,
		Date:      date,
		Source:    source,
		SourceURL: sourceURL,
	}
	if previous != nil {
		prev := *previous
		change := value - prev
		rec.PreviousValue = &prev
		rec.Change = &change
	}
	return rec
}

// IndicatorSnapshot is a saved history point in the economicData collection.
type IndicatorSnapshot struct {
	ID              string `bson:"_id,omitempty" json:"id"`
	IndicatorRecord `bson:",inline"`
	SavedAt         time.Time `bson:"savedAt" json:"savedAt"`
}
