package economics

import (
	"context"
	"strings"
	"time"

	"promisewatch-be/models"
)

// Verdict is the advisory reading of a promise against its indicator. It
// never changes the promise's stored status.
type Verdict string

const (
	OnTrack  Verdict = "on-track"
	OffTrack Verdict = "off-track"
)

// Rules are scanned in order; the first rule with a matching keyword wins.
var indicatorRules = []struct {
	indicator models.Indicator
	keywords  []string
}{
	{models.Inflation, []string{"inflation", "price"}},
	{models.GDPGrowth, []string{"gdp", "growth", "economy"}},
	{models.USDGHS, []string{"cedi", "exchange", "dollar"}},
	{models.Unemployment, []string{"unemployment", "jobs", "employment"}},
	{models.PublicDebt, []string{"debt", "borrow"}},
}

// DetectIndicator finds the indicator a promise's text talks about.
func DetectIndicator(title, description string) (models.Indicator, bool) {
	text := strings.ToLower(title + " " + description)
	for _, rule := range indicatorRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.indicator, true
			}
		}
	}
	return "", false
}

// Classify compares the record's change with the indicator's favourable
// direction: down for inflation, unemployment, debt and the cedi rate,
// non-negative for GDP growth. A record without a change is off-track.
func Classify(rec models.IndicatorRecord) Verdict {
	if rec.Change == nil {
		return OffTrack
	}
	change := *rec.Change
	switch rec.Indicator {
	case models.GDPGrowth:
		if change >= 0 {
			return OnTrack
		}
		return OffTrack
	case models.Inflation, models.Unemployment, models.PublicDebt, models.USDGHS:
		if change < 0 {
			return OnTrack
		}
	}
	return OffTrack
}

type Verification struct {
	PromiseID string                 `json:"promiseId"`
	Indicator models.Indicator       `json:"indicator"`
	Record    models.IndicatorRecord `json:"data"`
	Status    Verdict                `json:"status"`
	CheckedAt time.Time              `json:"lastChecked"`
}

type Verifier struct {
	aggregator *Aggregator
	now        func() time.Time
}

func NewVerifier(aggregator *Aggregator) *Verifier {
	return &Verifier{aggregator: aggregator, now: time.Now}
}

// Verify returns false when the promise mentions no tracked indicator.
func (v *Verifier) Verify(ctx context.Context, p models.Promise) (Verification, bool) {
	indicator, ok := DetectIndicator(p.Title, p.Description)
	if !ok {
		return Verification{}, false
	}
	rec, ok := v.aggregator.One(ctx, indicator)
	if !ok {
		return Verification{}, false
	}
	return Verification{
		PromiseID: p.ID,
		Indicator: indicator,
		Record:    rec,
		Status:    Classify(rec),
		CheckedAt: v.now().UTC(),
	}, true
}
