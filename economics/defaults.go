package economics

import "promisewatch-be/models"

type staticRecord struct {
	value, previous, change float64
	date                    string
	source, sourceURL       string
}

// Last published figures from the national agencies, served when neither
// the remote source nor the cache can answer.
var staticDefaults = map[models.Indicator]staticRecord{
	models.Inflation:    {value: 23.2, previous: 23.5, change: -0.3, date: "2024", source: "GSS", sourceURL: "https://statsghana.gov.gh"},
	models.GDPGrowth:    {value: 2.9, previous: 3.2, change: -0.3, date: "2024-Q3", source: "GSS", sourceURL: "https://statsghana.gov.gh"},
	models.USDGHS:       {value: 15.85, previous: 15.72, change: 0.13, date: "2024-10-01", source: "BoG", sourceURL: "https://www.bog.gov.gh"},
	models.Unemployment: {value: 14.7, previous: 13.4, change: 1.3, date: "2024-Q3", source: "GSS", sourceURL: "https://statsghana.gov.gh"},
	models.PublicDebt:   {value: 88.1, previous: 84.5, change: 3.6, date: "2024-Q3", source: "MoFEP", sourceURL: "https://mofep.gov.gh"},
}

// StaticDefault returns a fresh copy of the embedded record for indicator.
// Unknown indicators get a zero-valued record carrying only the name.
func StaticDefault(indicator models.Indicator) models.IndicatorRecord {
	s, ok := staticDefaults[indicator]
	if !ok {
		return models.IndicatorRecord{Indicator: indicator}
	}
	previous, change := s.previous, s.change
	return models.IndicatorRecord{
		Indicator:     indicator,
		Value:         s.value,
		PreviousValue: &previous,
		Change:        &change,
		Date:          s.date,
		Source:        s.source,
		SourceURL:     s.sourceURL,
	}
}
