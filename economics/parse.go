package economics

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"promisewatch-be/models"
)

var (
	ErrUnexpectedShape = errors.New("economics: unexpected payload shape")
	ErrNoValue         = errors.New("economics: no usable value")
)

// Observation is one dated point of a statistical time series.
type Observation struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

// LatestObservation picks the first observation with a value from a
// newest-first series, falling back to the first element when every value
// is null. It returns the chosen index and false for an empty series.
func LatestObservation(series []Observation) (Observation, int, bool) {
	if len(series) == 0 {
		return Observation{}, -1, false
	}
	for i, obs := range series {
		if obs.Value != nil {
			return obs, i, true
		}
	}
	return series[0], 0, true
}

// ParseWorldBank reads the World Bank v2 JSON shape: a two element array of
// page metadata and newest-first observations. The previous value is the
// next non-null observation after the latest one.
func ParseWorldBank(raw []byte, d Descriptor, now time.Time) (models.IndicatorRecord, error) {
	var envelope []json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return models.IndicatorRecord{}, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}
	if len(envelope) < 2 {
		return models.IndicatorRecord{}, fmt.Errorf("%w: missing observations", ErrUnexpectedShape)
	}
	var series []Observation
	if err := json.Unmarshal(envelope[1], &series); err != nil {
		return models.IndicatorRecord{}, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}

	latest, idx, ok := LatestObservation(series)
	if !ok || latest.Value == nil {
		return models.IndicatorRecord{}, fmt.Errorf("%w: %s", ErrNoValue, d.Indicator)
	}

	var previous *float64
	for _, obs := range series[idx+1:] {
		if obs.Value != nil {
			previous = obs.Value
			break
		}
	}

	return models.NewIndicatorRecord(d.Indicator, *latest.Value, previous, latest.Date, "World Bank", d.Endpoint), nil
}

const exchangePreviousField = "previous_ghs"

type exchangePayload struct {
	Rates struct {
		GHS *float64 `json:"GHS"`
	} `json:"rates"`
	Date     string   `json:"date"`
	Previous *float64 `json:"previous_ghs"`
}

// ParseExchangeRate reads the flat {rates: {GHS}, date} shape. The source
// has no history; a previous_ghs field added by CarryExchangePrevious gives
// the record its change.
func ParseExchangeRate(raw []byte, d Descriptor, now time.Time) (models.IndicatorRecord, error) {
	var payload exchangePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return models.IndicatorRecord{}, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}
	if payload.Rates.GHS == nil {
		return models.IndicatorRecord{}, fmt.Errorf("%w: rates.GHS missing", ErrNoValue)
	}
	date := payload.Date
	if date == "" {
		date = now.UTC().Format(time.RFC3339)
	}
	return models.NewIndicatorRecord(d.Indicator, *payload.Rates.GHS, payload.Previous, date, "exchangerate.host", d.Endpoint), nil
}

// CarryExchangePrevious adds previous to an exchange payload, keeping every
// other field as received.
func CarryExchangePrevious(raw []byte, previous float64) ([]byte, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: null payload", ErrUnexpectedShape)
	}
	encoded, err := json.Marshal(previous)
	if err != nil {
		return nil, err
	}
	fields[exchangePreviousField] = encoded
	return json.Marshal(fields)
}
