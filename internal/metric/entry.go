package metric

import (
	"bytes"

	"codeberg.org/mutker/barstatus/internal/errors"
	"codeberg.org/mutker/barstatus/internal/telemetry"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// entry is a Nightscout sensor glucose value record.
type entry struct {
	Type       string   `json:"type"`
	DateString string   `json:"dateString"`
	Date       *int64   `json:"date"`
	SGV        *float64 `json:"sgv"`
	Direction  string   `json:"direction"`
	Noise      float64  `json:"noise"`
	Filtered   float64  `json:"filtered"`
	Unfiltered float64  `json:"unfiltered"`
	RSSI       float64  `json:"rssi"`
}

// parseEntry decodes a single entry object, or the first element of an
// array of entries.
func parseEntry(body []byte) (telemetry.MetricReading, error) {
	errFactory := errors.New()

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return telemetry.MetricReading{}, errFactory.New(ErrEmptyResponse)
	}

	var e entry
	if body[0] == '[' {
		var entries []entry
		if err := json.Unmarshal(body, &entries); err != nil {
			return telemetry.MetricReading{}, errFactory.Wrap(ErrMalformedEntry, err)
		}
		if len(entries) == 0 {
			return telemetry.MetricReading{}, errFactory.New(ErrEmptyResponse)
		}
		e = entries[0]
	} else if err := json.Unmarshal(body, &e); err != nil {
		return telemetry.MetricReading{}, errFactory.Wrap(ErrMalformedEntry, err)
	}

	if e.Date == nil || e.SGV == nil {
		return telemetry.MetricReading{}, errFactory.WithMessage(ErrMalformedEntry, "entry is missing date or sgv")
	}

	return telemetry.MetricReading{
		Type:       e.Type,
		DateString: e.DateString,
		ObservedAt: *e.Date,
		Value:      *e.SGV,
		Trend:      telemetry.Trend(e.Direction),
		Noise:      e.Noise,
		Filtered:   e.Filtered,
		Unfiltered: e.Unfiltered,
		RSSI:       e.RSSI,
	}, nil
}
