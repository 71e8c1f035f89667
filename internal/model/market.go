package model

import "time"

// PricePoint represents a single daily candlestick bar. Immutable once fetched.
type PricePoint struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// TimeSeries is a sequence of daily bars, ascending by time, one per trading day.
type TimeSeries []PricePoint

// Closes returns the close prices of the series in order.
func (s TimeSeries) Closes() []float64 {
	closes := make([]float64, len(s))
	for i, p := range s {
		closes[i] = p.Close
	}
	return closes
}

// NormalizedPoint is one rebased value: 100 * close_t / close_0.
type NormalizedPoint struct {
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
}

// NormalizedSeries is a price series rebased so its first value is 100.
type NormalizedSeries []NormalizedPoint

// TickerDetails holds reference data for the dashboard header.
type TickerDetails struct {
	Symbol  string `json:"symbol"`
	Name    string `json:"name"`
	LogoURL string `json:"logo_url,omitempty"`
}
