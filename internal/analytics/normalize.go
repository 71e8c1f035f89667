package analytics

import (
	"errors"
	"fmt"
	"time"

	"github.com/DanielPeled7/StockMarketProject/internal/model"
)

var (
	// ErrEmptySeries is returned when an operation receives a series with no bars.
	ErrEmptySeries = errors.New("empty price series")
	// ErrInvalidBase is returned when the first close of a series is zero or negative.
	ErrInvalidBase = errors.New("invalid base close price")
	// ErrNoOverlap is returned when two series share no trading days.
	ErrNoOverlap = errors.New("no overlapping trading days")
)

// Normalize rebases a series so its first value is exactly 100. The input must be
// non-empty and ascending by time; the output has the same length as the input.
func Normalize(series model.TimeSeries) (model.NormalizedSeries, error) {
	if len(series) == 0 {
		return nil, ErrEmptySeries
	}
	base := series[0].Close
	if base <= 0 {
		return nil, fmt.Errorf("%w: base close %v", ErrInvalidBase, base)
	}
	out := make(model.NormalizedSeries, len(series))
	for i, p := range series {
		out[i] = model.NormalizedPoint{Time: p.Time, Value: 100 * p.Close / base}
	}
	return out, nil
}

// Align restricts both series to their common trading days, in ascending order.
// Day identity is the UTC calendar date, so per-source holiday gaps drop out of
// both sides.
func Align(a, b model.TimeSeries) (model.TimeSeries, model.TimeSeries, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, nil, ErrEmptySeries
	}
	byDay := make(map[string]model.PricePoint, len(b))
	for _, p := range b {
		byDay[tradingDay(p.Time)] = p
	}

	var outA, outB model.TimeSeries
	for _, p := range a {
		if q, ok := byDay[tradingDay(p.Time)]; ok {
			outA = append(outA, p)
			outB = append(outB, q)
		}
	}
	if len(outA) == 0 {
		return nil, nil, ErrNoOverlap
	}
	return outA, outB, nil
}

func tradingDay(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
