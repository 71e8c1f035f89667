package analytics

import (
	"fmt"

	"github.com/DanielPeled7/StockMarketProject/internal/model"
)

// weekLookback is how many closes back the "week change" metric reaches
// (the 5th-from-last session, i.e. four trading days earlier).
const weekLookback = 5

// PercentageReturn computes the percentage return between two price points.
func PercentageReturn(past, current float64) (float64, error) {
	if past == 0 {
		return 0, fmt.Errorf("%w: past value is zero", ErrInvalidBase)
	}
	return (current - past) / past * 100, nil
}

// ComputeMetrics derives the dashboard metrics from a ticker series and an
// optional benchmark. When a benchmark is given, both series are expected to be
// aligned already so the outperformance figure compares the same date range.
func ComputeMetrics(ticker, benchmark model.TimeSeries) (model.Metrics, error) {
	if len(ticker) == 0 {
		return model.Metrics{}, ErrEmptySeries
	}
	closes := ticker.Closes()
	latest := closes[len(closes)-1]

	total, err := PercentageReturn(closes[0], latest)
	if err != nil {
		return model.Metrics{}, fmt.Errorf("total change: %w", err)
	}

	week := total
	if len(closes) >= weekLookback {
		week, err = PercentageReturn(closes[len(closes)-weekLookback], latest)
		if err != nil {
			return model.Metrics{}, fmt.Errorf("week change: %w", err)
		}
	}

	m := model.Metrics{
		LatestPrice:    latest,
		WeekChangePct:  week,
		TotalChangePct: total,
	}

	if len(benchmark) > 0 {
		bc := benchmark.Closes()
		benchTotal, err := PercentageReturn(bc[0], bc[len(bc)-1])
		if err != nil {
			return model.Metrics{}, fmt.Errorf("benchmark change: %w", err)
		}
		m.OutperformancePct = total - benchTotal
		m.HasBenchmark = true
	}
	return m, nil
}
