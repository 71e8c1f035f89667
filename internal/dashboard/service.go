package dashboard

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/DanielPeled7/StockMarketProject/internal/analytics"
	"github.com/DanielPeled7/StockMarketProject/internal/cache"
	"github.com/DanielPeled7/StockMarketProject/internal/marketdata"
	"github.com/DanielPeled7/StockMarketProject/internal/model"
	"github.com/DanielPeled7/StockMarketProject/internal/recorder"
)

// View is everything the dashboard page needs for one selection.
type View struct {
	Details         model.TickerDetails    `json:"details"`
	Candles         model.TimeSeries       `json:"candles"`
	TickerGrowth    model.NormalizedSeries `json:"ticker_growth,omitempty"`
	BenchmarkGrowth model.NormalizedSeries `json:"benchmark_growth,omitempty"`
	Benchmark       string                 `json:"benchmark,omitempty"`
	Metrics         model.Metrics          `json:"metrics"`
	Source          string                 `json:"source"`
}

// Service orchestrates fetching, alignment, normalization and metrics.
type Service struct {
	Fetcher  marketdata.Fetcher
	Cache    cache.SeriesCache
	Recorder recorder.Recorder
}

// NewService creates a new Service.
func NewService(fetcher marketdata.Fetcher, c cache.SeriesCache, rec recorder.Recorder) *Service {
	return &Service{Fetcher: fetcher, Cache: c, Recorder: rec}
}

// Render builds the full dashboard view for one selection. All selection state
// (symbol, benchmark, range) comes in as parameters; the service holds no
// per-request state.
func (s *Service) Render(ctx context.Context, symbol, benchmark string, from, to time.Time) (*View, error) {
	if symbol == "" {
		return nil, fmt.Errorf("symbol is required")
	}
	started := time.Now()

	series, err := s.fetchSeries(ctx, symbol, from, to)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", symbol, err)
	}

	view := &View{
		Candles: series,
		Source:  s.Fetcher.Name(),
	}

	metricsSeries, benchSeries := series, model.TimeSeries(nil)
	if benchmark != "" {
		raw, err := s.fetchSeries(ctx, benchmark, from, to)
		if err != nil {
			return nil, fmt.Errorf("fetch benchmark %s: %w", benchmark, err)
		}
		alignedTicker, alignedBench, err := analytics.Align(series, raw)
		if err != nil {
			return nil, fmt.Errorf("align %s vs %s: %w", symbol, benchmark, err)
		}
		view.TickerGrowth, err = analytics.Normalize(alignedTicker)
		if err != nil {
			return nil, fmt.Errorf("normalize %s: %w", symbol, err)
		}
		view.BenchmarkGrowth, err = analytics.Normalize(alignedBench)
		if err != nil {
			return nil, fmt.Errorf("normalize benchmark %s: %w", benchmark, err)
		}
		view.Benchmark = benchmark
		// Metrics come from the aligned pair so the comparison covers the
		// same trading days on both sides.
		metricsSeries, benchSeries = alignedTicker, alignedBench
	}

	view.Metrics, err = analytics.ComputeMetrics(metricsSeries, benchSeries)
	if err != nil {
		return nil, fmt.Errorf("metrics for %s: %w", symbol, err)
	}

	// Reference data failures degrade to a symbol-only header.
	details, err := s.Fetcher.FetchTickerDetails(ctx, symbol)
	if err != nil {
		log.Printf("[WARN] ticker details for %s: %v", symbol, err)
		details = model.TickerDetails{Symbol: symbol, Name: symbol}
	}
	view.Details = details

	if err := s.Recorder.RecordRender(&recorder.RenderEvent{
		Symbol:            symbol,
		Benchmark:         benchmark,
		Source:            view.Source,
		LatestPrice:       view.Metrics.LatestPrice,
		TotalChangePct:    view.Metrics.TotalChangePct,
		WeekChangePct:     view.Metrics.WeekChangePct,
		OutperformancePct: view.Metrics.OutperformancePct,
		Points:            len(series),
		Elapsed:           time.Since(started),
	}); err != nil {
		log.Printf("[WARN] record render: %v", err)
	}

	return view, nil
}

// fetchSeries consults the cache before going upstream.
func (s *Service) fetchSeries(ctx context.Context, symbol string, from, to time.Time) (model.TimeSeries, error) {
	key := cache.Key(symbol, from, to)
	if series, ok := s.Cache.Get(ctx, key); ok {
		return series, nil
	}
	series, err := s.Fetcher.FetchDailyBars(ctx, symbol, from, to)
	if err != nil {
		return nil, err
	}
	if len(series) == 0 {
		return nil, analytics.ErrEmptySeries
	}
	s.Cache.Set(ctx, key, series)
	return series, nil
}
