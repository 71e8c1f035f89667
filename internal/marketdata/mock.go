package marketdata

import (
	"context"
	"fmt"
	"time"

	"github.com/DanielPeled7/StockMarketProject/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Series    map[string]model.TimeSeries // per-symbol override
	BasePrice float64
	Err       error
	BarCalls  int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ context.Context, symbol string, from, to time.Time) (model.TimeSeries, error) {
	m.BarCalls++
	if m.Err != nil {
		return nil, m.Err
	}
	if s, ok := m.Series[symbol]; ok {
		return s, nil
	}
	base := m.BasePrice
	if base == 0 {
		base = 100
	}
	days := int(to.Sub(from).Hours()/24) + 1
	if days < 1 {
		return nil, fmt.Errorf("mock: empty range")
	}
	return GenerateSeries(from, base, days), nil
}

func (m *MockFetcher) FetchTickerDetails(_ context.Context, symbol string) (model.TickerDetails, error) {
	if m.Err != nil {
		return model.TickerDetails{}, m.Err
	}
	return model.TickerDetails{Symbol: symbol, Name: symbol + " Inc."}, nil
}

// GenerateSeries produces a gently drifting daily series starting at base.
func GenerateSeries(start time.Time, base float64, days int) model.TimeSeries {
	series := make(model.TimeSeries, days)
	for i := 0; i < days; i++ {
		p := base * (1 + float64(i-days/2)*0.001)
		series[i] = model.PricePoint{
			Time:   start.AddDate(0, 0, i).UTC(),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return series
}
