package refresher

import (
	"context"
	"testing"
	"time"

	"github.com/DanielPeled7/StockMarketProject/internal/cache"
	"github.com/DanielPeled7/StockMarketProject/internal/dashboard"
	"github.com/DanielPeled7/StockMarketProject/internal/marketdata"
	"github.com/DanielPeled7/StockMarketProject/internal/recorder"
)

func TestRunNow_WarmsAllSymbols(t *testing.T) {
	fetcher := &marketdata.MockFetcher{BasePrice: 100}
	c := cache.NewMemoryCache(time.Minute)
	svc := dashboard.NewService(fetcher, c, recorder.NewNoopRecorder())

	from := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 9)
	r := NewRefresher(context.Background(), svc, []string{"AAPL", "NVDA"}, "SPY", from, to)

	r.RunNow()

	// Two tickers plus the benchmark, fetched once and then cached.
	if fetcher.BarCalls != 3 {
		t.Errorf("expected 3 upstream fetches, got %d", fetcher.BarCalls)
	}
	if _, ok := c.Get(context.Background(), cache.Key("NVDA", from, to)); !ok {
		t.Error("NVDA series not cached")
	}
	if _, ok := c.Get(context.Background(), cache.Key("SPY", from, to)); !ok {
		t.Error("benchmark series not cached")
	}
}

func TestRegister_BadCronSpec(t *testing.T) {
	r := NewRefresher(context.Background(), nil, nil, "", time.Time{}, time.Time{})
	if err := r.Register("not a cron spec"); err == nil {
		t.Error("expected error for invalid cron spec")
	}
}
