package cache

import (
	"context"
	"testing"
	"time"

	"github.com/DanielPeled7/StockMarketProject/internal/marketdata"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	ctx := context.Background()
	series := marketdata.GenerateSeries(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), 100, 5)
	key := Key("AAPL", series[0].Time, series[4].Time)

	if _, ok := c.Get(ctx, key); ok {
		t.Fatal("expected miss on empty cache")
	}
	c.Set(ctx, key, series)
	got, ok := c.Get(ctx, key)
	if !ok {
		t.Fatal("expected hit after set")
	}
	if len(got) != 5 || got[0].Close != series[0].Close {
		t.Errorf("cached series mismatch: %v", got)
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(10 * time.Millisecond)
	ctx := context.Background()
	series := marketdata.GenerateSeries(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), 100, 2)

	c.Set(ctx, "k", series)
	time.Sleep(25 * time.Millisecond)
	if _, ok := c.Get(ctx, "k"); ok {
		t.Error("expected miss after TTL")
	}
}

func TestKey_DistinguishesRanges(t *testing.T) {
	from := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	a := Key("AAPL", from, from.AddDate(0, 1, 0))
	b := Key("AAPL", from, from.AddDate(0, 2, 0))
	if a == b {
		t.Errorf("keys collide: %s", a)
	}
}
