package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/DanielPeled7/StockMarketProject/internal/model"
)

// SeriesCache stores fetched time series for the configured TTL so repeated
// renders of the same selection skip the upstream API.
type SeriesCache interface {
	Get(ctx context.Context, key string) (model.TimeSeries, bool)
	Set(ctx context.Context, key string, series model.TimeSeries)
	Close() error
}

// Key builds the cache key for one (symbol, date range) selection.
func Key(symbol string, from, to time.Time) string {
	return fmt.Sprintf("series:%s:%s:%s", symbol,
		from.Format("2006-01-02"), to.Format("2006-01-02"))
}
