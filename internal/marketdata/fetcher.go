package marketdata

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/DanielPeled7/StockMarketProject/internal/model"
)

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	FetchDailyBars(ctx context.Context, symbol string, from, to time.Time) (model.TimeSeries, error)
	FetchTickerDetails(ctx context.Context, symbol string) (model.TickerDetails, error)
	Name() string
}

func newHTTPClient(proxyURL string) *http.Client {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &http.Client{
		Timeout:   30 * time.Second,
		Transport: transport,
	}
}

// validateSeries enforces the boundary contract: ascending times, one bar per
// trading day.
func validateSeries(series model.TimeSeries) error {
	for i := 1; i < len(series); i++ {
		prev := series[i-1].Time.UTC().Format("2006-01-02")
		cur := series[i].Time.UTC().Format("2006-01-02")
		if cur < prev {
			return fmt.Errorf("bars out of order at %s", cur)
		}
		if cur == prev {
			return fmt.Errorf("duplicate trading day %s", cur)
		}
	}
	return nil
}
