package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/DanielPeled7/StockMarketProject/internal/model"
)

// DefaultPolygonBaseURL is the public Polygon.io endpoint.
const DefaultPolygonBaseURL = "https://api.polygon.io"

// PolygonFetcher implements Fetcher using the Polygon.io aggregates API.
type PolygonFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewPolygonFetcher creates a new fetcher with optional proxy support.
func NewPolygonFetcher(baseURL, apiKey, proxyURL string) *PolygonFetcher {
	if baseURL == "" {
		baseURL = DefaultPolygonBaseURL
	}
	return &PolygonFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client:  newHTTPClient(proxyURL),
	}
}

func (f *PolygonFetcher) Name() string { return "polygon" }

// polygonAggs is the response shape of /v2/aggs. Bar fields are the short keys
// documented by Polygon: t (ms epoch), o/h/l/c, v.
type polygonAggs struct {
	Status       string `json:"status"`
	ResultsCount int    `json:"resultsCount"`
	Results      []struct {
		Timestamp int64   `json:"t"`
		Open      float64 `json:"o"`
		High      float64 `json:"h"`
		Low       float64 `json:"l"`
		Close     float64 `json:"c"`
		Volume    float64 `json:"v"`
	} `json:"results"`
	ErrorMsg string `json:"error"`
}

type polygonTickerDetails struct {
	Results struct {
		Ticker string `json:"ticker"`
		Name   string `json:"name"`
	} `json:"results"`
	Status string `json:"status"`
}

func (f *PolygonFetcher) FetchDailyBars(ctx context.Context, symbol string, from, to time.Time) (model.TimeSeries, error) {
	endpoint := fmt.Sprintf("%s/v2/aggs/ticker/%s/range/1/day/%s/%s?adjusted=true&sort=asc&apiKey=%s",
		f.BaseURL, url.PathEscape(symbol),
		from.Format("2006-01-02"), to.Format("2006-01-02"), url.QueryEscape(f.APIKey))

	body, err := f.get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("polygon aggs: %w", err)
	}

	var aggs polygonAggs
	if err := json.Unmarshal(body, &aggs); err != nil {
		return nil, fmt.Errorf("polygon decode: %w", err)
	}
	if aggs.ErrorMsg != "" {
		return nil, fmt.Errorf("polygon api error: %s", aggs.ErrorMsg)
	}
	if len(aggs.Results) == 0 {
		return nil, fmt.Errorf("polygon: no data for %s", symbol)
	}

	series := make(model.TimeSeries, 0, len(aggs.Results))
	for _, r := range aggs.Results {
		if r.Open == 0 && r.High == 0 && r.Low == 0 && r.Close == 0 {
			continue // skip null bars (holidays etc.)
		}
		series = append(series, model.PricePoint{
			Time:   time.UnixMilli(r.Timestamp).UTC(),
			Open:   r.Open,
			High:   r.High,
			Low:    r.Low,
			Close:  r.Close,
			Volume: int64(r.Volume),
		})
	}

	sort.Slice(series, func(i, j int) bool { return series[i].Time.Before(series[j].Time) })
	if err := validateSeries(series); err != nil {
		return nil, fmt.Errorf("polygon: %w", err)
	}
	return series, nil
}

func (f *PolygonFetcher) FetchTickerDetails(ctx context.Context, symbol string) (model.TickerDetails, error) {
	endpoint := fmt.Sprintf("%s/v3/reference/tickers/%s?apiKey=%s",
		f.BaseURL, url.PathEscape(symbol), url.QueryEscape(f.APIKey))

	body, err := f.get(ctx, endpoint)
	if err != nil {
		return model.TickerDetails{}, fmt.Errorf("polygon ticker details: %w", err)
	}

	var details polygonTickerDetails
	if err := json.Unmarshal(body, &details); err != nil {
		return model.TickerDetails{}, fmt.Errorf("polygon decode details: %w", err)
	}

	name := details.Results.Name
	if name == "" {
		name = symbol
	}
	return model.TickerDetails{
		Symbol:  symbol,
		Name:    name,
		LogoURL: probeLogoURL(ctx, f.Client, symbol),
	}, nil
}

func (f *PolygonFetcher) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
