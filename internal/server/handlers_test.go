package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DanielPeled7/StockMarketProject/internal/cache"
	"github.com/DanielPeled7/StockMarketProject/internal/dashboard"
	"github.com/DanielPeled7/StockMarketProject/internal/marketdata"
	"github.com/DanielPeled7/StockMarketProject/internal/model"
	"github.com/DanielPeled7/StockMarketProject/internal/recorder"
)

var testDay = time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

func testSeries(closes ...float64) model.TimeSeries {
	s := make(model.TimeSeries, len(closes))
	for i, c := range closes {
		s[i] = model.PricePoint{Time: testDay.AddDate(0, 0, i), Open: c, High: c, Low: c, Close: c, Volume: 10}
	}
	return s
}

func newTestServer(fetcher marketdata.Fetcher) *Server {
	svc := dashboard.NewService(fetcher, cache.NewMemoryCache(time.Minute), recorder.NewNoopRecorder())
	return NewServer(":0", svc, Options{
		PopularStocks: []string{"AAPL", "NVDA"},
		Benchmarks:    map[string]string{"S&P 500 (SPY)": "SPY"},
		DefaultFrom:   testDay,
		DefaultTo:     testDay.AddDate(0, 0, 3),
	})
}

func getDashboard(t *testing.T, s *Server, query string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard"+query, nil)
	rec := httptest.NewRecorder()
	s.handleDashboard(rec, req)
	return rec
}

func TestHandleDashboard_OK(t *testing.T) {
	s := newTestServer(&marketdata.MockFetcher{
		Series: map[string]model.TimeSeries{
			"AAPL": testSeries(10, 12, 16, 20),
			"SPY":  testSeries(10, 11, 13, 15),
		},
	})
	rec := getDashboard(t, s, "?symbol=aapl&benchmark=SPY")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
	var view dashboard.View
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.Details.Symbol != "AAPL" {
		t.Errorf("symbol not uppercased: %+v", view.Details)
	}
	if view.Benchmark != "SPY" {
		t.Errorf("benchmark: got %q", view.Benchmark)
	}
	if len(view.TickerGrowth) == 0 || view.TickerGrowth[0].Value != 100 {
		t.Errorf("growth series missing or unnormalized: %+v", view.TickerGrowth)
	}
}

func TestHandleDashboard_BenchmarkLabel(t *testing.T) {
	s := newTestServer(&marketdata.MockFetcher{
		Series: map[string]model.TimeSeries{
			"AAPL": testSeries(10, 12),
			"SPY":  testSeries(10, 11),
		},
	})
	rec := getDashboard(t, s, "?symbol=AAPL&benchmark="+
		"S%26P+500+%28SPY%29")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestHandleDashboard_MissingSymbol(t *testing.T) {
	s := newTestServer(&marketdata.MockFetcher{})
	if rec := getDashboard(t, s, ""); rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d", rec.Code)
	}
}

func TestHandleDashboard_UnknownBenchmark(t *testing.T) {
	s := newTestServer(&marketdata.MockFetcher{})
	if rec := getDashboard(t, s, "?symbol=AAPL&benchmark=FTSE"); rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d", rec.Code)
	}
}

func TestHandleDashboard_BadDate(t *testing.T) {
	s := newTestServer(&marketdata.MockFetcher{})
	if rec := getDashboard(t, s, "?symbol=AAPL&from=04-01-2024"); rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d", rec.Code)
	}
}

func TestHandleDashboard_NoOverlap(t *testing.T) {
	s := newTestServer(&marketdata.MockFetcher{
		Series: map[string]model.TimeSeries{
			"AAPL": testSeries(10, 12),
			"SPY": {
				{Time: testDay.AddDate(1, 0, 0), Close: 10},
			},
		},
	})
	rec := getDashboard(t, s, "?symbol=AAPL&benchmark=SPY")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestHandleDashboard_UpstreamFailure(t *testing.T) {
	s := newTestServer(&marketdata.MockFetcher{Err: http.ErrHandlerTimeout})
	if rec := getDashboard(t, s, "?symbol=AAPL"); rec.Code != http.StatusBadGateway {
		t.Errorf("status: got %d", rec.Code)
	}
}

func TestHandleSymbols(t *testing.T) {
	s := newTestServer(&marketdata.MockFetcher{})
	req := httptest.NewRequest(http.MethodGet, "/api/symbols", nil)
	rec := httptest.NewRecorder()
	s.handleSymbols(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	var body struct {
		PopularStocks []string          `json:"popular_stocks"`
		Benchmarks    map[string]string `json:"benchmarks"`
		DefaultFrom   string            `json:"default_from"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.PopularStocks) != 2 || body.Benchmarks["S&P 500 (SPY)"] != "SPY" {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
	if body.DefaultFrom != "2024-04-01" {
		t.Errorf("default from: got %q", body.DefaultFrom)
	}
}
