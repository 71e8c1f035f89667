package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/DanielPeled7/StockMarketProject/internal/analytics"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	symbol := strings.ToUpper(strings.TrimSpace(q.Get("symbol")))
	if symbol == "" {
		writeError(w, http.StatusBadRequest, "symbol is required")
		return
	}

	benchmark, err := s.resolveBenchmark(q.Get("benchmark"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	from, to := s.opts.DefaultFrom, s.opts.DefaultTo
	if v := q.Get("from"); v != "" {
		if from, err = time.ParseInLocation("2006-01-02", v, time.UTC); err != nil {
			writeError(w, http.StatusBadRequest, "from: expected YYYY-MM-DD")
			return
		}
	}
	if v := q.Get("to"); v != "" {
		if to, err = time.ParseInLocation("2006-01-02", v, time.UTC); err != nil {
			writeError(w, http.StatusBadRequest, "to: expected YYYY-MM-DD")
			return
		}
	}
	if to.Before(from) {
		writeError(w, http.StatusBadRequest, "date range ends before it starts")
		return
	}

	view, err := s.svc.Render(r.Context(), symbol, benchmark, from, to)
	if err != nil {
		status, msg := classifyError(err)
		log.Printf("[WARN] render %s vs %q: %v", symbol, benchmark, err)
		writeError(w, status, msg)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleSymbols(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"popular_stocks": s.opts.PopularStocks,
		"benchmarks":     s.opts.Benchmarks,
		"default_from":   s.opts.DefaultFrom.Format("2006-01-02"),
		"default_to":     s.opts.DefaultTo.Format("2006-01-02"),
	})
}

// resolveBenchmark accepts a configured label ("S&P 500 (SPY)"), a configured
// symbol ("SPY"), "none", or empty.
func (s *Server) resolveBenchmark(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "none") {
		return "", nil
	}
	if symbol, ok := s.opts.Benchmarks[raw]; ok {
		return symbol, nil
	}
	for _, symbol := range s.opts.Benchmarks {
		if strings.EqualFold(symbol, raw) {
			return symbol, nil
		}
	}
	return "", fmt.Errorf("unknown benchmark %q", raw)
}

// classifyError maps analytics sentinel errors to 422 (unusable input data,
// shown to the user) and everything else to 502 (upstream trouble).
func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, analytics.ErrEmptySeries):
		return http.StatusUnprocessableEntity, "no price data for the selected range"
	case errors.Is(err, analytics.ErrInvalidBase):
		return http.StatusUnprocessableEntity, "series starts with an unusable price"
	case errors.Is(err, analytics.ErrNoOverlap):
		return http.StatusUnprocessableEntity, "ticker and benchmark share no trading days"
	default:
		return http.StatusBadGateway, "data fetch failed; check the ticker or try again later"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[WARN] encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
