package analytics

import (
	"errors"
	"testing"
)

func TestPercentageReturn(t *testing.T) {
	tests := []struct {
		past, current float64
		want          float64
	}{
		{100, 150, 50},
		{100, 100, 0},
		{200, 100, -50},
		{50, 60.5, 21},
	}
	for _, tt := range tests {
		got, err := PercentageReturn(tt.past, tt.current)
		if err != nil {
			t.Errorf("PercentageReturn(%v, %v): unexpected error: %v", tt.past, tt.current, err)
			continue
		}
		if !almostEqual(got, tt.want) {
			t.Errorf("PercentageReturn(%v, %v) = %v, want %v", tt.past, tt.current, got, tt.want)
		}
	}
}

func TestPercentageReturn_ZeroPast(t *testing.T) {
	if _, err := PercentageReturn(0, 100); !errors.Is(err, ErrInvalidBase) {
		t.Errorf("expected ErrInvalidBase, got %v", err)
	}
}

func TestComputeMetrics_NoBenchmark(t *testing.T) {
	s := seriesFrom(day1, 100, 102, 104, 106, 108, 110)
	m, err := ComputeMetrics(s, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.LatestPrice != 110 {
		t.Errorf("latest price: got %v", m.LatestPrice)
	}
	if !almostEqual(m.TotalChangePct, 10) {
		t.Errorf("total change: got %v, want 10", m.TotalChangePct)
	}
	// 5th-from-last close is 102.
	want := (110.0 - 102.0) / 102.0 * 100
	if !almostEqual(m.WeekChangePct, want) {
		t.Errorf("week change: got %v, want %v", m.WeekChangePct, want)
	}
	if m.HasBenchmark {
		t.Error("expected HasBenchmark=false")
	}
}

func TestComputeMetrics_ShortSeriesFallsBackToTotal(t *testing.T) {
	s := seriesFrom(day1, 100, 105)
	m, err := ComputeMetrics(s, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(m.WeekChangePct, m.TotalChangePct) {
		t.Errorf("short series week change %v should equal total %v", m.WeekChangePct, m.TotalChangePct)
	}
}

func TestComputeMetrics_Outperformance(t *testing.T) {
	ticker := seriesFrom(day1, 10, 20) // +100%
	bench := seriesFrom(day1, 10, 15)  // +50%
	m, err := ComputeMetrics(ticker, bench)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.HasBenchmark {
		t.Fatal("expected HasBenchmark=true")
	}
	if !almostEqual(m.OutperformancePct, 50) {
		t.Errorf("outperformance: got %v, want 50", m.OutperformancePct)
	}
}

func TestComputeMetrics_EmptyTicker(t *testing.T) {
	if _, err := ComputeMetrics(nil, nil); !errors.Is(err, ErrEmptySeries) {
		t.Errorf("expected ErrEmptySeries, got %v", err)
	}
}
