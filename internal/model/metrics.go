package model

// Metrics holds the performance figures shown above the charts.
type Metrics struct {
	LatestPrice       float64 `json:"latest_price"`
	WeekChangePct     float64 `json:"week_change_pct"`
	TotalChangePct    float64 `json:"total_change_pct"`
	OutperformancePct float64 `json:"outperformance_pct"`
	HasBenchmark      bool    `json:"has_benchmark"`
}
