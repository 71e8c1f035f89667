package recorder

import "time"

// RenderEvent captures one rendered dashboard for later analysis
// (what was looked at, how it performed, how long the render took).
type RenderEvent struct {
	Symbol            string
	Benchmark         string
	Source            string
	LatestPrice       float64
	TotalChangePct    float64
	WeekChangePct     float64
	OutperformancePct float64
	Points            int
	Elapsed           time.Duration
}

// Recorder persists render history.
type Recorder interface {
	RecordRender(evt *RenderEvent) error
	Close() error
}
