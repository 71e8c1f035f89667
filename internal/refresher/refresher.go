package refresher

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/DanielPeled7/StockMarketProject/internal/dashboard"
)

// Refresher re-renders the popular tickers on a cron schedule so their series
// are already cached when a user opens the dashboard.
type Refresher struct {
	Cron      *cron.Cron
	Service   *dashboard.Service
	Symbols   []string
	Benchmark string
	From, To  time.Time
	Ctx       context.Context
}

// NewRefresher creates a new Refresher.
func NewRefresher(ctx context.Context, svc *dashboard.Service, symbols []string, benchmark string, from, to time.Time) *Refresher {
	return &Refresher{
		Cron:      cron.New(cron.WithSeconds()),
		Service:   svc,
		Symbols:   symbols,
		Benchmark: benchmark,
		From:      from,
		To:        to,
		Ctx:       ctx,
	}
}

// Register registers the warm-up job.
func (r *Refresher) Register(cronSpec string) error {
	if _, err := r.Cron.AddFunc(cronSpec, r.warmUp); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (r *Refresher) Start() {
	r.Cron.Start()
	log.Println("[INFO] refresher started")
}

// Stop stops the cron scheduler gracefully.
func (r *Refresher) Stop() {
	r.Cron.Stop()
	log.Println("[INFO] refresher stopped")
}

// RunNow executes the warm-up immediately (for RUN_ON_START).
func (r *Refresher) RunNow() {
	r.warmUp()
}

func (r *Refresher) warmUp() {
	log.Printf("[INFO] warming cache for %d symbols", len(r.Symbols))
	for _, symbol := range r.Symbols {
		if r.Ctx.Err() != nil {
			return
		}
		if _, err := r.Service.Render(r.Ctx, symbol, r.Benchmark, r.From, r.To); err != nil {
			log.Printf("[WARN] warm %s: %v", symbol, err)
		}
	}
	log.Println("[INFO] cache warm-up finished")
}
