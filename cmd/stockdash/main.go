package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/DanielPeled7/StockMarketProject/internal/cache"
	"github.com/DanielPeled7/StockMarketProject/internal/config"
	"github.com/DanielPeled7/StockMarketProject/internal/dashboard"
	"github.com/DanielPeled7/StockMarketProject/internal/marketdata"
	"github.com/DanielPeled7/StockMarketProject/internal/recorder"
	"github.com/DanielPeled7/StockMarketProject/internal/refresher"
	"github.com/DanielPeled7/StockMarketProject/internal/server"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] stockdash starting...")

	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] load .env: %v", err)
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Context for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init fetcher
	var fetcher marketdata.Fetcher
	switch cfg.DataSource.Provider {
	case "polygon":
		fetcher = marketdata.NewPolygonFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	case "mock":
		fetcher = &marketdata.MockFetcher{BasePrice: 100}
	default:
		fetcher = marketdata.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init series cache
	var seriesCache cache.SeriesCache
	if cfg.Cache.Backend == "redis" {
		rc, err := cache.NewRedisCache(ctx, cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB, cfg.CacheTTL())
		if err != nil {
			log.Printf("[WARN] init redis cache failed, using memory: %v", err)
			seriesCache = cache.NewMemoryCache(cfg.CacheTTL())
		} else {
			seriesCache = rc
		}
	} else {
		seriesCache = cache.NewMemoryCache(cfg.CacheTTL())
	}
	defer seriesCache.Close()

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	svc := dashboard.NewService(fetcher, seriesCache, rec)

	from, to, err := cfg.DateRange()
	if err != nil {
		log.Fatalf("[FATAL] date range: %v", err)
	}

	// Init refresher
	ref := refresher.NewRefresher(ctx, svc, cfg.Dashboard.PopularStocks, cfg.Dashboard.DefaultBenchmark, from, to)
	if err := ref.Register(cfg.Schedule.RefreshCron); err != nil {
		log.Fatalf("[FATAL] register refresh task: %v", err)
	}
	ref.Start()
	defer ref.Stop()

	// Optional: warm the cache immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, warming cache now")
		go ref.RunNow()
	}

	// Serve until shutdown
	srv := server.NewServer(cfg.Server.ListenAddr, svc, server.Options{
		PopularStocks: cfg.Dashboard.PopularStocks,
		Benchmarks:    cfg.Dashboard.Benchmarks,
		DefaultFrom:   from,
		DefaultTo:     to,
	})
	if err := srv.Start(ctx); err != nil {
		log.Fatalf("[FATAL] http server: %v", err)
	}

	log.Println("[INFO] stockdash stopped")
}
