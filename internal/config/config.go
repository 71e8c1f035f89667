package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		ListenAddr string `yaml:"listen_addr"`
	} `yaml:"server"`
	DataSource struct {
		Provider string `yaml:"provider"` // polygon | yahoo | mock
		BaseURL  string `yaml:"base_url"`
		APIKey   string `yaml:"api_key"`
	} `yaml:"data_source"`
	Dashboard struct {
		DefaultFrom      string            `yaml:"default_from"` // YYYY-MM-DD
		DefaultTo        string            `yaml:"default_to"`   // YYYY-MM-DD
		PopularStocks    []string          `yaml:"popular_stocks"`
		Benchmarks       map[string]string `yaml:"benchmarks"` // label -> symbol
		DefaultBenchmark string            `yaml:"default_benchmark"`
	} `yaml:"dashboard"`
	Cache struct {
		Backend       string `yaml:"backend"` // memory | redis
		TTL           string `yaml:"ttl"`
		RedisAddr     string `yaml:"redis_addr"`
		RedisPassword string `yaml:"redis_password"`
		RedisDB       int    `yaml:"redis_db"`
	} `yaml:"cache"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.ListenAddr = v
	}
	if v := os.Getenv("DATA_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("POLYGON_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("POLYGON_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Cache.RedisAddr = v
		cfg.Cache.Backend = "redis"
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Cache.RedisPassword = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("REFRESH_CRON"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = ":8080"
	}
	if cfg.DataSource.Provider == "" {
		if cfg.DataSource.APIKey != "" {
			cfg.DataSource.Provider = "polygon"
		} else {
			cfg.DataSource.Provider = "yahoo"
		}
	}
	if cfg.Dashboard.DefaultFrom == "" {
		cfg.Dashboard.DefaultFrom = "2024-04-01"
	}
	if cfg.Dashboard.DefaultTo == "" {
		cfg.Dashboard.DefaultTo = time.Now().UTC().Format("2006-01-02")
	}
	if len(cfg.Dashboard.PopularStocks) == 0 {
		cfg.Dashboard.PopularStocks = []string{"AAPL", "MSFT", "TSLA", "AMZN", "GOOGL", "NVDA", "META"}
	}
	if len(cfg.Dashboard.Benchmarks) == 0 {
		cfg.Dashboard.Benchmarks = map[string]string{
			"S&P 500 (SPY)":   "SPY",
			"Nasdaq (QQQ)":    "QQQ",
			"Dow Jones (DIA)": "DIA",
		}
	}
	if cfg.Dashboard.DefaultBenchmark == "" {
		cfg.Dashboard.DefaultBenchmark = "SPY"
	}
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = "memory"
	}
	if cfg.Cache.TTL == "" {
		cfg.Cache.TTL = "15m"
	}
	if cfg.Schedule.RefreshCron == "" {
		cfg.Schedule.RefreshCron = "0 30 13 * * 1-5" // after US market open, weekdays
	}

	return cfg, nil
}

// Validate checks that all required fields are set and parseable.
func (c *Config) Validate() error {
	if c.DataSource.Provider == "polygon" && c.DataSource.APIKey == "" {
		return fmt.Errorf("data_source.api_key is required for the polygon provider")
	}
	switch c.DataSource.Provider {
	case "polygon", "yahoo", "mock":
	default:
		return fmt.Errorf("unknown data_source.provider %q", c.DataSource.Provider)
	}
	if _, err := time.ParseDuration(c.Cache.TTL); err != nil {
		return fmt.Errorf("cache.ttl: %w", err)
	}
	if c.Cache.Backend == "redis" && c.Cache.RedisAddr == "" {
		return fmt.Errorf("cache.redis_addr is required for the redis backend")
	}
	if _, _, err := c.DateRange(); err != nil {
		return err
	}
	for label, symbol := range c.Dashboard.Benchmarks {
		if symbol == "" {
			return fmt.Errorf("benchmark %q has no symbol", label)
		}
	}
	return nil
}

// CacheTTL returns the parsed cache TTL.
func (c *Config) CacheTTL() time.Duration {
	d, err := time.ParseDuration(c.Cache.TTL)
	if err != nil {
		return 15 * time.Minute
	}
	return d
}

// DateRange returns the parsed default date range.
func (c *Config) DateRange() (from, to time.Time, err error) {
	from, err = time.ParseInLocation("2006-01-02", c.Dashboard.DefaultFrom, time.UTC)
	if err != nil {
		return from, to, fmt.Errorf("dashboard.default_from: %w", err)
	}
	to, err = time.ParseInLocation("2006-01-02", c.Dashboard.DefaultTo, time.UTC)
	if err != nil {
		return from, to, fmt.Errorf("dashboard.default_to: %w", err)
	}
	if to.Before(from) {
		return from, to, fmt.Errorf("dashboard date range ends before it starts")
	}
	return from, to, nil
}
