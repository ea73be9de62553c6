package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	DefaultDatabaseDSN = "host=localhost port=5432 user=postgres dbname=lomatest sslmode=disable"
	DefaultBaseURL     = "localhost:8081"
	DefaultAuthSecret  = "dev-secret-key"
)

type Config struct {
	// Server-side settings
	DatabaseDriver     string `env:"DB_DRIVER"`
	DatabaseDSN        string `env:"DATABASE_URI"`
	MaxOpenConns       int    `env:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns       int    `env:"DB_MAX_IDLE_CONNS"`
	AuthSecret         string `env:"AUTH_SECRET"`
	LogLevel           string `env:"LOG_LEVEL"`
	EnforceListingAuth bool   `env:"ENFORCE_LISTING_AUTH"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL string `env:"-"`
	TokenFile string `env:"TOKEN_FILE"`
	Version   bool   `env:"-"` // show client version and exit (flag only)

	// migrate: заполнить базу демо-данными (flag only)
	Seed bool `env:"-"`
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// Server flags
	flag.StringVar(&cfg.DatabaseDriver, "db-driver", cfg.DatabaseDriver, "драйвер БД: postgres | sqlite")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug | info | warn | error")
	flag.BoolVar(&cfg.EnforceListingAuth, "enforce-listing-auth", cfg.EnforceListingAuth, "require listing author to be a community member")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "address of the marketplace server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	// Client flags
	flag.StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "path to auth token file (client)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")
	// Migrate flags
	flag.BoolVar(&cfg.Seed, "seed", cfg.Seed, "seed demo data after migration")

	flag.Parse()

	// Defaults
	if cfg.DatabaseDriver == "" {
		cfg.DatabaseDriver = "postgres"
	}
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = DefaultDatabaseDSN
	}
	if cfg.MaxOpenConns <= 0 {
		cfg.MaxOpenConns = 25
	}
	if cfg.MaxIdleConns <= 0 {
		cfg.MaxIdleConns = 5
	}
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = DefaultAuthSecret
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = DefaultBaseURL
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	// Fill client defaults if empty
	if cfg.TokenFile == "" {
		home, _ := os.UserHomeDir()
		cfg.TokenFile = filepath.Join(home, ".marketplace_token")
	}

	return cfg
}
