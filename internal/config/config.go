package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const defaultAdminPIN = "0013"

// quotes are stored with four decimal places
var minPriceFloor = decimal.New(1, -4)

type Config struct {
	Environment string
	Storage     StorageConfig
	Security    SecurityConfig
	Ledger      LedgerConfig
	Market      MarketConfig
	Logging     LoggingConfig
	Metrics     MetricsConfig
}

type StorageConfig struct {
	DataDir           string
	AccountsFile      string
	TransactionsFile  string
	HoldingsFile      string
	PricesFile        string
	FXFile            string
	AuditFile         string
	NotificationsFile string
}

type SecurityConfig struct {
	MaxFailedAttempts int
	AdminPIN          string
}

type LedgerConfig struct {
	MaxAccounts         int
	FirstAccountNumber  int
	MiniStatementLimit  int
	SeedDefaultAccounts bool
}

type MarketConfig struct {
	MaxHoldings         int
	MaxPrices           int
	DefaultInrPerUsd    decimal.Decimal
	DefaultInrPerEur    decimal.Decimal
	RandomizeMultiplier decimal.Decimal
	PriceFloor          decimal.Decimal
	MinTickInterval     time.Duration
	RandomSeed          int64
}

type LoggingConfig struct {
	Level  string
	Format string
}

type MetricsConfig struct {
	TextfilePath string
}

// Load reads an optional .env file and then the process environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	config := &Config{
		Environment: getEnv("APP_ENV", "development"),
		Storage: StorageConfig{
			DataDir:           getEnv("BANK_DATA_DIR", "."),
			AccountsFile:      "accounts.txt",
			TransactionsFile:  "transactions.txt",
			HoldingsFile:      "holdings.txt",
			PricesFile:        "prices.txt",
			FXFile:            "fx_rates.txt",
			AuditFile:         "admin_audit.txt",
			NotificationsFile: "notifications.txt",
		},
		Security: SecurityConfig{
			MaxFailedAttempts: getIntEnv("MAX_FAILED_ATTEMPTS", 3),
			AdminPIN:          getEnv("ADMIN_PIN", defaultAdminPIN),
		},
		Ledger: LedgerConfig{
			MaxAccounts:         getIntEnv("MAX_ACCOUNTS", 500),
			FirstAccountNumber:  getIntEnv("FIRST_ACCOUNT_NUMBER", 1001),
			MiniStatementLimit:  getIntEnv("MINI_STATEMENT_LIMIT", 10),
			SeedDefaultAccounts: getBoolEnv("SEED_DEFAULT_ACCOUNTS", true),
		},
		Market: MarketConfig{
			MaxHoldings:         getIntEnv("MAX_HOLDINGS", 2000),
			MaxPrices:           getIntEnv("MAX_PRICES", 200),
			DefaultInrPerUsd:    getDecimalEnv("DEFAULT_INR_PER_USD", decimal.RequireFromString("83.5")),
			DefaultInrPerEur:    getDecimalEnv("DEFAULT_INR_PER_EUR", decimal.RequireFromString("88.2")),
			RandomizeMultiplier: getDecimalEnv("RANDOMIZE_MULTIPLIER", decimal.NewFromInt(5)),
			PriceFloor:          getDecimalEnv("PRICE_FLOOR", decimal.RequireFromString("0.0001")),
			MinTickInterval:     getDurationEnv("MARKET_MIN_TICK_INTERVAL", 0),
			RandomSeed:          int64(getIntEnv("MARKET_RANDOM_SEED", 0)),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		Metrics: MetricsConfig{
			TextfilePath: getEnv("METRICS_TEXTFILE", ""),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Default returns the configuration used when no environment is set, rooted at dataDir
func Default(dataDir string) *Config {
	return &Config{
		Environment: "testing",
		Storage: StorageConfig{
			DataDir:           dataDir,
			AccountsFile:      "accounts.txt",
			TransactionsFile:  "transactions.txt",
			HoldingsFile:      "holdings.txt",
			PricesFile:        "prices.txt",
			FXFile:            "fx_rates.txt",
			AuditFile:         "admin_audit.txt",
			NotificationsFile: "notifications.txt",
		},
		Security: SecurityConfig{MaxFailedAttempts: 3, AdminPIN: defaultAdminPIN},
		Ledger: LedgerConfig{
			MaxAccounts:         500,
			FirstAccountNumber:  1001,
			MiniStatementLimit:  10,
			SeedDefaultAccounts: true,
		},
		Market: MarketConfig{
			MaxHoldings:         2000,
			MaxPrices:           200,
			DefaultInrPerUsd:    decimal.RequireFromString("83.5"),
			DefaultInrPerEur:    decimal.RequireFromString("88.2"),
			RandomizeMultiplier: decimal.NewFromInt(5),
			PriceFloor:          decimal.RequireFromString("0.0001"),
		},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// Validate rejects settings the engine cannot run with
func (c *Config) Validate() error {
	if c.Security.MaxFailedAttempts <= 0 {
		return errors.New("MAX_FAILED_ATTEMPTS must be positive")
	}
	if len(c.Security.AdminPIN) != 4 || strings.Trim(c.Security.AdminPIN, "0123456789") != "" {
		return errors.New("ADMIN_PIN must be 4 digits")
	}
	if c.IsProduction() && c.Security.AdminPIN == defaultAdminPIN {
		return errors.New("ADMIN_PIN must be changed from the default in production")
	}
	if c.Ledger.MaxAccounts <= 0 || c.Market.MaxHoldings <= 0 || c.Market.MaxPrices <= 0 {
		return errors.New("table limits must be positive")
	}
	if c.Ledger.MiniStatementLimit <= 0 {
		return errors.New("MINI_STATEMENT_LIMIT must be positive")
	}
	if !c.Market.DefaultInrPerUsd.IsPositive() || !c.Market.DefaultInrPerEur.IsPositive() {
		return errors.New("default FX rates must be positive")
	}
	if c.Market.PriceFloor.LessThan(minPriceFloor) {
		return errors.New("PRICE_FLOOR must be at least 0.0001")
	}
	if c.Market.MinTickInterval < 0 {
		return errors.New("MARKET_MIN_TICK_INTERVAL cannot be negative")
	}
	return nil
}

// Path returns the full path of a data file
func (c *StorageConfig) Path(name string) string {
	return filepath.Join(c.DataDir, name)
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// NewLogger builds the slog logger described by the logging section
func NewLogger(cfg LoggingConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getDecimalEnv(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if d, err := decimal.NewFromString(value); err == nil {
			return d
		}
	}
	return defaultValue
}
