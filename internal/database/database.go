package database

import (
	"fmt"
	"log/slog"
	"os"

	"bvdu-bank/internal/config"
	apperrors "bvdu-bank/internal/errors"
	"bvdu-bank/internal/models"
	"bvdu-bank/internal/repositories"
)

// DB bundles the repositories of every table in the data directory
type DB struct {
	Config       *config.Config
	Accounts     repositories.AccountRepositoryInterface
	Transactions repositories.TransactionRepositoryInterface
	Holdings     repositories.HoldingRepositoryInterface
	Prices       repositories.PriceRepositoryInterface
	FX           repositories.FXRepositoryInterface
	AuditLog     repositories.AuditLogRepositoryInterface

	logger *slog.Logger
}

// New builds the repositories for the configured data directory without reading any file
func New(cfg *config.Config, logger *slog.Logger) *DB {
	storage := &cfg.Storage
	defaults := models.FXRates{
		InrPerUsd: cfg.Market.DefaultInrPerUsd,
		InrPerEur: cfg.Market.DefaultInrPerEur,
	}

	return &DB{
		Config:       cfg,
		Accounts:     repositories.NewAccountRepository(storage.Path(storage.AccountsFile), cfg.Ledger.MaxAccounts, cfg.Ledger.FirstAccountNumber, logger),
		Transactions: repositories.NewTransactionRepository(storage.Path(storage.TransactionsFile), logger),
		Holdings:     repositories.NewHoldingRepository(storage.Path(storage.HoldingsFile), cfg.Market.MaxHoldings, logger),
		Prices:       repositories.NewPriceRepository(storage.Path(storage.PricesFile), cfg.Market.MaxPrices, logger),
		FX:           repositories.NewFXRepository(storage.Path(storage.FXFile), defaults, logger),
		AuditLog:     repositories.NewAuditLogRepository(storage.Path(storage.AuditFile), storage.Path(storage.NotificationsFile), logger),
		logger:       logger,
	}
}

// Open creates the data directory if needed and loads every table
func Open(cfg *config.Config, logger *slog.Logger) (*DB, error) {
	if err := os.MkdirAll(cfg.Storage.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w: %w", apperrors.ErrPersistence, err)
	}

	db := New(cfg, logger)
	if err := db.Load(); err != nil {
		return nil, err
	}

	logger.Debug("data directory opened",
		"data_dir", cfg.Storage.DataDir,
		"accounts", db.Accounts.Count(),
		"prices", db.Prices.Count(),
		"holdings", db.Holdings.Count())
	return db, nil
}

// Load reads the tables in dependency order: rates, prices, holdings, accounts
func (db *DB) Load() error {
	tables := []struct {
		name  string
		table repositories.Persistable
	}{
		{"fx", db.FX},
		{"prices", db.Prices},
		{"holdings", db.Holdings},
		{"accounts", db.Accounts},
	}

	for _, t := range tables {
		if err := t.table.Load(); err != nil {
			return fmt.Errorf("failed to load %s: %w", t.name, err)
		}
	}
	return nil
}

// Path returns the full path of a data file
func (db *DB) Path(name string) string {
	return db.Config.Storage.Path(name)
}
