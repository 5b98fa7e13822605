package services

import (
	"log/slog"
	"sync"

	"bvdu-bank/internal/database"
)

// Bank wires every service over one loaded database. All mutations share one lock.
type Bank struct {
	Accounts  AccountServiceInterface
	Market    MarketServiceInterface
	Valuation ValuationServiceInterface
	Trading   TradingServiceInterface
	Admin     AdminServiceInterface
	Audit     AuditServiceInterface
	Clock     Clock
}

// BankOptions overrides the clock, random source and metrics sink; zero values use the defaults
type BankOptions struct {
	Clock   Clock
	Random  RandomSource
	Metrics MetricsRecorderInterface
}

// NewBank builds the service graph for db
func NewBank(db *database.DB, opts BankOptions, logger *slog.Logger) *Bank {
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Random == nil {
		opts.Random = NewRandomSource(db.Config.Market.RandomSeed)
	}
	if opts.Metrics == nil {
		opts.Metrics = NoopMetrics{}
	}

	lock := &sync.Mutex{}
	audit := NewAuditService(db.AuditLog, opts.Clock, opts.Metrics, logger)
	accounts := NewAccountService(db.Accounts, db.Transactions, audit, opts.Metrics, lock, opts.Clock, db.Config, logger)
	market := NewMarketService(db.Prices, db.FX, audit, opts.Metrics, lock, opts.Clock, opts.Random, db.Config, logger)

	return &Bank{
		Accounts:  accounts,
		Market:    market,
		Valuation: NewValuationService(db.Accounts, db.Holdings, market, opts.Metrics, logger),
		Trading:   NewTradingService(accounts, db.Accounts, db.Holdings, db.Transactions, market, audit, opts.Metrics, lock, opts.Clock, logger),
		Admin:     NewAdminService(accounts, market, audit, opts.Metrics, opts.Clock, db.Config, logger),
		Audit:     audit,
		Clock:     opts.Clock,
	}
}
