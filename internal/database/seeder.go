package database

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"bvdu-bank/internal/models"
	"bvdu-bank/internal/repositories"

	"github.com/shopspring/decimal"
)

type seedAccount struct {
	number  int
	name    string
	kind    string
	pin     int
	balance int64
}

var defaultAccounts = []seedAccount{
	{1001, "adarsh", models.AccountTypeSavings, 1234, 10000},
	{1002, "achyut", models.AccountTypeSavings, 2345, 8000},
	{1003, "ayush", models.AccountTypeCurrent, 3456, 5000},
	{1004, "aabir", models.AccountTypeSavings, 4567, 12000},
}

type seedAsset struct {
	id         string
	name       string
	price      string
	volatility string
	market     models.Market
	open       int
	close      int
}

var defaultAssets = []seedAsset{
	{"INFY", "Infosys Ltd", "1500", "0.01", models.MarketIN, 9, 15},
	{"TCS", "TCS", "3200", "0.008", models.MarketIN, 9, 15},
	{"AAPL", "Apple Inc", "190", "0.02", models.MarketUS, 9, 17},
	{"NVDA", "NVIDIA Corp", "190", "0.03", models.MarketUS, 9, 17},
	{"BTC", "Bitcoin", "35000", "0.05", models.MarketUS, 0, 24},
	{"SIE", "Siemens", "120", "0.018", models.MarketEU, 8, 18},
}

// Seeder creates the demo data of a fresh data directory
type Seeder struct {
	db  *DB
	now func() time.Time
}

// NewSeeder creates a seeder that stamps records with now
func NewSeeder(db *DB, now func() time.Time) *Seeder {
	return &Seeder{db: db, now: now}
}

// EnsureDefaults fills in whatever a first run needs: demo accounts when the account
// file is missing, default assets when no price is listed, the FX file and the empty logs.
func (s *Seeder) EnsureDefaults() error {
	cfg := s.db.Config
	storage := &cfg.Storage

	if cfg.Ledger.SeedDefaultAccounts && !exists(storage.Path(storage.AccountsFile)) {
		if err := s.seedAccounts(); err != nil {
			return err
		}
	}

	for _, name := range []string{storage.TransactionsFile, storage.HoldingsFile} {
		if err := repositories.Touch(storage.Path(name)); err != nil {
			return err
		}
	}

	if s.db.Prices.Count() == 0 {
		if err := s.seedPrices(); err != nil {
			return err
		}
	}

	if !exists(storage.Path(storage.FXFile)) {
		rates := s.db.FX.Get()
		rates.LastUpdated = s.now()
		s.db.FX.Set(rates)
		if err := s.db.FX.Save(); err != nil {
			return err
		}
	}

	for _, name := range []string{storage.AuditFile, storage.NotificationsFile} {
		if err := repositories.Touch(storage.Path(name)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedAccounts() error {
	now := s.now()
	for _, seed := range defaultAccounts {
		account := &models.Account{
			Number:    seed.number,
			Name:      seed.name,
			Type:      seed.kind,
			PIN:       seed.pin,
			Balance:   decimal.NewFromInt(seed.balance),
			Active:    true,
			UPI:       seed.name + "@" + models.UPIDomain,
			LastLogin: now,
		}
		if err := s.db.Accounts.Create(account); err != nil {
			return fmt.Errorf("failed to seed account %d: %w", seed.number, err)
		}
	}
	if err := s.db.Accounts.Save(); err != nil {
		return err
	}

	s.audit(models.AuditActionDefaultAccounts)
	s.db.logger.Info("default accounts created", "count", len(defaultAccounts))
	return nil
}

func (s *Seeder) seedPrices() error {
	now := s.now()
	for _, seed := range defaultAssets {
		price := &models.PriceRecord{
			AssetID:    seed.id,
			Name:       seed.name,
			Price:      decimal.RequireFromString(seed.price),
			Volatility: decimal.RequireFromString(seed.volatility),
			Market:     seed.market,
			LastUpdate: now,
			OpenHour:   seed.open,
			CloseHour:  seed.close,
		}
		if err := s.db.Prices.Create(price); err != nil {
			return fmt.Errorf("failed to seed asset %s: %w", seed.id, err)
		}
	}
	if err := s.db.Prices.Save(); err != nil {
		return err
	}

	s.audit(models.AuditActionDefaultPrices)
	s.db.logger.Info("default prices initialized", "count", len(defaultAssets))
	return nil
}

func (s *Seeder) audit(entry string) {
	if err := s.db.AuditLog.AppendAudit(&models.AuditEntry{Timestamp: s.now(), Entry: entry}); err != nil {
		s.db.logger.Error("failed to write audit entry", "entry", entry, "error", err)
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

