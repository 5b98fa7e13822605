package services

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"bvdu-bank/internal/config"
	"bvdu-bank/internal/models"
	"bvdu-bank/internal/repositories"

	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

// marketService simulates quotes and holds the FX singleton
type marketService struct {
	priceRepo repositories.PriceRepositoryInterface
	fxRepo    repositories.FXRepositoryInterface
	audit     AuditServiceInterface
	metrics   MetricsRecorderInterface
	lock      sync.Locker
	clock     Clock
	random    RandomSource
	ticker    *rate.Limiter

	minTickInterval     time.Duration
	randomizeMultiplier decimal.Decimal
	priceFloor          decimal.Decimal
	logger              *slog.Logger
}

// NewMarketService creates a market simulator. A zero MinTickInterval lets every listing tick.
func NewMarketService(
	priceRepo repositories.PriceRepositoryInterface,
	fxRepo repositories.FXRepositoryInterface,
	audit AuditServiceInterface,
	metrics MetricsRecorderInterface,
	lock sync.Locker,
	clock Clock,
	random RandomSource,
	cfg *config.Config,
	logger *slog.Logger,
) MarketServiceInterface {
	limit := rate.Inf
	if cfg.Market.MinTickInterval > 0 {
		limit = rate.Every(cfg.Market.MinTickInterval)
	}

	return &marketService{
		priceRepo:           priceRepo,
		fxRepo:              fxRepo,
		audit:               audit,
		metrics:             metrics,
		lock:                lock,
		clock:               clock,
		random:              random,
		ticker:              rate.NewLimiter(limit, 1),
		minTickInterval:     cfg.Market.MinTickInterval,
		randomizeMultiplier: cfg.Market.RandomizeMultiplier,
		priceFloor:          cfg.Market.PriceFloor,
		logger:              logger,
	}
}

// IsOpen reports whether the asset's market is open at the given local time
func (s *marketService) IsOpen(assetID string, at time.Time) (bool, error) {
	price, err := s.priceRepo.Get(assetID)
	if err != nil {
		return false, err
	}
	return price.IsOpenAt(at.Hour()), nil
}

// Tick moves every asset whose market is open by a uniform draw in [-vol, +vol]
func (s *marketService) Tick() (int, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.tick()
}

// tick runs one market step. Caller holds the lock.
func (s *marketService) tick() (int, error) {
	start := time.Now()
	now := s.clock.Now()

	moved := 0
	for _, price := range s.priceRepo.List() {
		if !price.IsOpenAt(now.Hour()) {
			continue
		}
		price.ApplyPerturbation(s.draw(), s.priceFloor)
		price.LastUpdate = now
		if err := s.priceRepo.Update(&price); err != nil {
			return moved, err
		}
		moved++
	}

	p := newPersister(s.logger, s.metrics)
	p.save("prices", s.priceRepo)
	s.audit.Audit(models.AuditActionMarketTick + "|ALL_MARKETS")

	s.logger.Debug("market tick", "assets_moved", moved, "hour", now.Hour())
	s.metrics.IncrementCounter("market_tick", map[string]string{"kind": "tick"})
	s.metrics.RecordGauge("market_assets_moved", float64(moved), nil)
	s.metrics.RecordProcessingTime("market_tick", time.Since(start))

	return moved, p.err()
}

// draw maps the random source onto [-1, 1)
func (s *marketService) draw() decimal.Decimal {
	return decimal.NewFromFloat(s.random.Float64()*2 - 1)
}

// ListPrices ticks the market when a tick is due and returns all quotes.
// A persistence failure of the tick is returned with the listing.
func (s *marketService) ListPrices() ([]models.PriceRecord, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	var err error
	if s.tickDue(s.clock.Now()) {
		_, err = s.tick()
	}
	return s.priceRepo.List(), err
}

// tickDue measures the interval from the newest stored quote, so the throttle
// holds across processes. The limiter guards repeated listings within one process.
func (s *marketService) tickDue(now time.Time) bool {
	if s.minTickInterval <= 0 {
		return s.ticker.AllowN(now, 1)
	}

	var newest time.Time
	for _, price := range s.priceRepo.List() {
		if price.LastUpdate.After(newest) {
			newest = price.LastUpdate
		}
	}
	if now.Sub(newest) < s.minTickInterval {
		s.logger.Debug("market tick skipped", "last_update", newest, "min_interval", s.minTickInterval)
		return false
	}
	return s.ticker.AllowN(now, 1)
}

// GetPrice returns the current quote of one asset
func (s *marketService) GetPrice(assetID string) (*models.PriceRecord, error) {
	return s.priceRepo.Get(assetID)
}

// ConvertToINR converts a market-currency amount; unknown markets are treated as INR
func (s *marketService) ConvertToINR(market models.Market, amount decimal.Decimal) decimal.Decimal {
	return s.fxRepo.Get().ToINR(market, amount)
}

// FXRates returns the current exchange rates
func (s *marketService) FXRates() models.FXRates {
	return s.fxRepo.Get()
}

// RandomizePrices shocks every asset, open or closed, by the configured multiple of its volatility
func (s *marketService) RandomizePrices() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	now := s.clock.Now()
	for _, price := range s.priceRepo.List() {
		price.ApplyPerturbation(s.draw().Mul(s.randomizeMultiplier), s.priceFloor)
		price.LastUpdate = now
		if err := s.priceRepo.Update(&price); err != nil {
			return err
		}
	}

	p := newPersister(s.logger, s.metrics)
	p.save("prices", s.priceRepo)
	s.audit.Audit(models.AuditActionRandomizePrices)
	s.metrics.IncrementCounter("market_tick", map[string]string{"kind": "randomize"})
	s.logger.Info("prices randomized", "assets", s.priceRepo.Count())

	return p.err()
}

// SetPrice overrides the quote of one asset
func (s *marketService) SetPrice(assetID string, price decimal.Decimal) (*models.PriceRecord, error) {
	price = price.Round(models.PricePlaces)
	if !price.IsPositive() {
		return nil, ErrInvalidPrice
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	record, err := s.priceRepo.Get(assetID)
	if err != nil {
		return nil, err
	}
	old := record.Price
	record.Price = price
	record.LastUpdate = s.clock.Now()
	if err := s.priceRepo.Update(record); err != nil {
		return nil, err
	}

	p := newPersister(s.logger, s.metrics)
	p.save("prices", s.priceRepo)
	s.audit.Audit(fmt.Sprintf("%s|%s|%s->%s", models.AuditActionSetPrice, record.AssetID,
		old.StringFixed(models.PricePlaces), price.StringFixed(models.PricePlaces)))
	s.logger.Info("price overridden",
		"asset_id", record.AssetID,
		"old_price", old.StringFixed(models.PricePlaces),
		"new_price", price.StringFixed(models.PricePlaces))

	return record, p.err()
}

// SetFXRates replaces both exchange rates
func (s *marketService) SetFXRates(inrPerUsd, inrPerEur decimal.Decimal) (models.FXRates, error) {
	inrPerUsd = inrPerUsd.Round(models.RatePlaces)
	inrPerEur = inrPerEur.Round(models.RatePlaces)
	if !inrPerUsd.IsPositive() || !inrPerEur.IsPositive() {
		return models.FXRates{}, ErrInvalidRate
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	rates := models.FXRates{InrPerUsd: inrPerUsd, InrPerEur: inrPerEur, LastUpdated: s.clock.Now()}
	s.fxRepo.Set(rates)

	p := newPersister(s.logger, s.metrics)
	p.save("fx", s.fxRepo)
	s.audit.Audit(fmt.Sprintf("%s|INR_USD=%s|INR_EUR=%s", models.AuditActionSetFX,
		inrPerUsd.StringFixed(models.RatePlaces), inrPerEur.StringFixed(models.RatePlaces)))

	return rates, p.err()
}
