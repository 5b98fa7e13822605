package repositories

import (
	"log/slog"
	"strings"
	"sync"

	apperrors "bvdu-bank/internal/errors"
	"bvdu-bank/internal/models"
	"bvdu-bank/internal/records"
)

var (
	ErrPriceNotFound     = apperrors.New(apperrors.MarketAssetNotFound)
	ErrPriceExists       = apperrors.Newf(apperrors.ValidationGeneral, "asset already listed")
	ErrPriceLimitReached = apperrors.Newf(apperrors.ValidationOutOfRange, "price table is full")
)

type priceRepository struct {
	path      string
	maxPrices int
	logger    *slog.Logger

	mu     sync.RWMutex
	prices *table[string, models.PriceRecord]
}

// NewPriceRepository creates a new price repository backed by path
func NewPriceRepository(path string, maxPrices int, logger *slog.Logger) PriceRepositoryInterface {
	return &priceRepository{
		path:      path,
		maxPrices: maxPrices,
		logger:    logger,
		prices:    newTable[string, models.PriceRecord](),
	}
}

// priceKey matches asset IDs exactly; "infy" and "INFY" are different assets
func priceKey(assetID string) string {
	return strings.TrimSpace(assetID)
}

func (r *priceRepository) Load() error {
	rows, err := LoadTable(r.path, records.DecodePrice, r.logger)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.prices.reset()
	for _, p := range rows {
		if r.prices.len() >= r.maxPrices {
			r.logger.Warn("price table full, ignoring remaining rows", "max_prices", r.maxPrices)
			break
		}
		r.prices.put(priceKey(p.AssetID), p)
	}
	return nil
}

func (r *priceRepository) Save() error {
	r.mu.RLock()
	rows := r.prices.values()
	r.mu.RUnlock()

	return SaveTable(r.path, rows, records.EncodePrice)
}

func (r *priceRepository) Create(price *models.PriceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := priceKey(price.AssetID)
	if _, exists := r.prices.get(key); exists {
		return ErrPriceExists
	}
	if r.prices.len() >= r.maxPrices {
		return ErrPriceLimitReached
	}
	stored := *price
	r.prices.put(key, &stored)
	return nil
}

// Get looks an asset up by id, ignoring case
func (r *priceRepository) Get(assetID string) (*models.PriceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.prices.get(priceKey(assetID))
	if !ok {
		return nil, ErrPriceNotFound
	}
	price := *p
	return &price, nil
}

func (r *priceRepository) Update(price *models.PriceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := priceKey(price.AssetID)
	if _, ok := r.prices.get(key); !ok {
		return ErrPriceNotFound
	}
	stored := *price
	r.prices.put(key, &stored)
	return nil
}

func (r *priceRepository) List() []models.PriceRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.PriceRecord, 0, r.prices.len())
	for _, p := range r.prices.values() {
		out = append(out, *p)
	}
	return out
}

func (r *priceRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.prices.len()
}
