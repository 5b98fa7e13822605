package repositories

import (
	"log/slog"
	"sync"

	apperrors "bvdu-bank/internal/errors"
	"bvdu-bank/internal/models"
	"bvdu-bank/internal/records"
)

var (
	ErrHoldingNotFound     = apperrors.New(apperrors.TradeNotOwned)
	ErrHoldingLimitReached = apperrors.New(apperrors.TradeHoldingLimitReached)
)

type holdingKey struct {
	account int
	asset   string
}

type holdingRepository struct {
	path        string
	maxHoldings int
	logger      *slog.Logger

	mu       sync.RWMutex
	holdings *table[holdingKey, models.Holding]
}

// NewHoldingRepository creates a new holding repository backed by path
func NewHoldingRepository(path string, maxHoldings int, logger *slog.Logger) HoldingRepositoryInterface {
	return &holdingRepository{
		path:        path,
		maxHoldings: maxHoldings,
		logger:      logger,
		holdings:    newTable[holdingKey, models.Holding](),
	}
}

func (r *holdingRepository) Load() error {
	rows, err := LoadTable(r.path, records.DecodeHolding, r.logger)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.holdings.reset()
	for _, h := range rows {
		if r.holdings.len() >= r.maxHoldings {
			r.logger.Warn("holding table full, ignoring remaining rows", "max_holdings", r.maxHoldings)
			break
		}
		r.holdings.put(holdingKey{h.AccountNumber, h.AssetID}, h)
	}
	return nil
}

func (r *holdingRepository) Save() error {
	r.mu.RLock()
	rows := r.holdings.values()
	r.mu.RUnlock()

	return SaveTable(r.path, rows, records.EncodeHolding)
}

// Get returns a copy of the account's position in the asset
func (r *holdingRepository) Get(accountNumber int, assetID string) (*models.Holding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.holdings.get(holdingKey{accountNumber, assetID})
	if !ok {
		return nil, ErrHoldingNotFound
	}
	holding := *h
	return &holding, nil
}

// Upsert stores the holding, adding a row when the position is new
func (r *holdingRepository) Upsert(holding *models.Holding) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := holdingKey{holding.AccountNumber, holding.AssetID}
	if _, exists := r.holdings.get(key); !exists && r.holdings.len() >= r.maxHoldings {
		return ErrHoldingLimitReached
	}
	stored := *holding
	r.holdings.put(key, &stored)
	return nil
}

// Remove deletes the position, keeping the order of the others
func (r *holdingRepository) Remove(accountNumber int, assetID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.holdings.remove(holdingKey{accountNumber, assetID}) {
		return ErrHoldingNotFound
	}
	return nil
}

// ListByAccount returns copies of the account's positions in table order
func (r *holdingRepository) ListByAccount(accountNumber int) []models.Holding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Holding
	for _, h := range r.holdings.values() {
		if h.AccountNumber == accountNumber {
			out = append(out, *h)
		}
	}
	return out
}

func (r *holdingRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.holdings.len()
}

// HasCapacity reports whether a new position can be added
func (r *holdingRepository) HasCapacity() bool {
	return r.Count() < r.maxHoldings
}
