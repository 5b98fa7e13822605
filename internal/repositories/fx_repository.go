package repositories

import (
	"log/slog"
	"sync"

	"bvdu-bank/internal/models"
	"bvdu-bank/internal/records"
)

// fxRepository holds the single exchange rate row of fx_rates.txt
type fxRepository struct {
	path     string
	defaults models.FXRates
	logger   *slog.Logger

	mu    sync.RWMutex
	rates models.FXRates
}

// NewFXRepository creates an exchange rate repository that starts from defaults
func NewFXRepository(path string, defaults models.FXRates, logger *slog.Logger) FXRepositoryInterface {
	return &fxRepository{
		path:     path,
		defaults: defaults,
		logger:   logger,
		rates:    defaults,
	}
}

// Load reads the first row of the file; a missing or empty file keeps the defaults
func (r *fxRepository) Load() error {
	rows, err := LoadTable(r.path, records.DecodeFX, r.logger)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(rows) == 0 {
		r.rates = r.defaults
		return nil
	}
	if !rows[0].InrPerUsd.IsPositive() || !rows[0].InrPerEur.IsPositive() {
		r.logger.Warn("ignoring non-positive exchange rates", "table", "fx")
		r.rates = r.defaults
		return nil
	}
	r.rates = *rows[0]
	return nil
}

func (r *fxRepository) Save() error {
	r.mu.RLock()
	rates := r.rates
	r.mu.RUnlock()

	return SaveTable(r.path, []*models.FXRates{&rates}, records.EncodeFX)
}

func (r *fxRepository) Get() models.FXRates {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rates
}

func (r *fxRepository) Set(rates models.FXRates) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rates = rates
}
