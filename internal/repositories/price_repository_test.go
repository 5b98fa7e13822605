package repositories

import (
	"path/filepath"
	"testing"
	"time"

	"bvdu-bank/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.txt")
	repo := NewPriceRepository(path, 2, discardLogger())

	require.NoError(t, repo.Create(&models.PriceRecord{
		AssetID: "INFY", Name: "Infosys Ltd", Price: decimal.NewFromInt(1500),
		Volatility: decimal.RequireFromString("0.01"), Market: models.MarketIN, OpenHour: 9, CloseHour: 15,
	}))
	require.NoError(t, repo.Create(&models.PriceRecord{
		AssetID: "AAPL", Name: "Apple Inc", Price: decimal.NewFromInt(190),
		Volatility: decimal.RequireFromString("0.02"), Market: models.MarketUS, OpenHour: 9, CloseHour: 17,
	}))

	assert.ErrorIs(t, repo.Create(&models.PriceRecord{AssetID: " INFY"}), ErrPriceExists)
	assert.ErrorIs(t, repo.Create(&models.PriceRecord{AssetID: "BTC"}), ErrPriceLimitReached)

	_, err := repo.Get("infy")
	assert.ErrorIs(t, err, ErrPriceNotFound)

	p, err := repo.Get("INFY")
	require.NoError(t, err)
	assert.Equal(t, "Infosys Ltd", p.Name)

	p.Price = decimal.NewFromInt(1600)
	require.NoError(t, repo.Update(p))
	assert.ErrorIs(t, repo.Update(&models.PriceRecord{AssetID: "NVDA"}), ErrPriceNotFound)

	require.NoError(t, repo.Save())
	reloaded := NewPriceRepository(path, 2, discardLogger())
	require.NoError(t, reloaded.Load())

	list := reloaded.List()
	require.Len(t, list, 2)
	assert.Equal(t, "INFY", list[0].AssetID)
	assert.True(t, list[0].Price.Equal(decimal.NewFromInt(1600)))
	assert.Equal(t, 17, list[1].CloseHour)
}

func TestFXRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fx_rates.txt")
	defaults := models.FXRates{InrPerUsd: decimal.RequireFromString("83.5"), InrPerEur: decimal.RequireFromString("88.2")}

	repo := NewFXRepository(path, defaults, discardLogger())
	require.NoError(t, repo.Load())
	assert.True(t, repo.Get().InrPerUsd.Equal(defaults.InrPerUsd))

	updated := models.FXRates{
		InrPerUsd:   decimal.NewFromInt(84),
		InrPerEur:   decimal.NewFromInt(90),
		LastUpdated: time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local),
	}
	repo.Set(updated)
	require.NoError(t, repo.Save())

	reloaded := NewFXRepository(path, defaults, discardLogger())
	require.NoError(t, reloaded.Load())
	got := reloaded.Get()
	assert.True(t, got.InrPerUsd.Equal(decimal.NewFromInt(84)))
	assert.True(t, got.InrPerEur.Equal(decimal.NewFromInt(90)))
	assert.True(t, got.LastUpdated.Equal(updated.LastUpdated))
}
