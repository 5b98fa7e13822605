package records

import (
	"bvdu-bank/internal/models"
)

const fxFields = 3

// EncodeFX writes inrPerUsd|inrPerEur|lastUpdate
func EncodeFX(fx *models.FXRates) string {
	return join(
		fx.InrPerUsd.StringFixed(models.RatePlaces),
		fx.InrPerEur.StringFixed(models.RatePlaces),
		formatTime(fx.LastUpdated),
	)
}

func DecodeFX(line string) (*models.FXRates, error) {
	f, err := fields(line, fxFields)
	if err != nil {
		return nil, err
	}

	fx := &models.FXRates{}
	if fx.InrPerUsd, err = parseDecimal("inr per usd", f[0], models.RatePlaces); err != nil {
		return nil, err
	}
	if fx.InrPerEur, err = parseDecimal("inr per eur", f[1], models.RatePlaces); err != nil {
		return nil, err
	}
	if fx.LastUpdated, err = parseTime("last update", f[2]); err != nil {
		return nil, err
	}
	return fx, nil
}
