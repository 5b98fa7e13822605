package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FXRates holds the rupee value of one unit of each foreign currency
type FXRates struct {
	InrPerUsd   decimal.Decimal
	InrPerEur   decimal.Decimal
	LastUpdated time.Time
}

// ToINR converts an amount quoted on the given market into rupees
func (fx FXRates) ToINR(market Market, amount decimal.Decimal) decimal.Decimal {
	switch market {
	case MarketUS:
		return amount.Mul(fx.InrPerUsd)
	case MarketEU:
		return amount.Mul(fx.InrPerEur)
	default:
		return amount
	}
}
