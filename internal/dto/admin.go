package dto

import (
	"github.com/shopspring/decimal"
)

// SetPriceRequest overrides the quote of one asset
type SetPriceRequest struct {
	AssetID string          `json:"asset_id" validate:"required,max=15,record_text"`
	Price   decimal.Decimal `json:"price" validate:"gt=0"`
}

// SetFXRequest replaces both exchange rates
type SetFXRequest struct {
	InrPerUsd decimal.Decimal `json:"inr_per_usd" validate:"gt=0"`
	InrPerEur decimal.Decimal `json:"inr_per_eur" validate:"gt=0"`
}

// ApplyInterestRequest credits interest to savings accounts; rate is a percentage
type ApplyInterestRequest struct {
	RatePercent decimal.Decimal `json:"rate_percent" validate:"gt=0"`
}

// InterestResult summarises an interest run
type InterestResult struct {
	AccountsCredited int             `json:"accounts_credited"`
	TotalInterest    decimal.Decimal `json:"total_interest"`
}
