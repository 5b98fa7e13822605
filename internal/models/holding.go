package models

import (
	"github.com/shopspring/decimal"
)

// QuantityEpsilon is the residual quantity below which a position is considered closed
var QuantityEpsilon = decimal.New(1, -6)

// Holding is an account's position in one asset. AvgPrice is in the asset's market currency.
type Holding struct {
	AccountNumber int
	AssetID       string
	Name          string
	Quantity      decimal.Decimal
	AvgPrice      decimal.Decimal
	Market        Market
}

// AddLot merges a purchase into the position using a weighted average cost
func (h *Holding) AddLot(quantity, price decimal.Decimal) {
	cost := h.AvgPrice.Mul(h.Quantity).Add(price.Mul(quantity))
	h.Quantity = h.Quantity.Add(quantity).Round(QuantityPlaces)
	if h.Quantity.IsPositive() {
		h.AvgPrice = cost.Div(h.Quantity).Round(PricePlaces)
	}
}

// Reduce removes quantity from the position; the average cost is unchanged
func (h *Holding) Reduce(quantity decimal.Decimal) {
	h.Quantity = h.Quantity.Sub(quantity).Round(QuantityPlaces)
}

// IsClosed reports whether the position should be dropped from the holdings table
func (h *Holding) IsClosed() bool {
	return h.Quantity.LessThanOrEqual(QuantityEpsilon)
}

// CostBasis is quantity times average price in market currency
func (h *Holding) CostBasis() decimal.Decimal {
	return h.Quantity.Mul(h.AvgPrice)
}
