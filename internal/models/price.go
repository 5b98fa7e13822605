package models

import (
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Market is the trading venue of an asset and determines its quote currency
type Market string

const (
	MarketIN Market = "IN"
	MarketUS Market = "US"
	MarketEU Market = "EU"
)

// ParseMarket upper-cases the code; unknown codes are kept as given
func ParseMarket(s string) Market {
	return Market(strings.ToUpper(strings.TrimSpace(s)))
}

func (m Market) IsKnown() bool {
	switch m {
	case MarketIN, MarketUS, MarketEU:
		return true
	default:
		return false
	}
}

// Currency returns the ISO code prices on this market are quoted in.
// Unknown markets are treated as rupee markets.
func (m Market) Currency() string {
	switch m {
	case MarketUS:
		return money.USD
	case MarketEU:
		return money.EUR
	default:
		return money.INR
	}
}

// PriceRecord is the current quote and trading window of one asset
type PriceRecord struct {
	AssetID    string
	Name       string
	Price      decimal.Decimal
	Volatility decimal.Decimal
	Market     Market
	LastUpdate time.Time
	OpenHour   int
	CloseHour  int
}

// IsOpenAt reports whether the market is open at the given local hour.
// A window whose open hour is after its close hour wraps past midnight.
func (p *PriceRecord) IsOpenAt(hour int) bool {
	if p.OpenHour <= p.CloseHour {
		return hour >= p.OpenHour && hour < p.CloseHour
	}
	return hour >= p.OpenHour || hour < p.CloseHour
}

// ApplyPerturbation moves the price by volatility*factor, never below floor.
// The floor is raised to the smallest stored quote unit, so a price never rounds to zero.
func (p *PriceRecord) ApplyPerturbation(factor, floor decimal.Decimal) {
	next := p.Price.Mul(decimal.NewFromInt(1).Add(p.Volatility.Mul(factor))).Round(PricePlaces)
	minimum := floor.RoundCeil(PricePlaces)
	if minimum.LessThan(minQuote) {
		minimum = minQuote
	}
	if next.LessThan(minimum) {
		next = minimum
	}
	p.Price = next
}
