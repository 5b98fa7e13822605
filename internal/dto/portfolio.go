package dto

import (
	"bvdu-bank/internal/models"

	"github.com/shopspring/decimal"
)

// PortfolioLine values one holding at the current quote
type PortfolioLine struct {
	AssetID         string          `json:"asset_id"`
	Name            string          `json:"name"`
	Market          models.Market   `json:"market"`
	Quantity        decimal.Decimal `json:"quantity"`
	AvgPrice        decimal.Decimal `json:"avg_price"`
	CurrentPrice    decimal.Decimal `json:"current_price"`
	Priced          bool            `json:"priced"`
	ValueINR        decimal.Decimal `json:"value_inr"`
	UnrealizedPLINR decimal.Decimal `json:"unrealized_pl_inr"`
}

// PortfolioSummary is the cash and holdings view of one account
type PortfolioSummary struct {
	AccountNumber        int             `json:"account_number"`
	CashINR              decimal.Decimal `json:"cash_inr"`
	Holdings             []PortfolioLine `json:"holdings"`
	TotalValueINR        decimal.Decimal `json:"total_value_inr"`
	TotalUnrealizedPLINR decimal.Decimal `json:"total_unrealized_pl_inr"`
}

// TradeResult reports a completed buy or sell
type TradeResult struct {
	Holding     *models.Holding `json:"holding,omitempty"`
	CostINR     decimal.Decimal `json:"cost_inr"`
	BalanceINR  decimal.Decimal `json:"balance_inr"`
	TradedPrice decimal.Decimal `json:"traded_price"`
}
