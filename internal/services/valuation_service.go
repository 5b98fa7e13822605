package services

import (
	"log/slog"
	"strconv"

	"bvdu-bank/internal/dto"
	"bvdu-bank/internal/models"
	"bvdu-bank/internal/repositories"

	"github.com/shopspring/decimal"
)

// valuationService values holdings in INR at the current quotes
type valuationService struct {
	accountRepo repositories.AccountRepositoryInterface
	holdingRepo repositories.HoldingRepositoryInterface
	market      MarketServiceInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
}

// NewValuationService creates a portfolio valuation service
func NewValuationService(
	accountRepo repositories.AccountRepositoryInterface,
	holdingRepo repositories.HoldingRepositoryInterface,
	market MarketServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ValuationServiceInterface {
	return &valuationService{
		accountRepo: accountRepo,
		holdingRepo: holdingRepo,
		market:      market,
		metrics:     metrics,
		logger:      logger,
	}
}

// PortfolioValueINR sums quantity times current price over all holdings.
// A holding whose asset has no quote is valued at its average price.
func (s *valuationService) PortfolioValueINR(accountNumber int) decimal.Decimal {
	total := decimal.Zero
	for _, h := range s.holdingRepo.ListByAccount(accountNumber) {
		total = total.Add(s.line(h).ValueINR)
	}
	return total
}

// UnrealizedPLINR sums quantity times (current - average) in INR
func (s *valuationService) UnrealizedPLINR(accountNumber int) decimal.Decimal {
	total := decimal.Zero
	for _, h := range s.holdingRepo.ListByAccount(accountNumber) {
		total = total.Add(s.line(h).UnrealizedPLINR)
	}
	return total
}

// Portfolio returns the cash balance and one valued line per holding
func (s *valuationService) Portfolio(accountNumber int) (*dto.PortfolioSummary, error) {
	account, err := s.accountRepo.GetByNumber(accountNumber)
	if err != nil {
		return nil, err
	}

	summary := &dto.PortfolioSummary{
		AccountNumber:        accountNumber,
		CashINR:              account.Balance,
		Holdings:             []dto.PortfolioLine{},
		TotalValueINR:        decimal.Zero,
		TotalUnrealizedPLINR: decimal.Zero,
	}
	for _, h := range s.holdingRepo.ListByAccount(accountNumber) {
		line := s.line(h)
		summary.Holdings = append(summary.Holdings, line)
		summary.TotalValueINR = summary.TotalValueINR.Add(line.ValueINR)
		summary.TotalUnrealizedPLINR = summary.TotalUnrealizedPLINR.Add(line.UnrealizedPLINR)
	}

	value, _ := summary.TotalValueINR.Float64()
	s.metrics.RecordGauge("portfolio_value_inr", value, map[string]string{"account": strconv.Itoa(accountNumber)})

	return summary, nil
}

func (s *valuationService) line(h models.Holding) dto.PortfolioLine {
	line := dto.PortfolioLine{
		AssetID:      h.AssetID,
		Name:         h.Name,
		Market:       h.Market,
		Quantity:     h.Quantity,
		AvgPrice:     h.AvgPrice,
		CurrentPrice: h.AvgPrice,
	}
	if price, err := s.market.GetPrice(h.AssetID); err == nil {
		line.CurrentPrice = price.Price
		line.Priced = true
	} else {
		s.logger.Debug("holding has no quote, valuing at cost", "asset_id", h.AssetID)
	}

	current := s.market.ConvertToINR(h.Market, h.Quantity.Mul(line.CurrentPrice))
	cost := s.market.ConvertToINR(h.Market, h.CostBasis())
	line.ValueINR = current
	line.UnrealizedPLINR = current.Sub(cost)
	return line
}
