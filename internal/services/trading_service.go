package services

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"bvdu-bank/internal/dto"
	"bvdu-bank/internal/models"
	"bvdu-bank/internal/repositories"

	"github.com/shopspring/decimal"
)

// tradingService buys and sells assets against the account's cash balance
type tradingService struct {
	accounts        AccountServiceInterface
	accountRepo     repositories.AccountRepositoryInterface
	holdingRepo     repositories.HoldingRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	market          MarketServiceInterface
	audit           AuditServiceInterface
	metrics         MetricsRecorderInterface
	lock            sync.Locker
	clock           Clock
	logger          *slog.Logger
}

// NewTradingService creates a trading service
func NewTradingService(
	accounts AccountServiceInterface,
	accountRepo repositories.AccountRepositoryInterface,
	holdingRepo repositories.HoldingRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	market MarketServiceInterface,
	audit AuditServiceInterface,
	metrics MetricsRecorderInterface,
	lock sync.Locker,
	clock Clock,
	logger *slog.Logger,
) TradingServiceInterface {
	return &tradingService{
		accounts:        accounts,
		accountRepo:     accountRepo,
		holdingRepo:     holdingRepo,
		transactionRepo: transactionRepo,
		market:          market,
		audit:           audit,
		metrics:         metrics,
		lock:            lock,
		clock:           clock,
		logger:          logger,
	}
}

// Buy purchases quantity units at the current quote while the asset's market is open
func (s *tradingService) Buy(session *Session, assetID string, quantity decimal.Decimal) (*dto.TradeResult, error) {
	quantity = quantity.Round(models.QuantityPlaces)
	if !quantity.IsPositive() {
		return nil, ErrInvalidQuantity
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	account, err := s.accounts.SessionAccount(session)
	if err != nil {
		return nil, err
	}
	price, err := s.market.GetPrice(assetID)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	if !price.IsOpenAt(now.Hour()) {
		return nil, ErrMarketClosed
	}

	cost := s.market.ConvertToINR(price.Market, price.Price.Mul(quantity)).Round(models.MoneyPlaces)
	if !cost.IsPositive() {
		return nil, ErrInvalidQuantity
	}
	if cost.GreaterThan(account.Balance) {
		return nil, ErrInsufficientFunds
	}

	holding, err := s.holdingRepo.Get(account.Number, price.AssetID)
	if err != nil {
		if !s.holdingRepo.HasCapacity() {
			return nil, ErrHoldingLimitReached
		}
		holding = &models.Holding{
			AccountNumber: account.Number,
			AssetID:       price.AssetID,
			Name:          price.Name,
			Quantity:      decimal.Zero,
			AvgPrice:      decimal.Zero,
			Market:        price.Market,
		}
	}
	holding.AddLot(quantity, price.Price)

	if err := account.Debit(cost); err != nil {
		return nil, err
	}
	if err := s.accountRepo.Update(account); err != nil {
		return nil, err
	}
	if err := s.holdingRepo.Upsert(holding); err != nil {
		return nil, err
	}

	note := fmt.Sprintf("Bought %s x %s", price.AssetID, quantity.StringFixed(4))
	p := newPersister(s.logger, s.metrics)
	p.save("accounts", s.accountRepo)
	p.save("holdings", s.holdingRepo)
	p.check("transactions", s.appendTransaction(account, models.TransactionTypeBuy, cost.Neg(), note, now))
	s.audit.Audit(fmt.Sprintf("%s|%d|%s|%s|%sINR", models.AuditActionBuy, account.Number, price.AssetID,
		quantity.StringFixed(4), cost.StringFixed(models.MoneyPlaces)))
	s.audit.Notify(account.Number, note)
	s.recordTrade("buy", price, cost)

	return &dto.TradeResult{
		Holding:     holding,
		CostINR:     cost,
		BalanceINR:  account.Balance,
		TradedPrice: price.Price,
	}, p.err()
}

// Sell disposes of quantity units at the current quote. Sells are accepted outside market hours.
func (s *tradingService) Sell(session *Session, assetID string, quantity decimal.Decimal) (*dto.TradeResult, error) {
	quantity = quantity.Round(models.QuantityPlaces)
	if !quantity.IsPositive() {
		return nil, ErrInvalidQuantity
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	account, err := s.accounts.SessionAccount(session)
	if err != nil {
		return nil, err
	}
	price, err := s.market.GetPrice(assetID)
	if err != nil {
		return nil, err
	}
	holding, err := s.holdingRepo.Get(account.Number, price.AssetID)
	if err != nil {
		return nil, err
	}
	if quantity.GreaterThan(holding.Quantity) {
		return nil, ErrInvalidQuantity
	}

	proceeds := s.market.ConvertToINR(price.Market, price.Price.Mul(quantity)).Round(models.MoneyPlaces)
	holding.Reduce(quantity)
	if proceeds.IsPositive() {
		if err := account.Credit(proceeds); err != nil {
			return nil, err
		}
	}

	if err := s.accountRepo.Update(account); err != nil {
		return nil, err
	}
	remaining := holding
	if holding.IsClosed() {
		remaining = nil
		err = s.holdingRepo.Remove(account.Number, holding.AssetID)
	} else {
		err = s.holdingRepo.Upsert(holding)
	}
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	note := fmt.Sprintf("Sold %s x %s", price.AssetID, quantity.StringFixed(4))
	p := newPersister(s.logger, s.metrics)
	p.save("accounts", s.accountRepo)
	p.save("holdings", s.holdingRepo)
	p.check("transactions", s.appendTransaction(account, models.TransactionTypeSell, proceeds, note, now))
	s.audit.Audit(fmt.Sprintf("%s|%d|%s|%s|%sINR", models.AuditActionSell, account.Number, price.AssetID,
		quantity.StringFixed(4), proceeds.StringFixed(models.MoneyPlaces)))
	s.audit.Notify(account.Number, note)
	s.recordTrade("sell", price, proceeds)

	return &dto.TradeResult{
		Holding:     remaining,
		CostINR:     proceeds,
		BalanceINR:  account.Balance,
		TradedPrice: price.Price,
	}, p.err()
}

// Holdings lists the session account's open positions
func (s *tradingService) Holdings(session *Session) ([]models.Holding, error) {
	account, err := s.accounts.SessionAccount(session)
	if err != nil {
		return nil, err
	}
	return s.holdingRepo.ListByAccount(account.Number), nil
}

func (s *tradingService) appendTransaction(account *models.Account, txType string, amount decimal.Decimal, note string, at time.Time) error {
	return s.transactionRepo.Append(&models.Transaction{
		AccountNumber: account.Number,
		Timestamp:     at,
		Type:          txType,
		Amount:        amount,
		BalanceAfter:  account.Balance,
		Note:          note,
	})
}

func (s *tradingService) recordTrade(side string, price *models.PriceRecord, notional decimal.Decimal) {
	value, _ := notional.Float64()
	s.metrics.IncrementCounter("trade_executed", map[string]string{"side": side, "market": strings.ToLower(string(price.Market))})
	s.metrics.RecordGauge("trade_notional_inr", value, nil)
	s.logger.Info("trade executed",
		"side", side,
		"asset_id", price.AssetID,
		"price", price.Price.StringFixed(models.PricePlaces),
		"notional_inr", notional.StringFixed(models.MoneyPlaces))
}
