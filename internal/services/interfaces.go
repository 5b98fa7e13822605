package services

import (
	"time"

	"bvdu-bank/internal/dto"
	"bvdu-bank/internal/models"

	"github.com/shopspring/decimal"
)

// AccountServiceInterface defines the customer ledger operations
type AccountServiceInterface interface {
	CreateAccount(req dto.CreateAccountRequest) (*models.Account, error)
	Authenticate(accountNumber, pin int) (*Session, error)
	Logout(session *Session)
	SessionAccount(session *Session) (*models.Account, error)
	GetAccount(session *Session) (*models.Account, error)
	Deposit(session *Session, amount decimal.Decimal) (*models.Account, error)
	Withdraw(session *Session, amount decimal.Decimal) (*models.Account, error)
	Transfer(session *Session, destination int, amount decimal.Decimal) (*models.Account, error)
	TransferByUPI(session *Session, upi string, amount decimal.Decimal) (*models.Account, error)
	MiniStatement(session *Session) ([]models.Transaction, error)
	Notifications(session *Session, limit int) ([]models.Notification, error)

	ApplyInterest(ratePercent decimal.Decimal) (*dto.InterestResult, error)
	ListAccounts() []models.Account
	Unfreeze(accountNumber int) (*models.Account, error)
	SetActive(accountNumber int, active bool) (*models.Account, error)
}

// MarketServiceInterface defines the simulated market and FX operations
type MarketServiceInterface interface {
	IsOpen(assetID string, at time.Time) (bool, error)
	Tick() (int, error)
	ListPrices() ([]models.PriceRecord, error)
	GetPrice(assetID string) (*models.PriceRecord, error)
	ConvertToINR(market models.Market, amount decimal.Decimal) decimal.Decimal
	FXRates() models.FXRates

	RandomizePrices() error
	SetPrice(assetID string, price decimal.Decimal) (*models.PriceRecord, error)
	SetFXRates(inrPerUsd, inrPerEur decimal.Decimal) (models.FXRates, error)
}

// ValuationServiceInterface defines the INR portfolio valuation
type ValuationServiceInterface interface {
	PortfolioValueINR(accountNumber int) decimal.Decimal
	UnrealizedPLINR(accountNumber int) decimal.Decimal
	Portfolio(accountNumber int) (*dto.PortfolioSummary, error)
}

// TradingServiceInterface defines buying and selling against the cash balance
type TradingServiceInterface interface {
	Buy(session *Session, assetID string, quantity decimal.Decimal) (*dto.TradeResult, error)
	Sell(session *Session, assetID string, quantity decimal.Decimal) (*dto.TradeResult, error)
	Holdings(session *Session) ([]models.Holding, error)
}

// AdminServiceInterface defines the PIN-gated administrator console
type AdminServiceInterface interface {
	VerifyPIN(pin string) (*AdminSession, error)
	Logout(session *AdminSession) error
	ListAccounts(session *AdminSession) ([]models.Account, error)
	SetPrice(session *AdminSession, req dto.SetPriceRequest) (*models.PriceRecord, error)
	RandomizePrices(session *AdminSession) error
	ApplyInterest(session *AdminSession, req dto.ApplyInterestRequest) (*dto.InterestResult, error)
	SetFXRates(session *AdminSession, req dto.SetFXRequest) (models.FXRates, error)
	Unfreeze(session *AdminSession, accountNumber int) (*models.Account, error)
	Deactivate(session *AdminSession, accountNumber int) (*models.Account, error)
	Reactivate(session *AdminSession, accountNumber int) (*models.Account, error)
	TickMarket(session *AdminSession) (int, error)
	AuditLog(session *AdminSession, limit int) ([]models.AuditEntry, error)
}

// AuditServiceInterface appends to the audit trail and the notification inbox.
// Write failures are logged and never fail the calling operation.
type AuditServiceInterface interface {
	Audit(entry string)
	Notify(accountNumber int, message string)
	AuditLog(limit int) ([]models.AuditEntry, error)
	Notifications(accountNumber, limit int) ([]models.Notification, error)
}

// MetricsRecorderInterface defines the interface for recording metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
