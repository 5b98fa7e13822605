package repositories

import (
	"bvdu-bank/internal/models"
)

// Tables that are rewritten as a whole share Load/Save
type Persistable interface {
	Load() error
	Save() error
}

// AccountRepositoryInterface defines the contract for account table operations
type AccountRepositoryInterface interface {
	Persistable
	Create(account *models.Account) error
	GetByNumber(number int) (*models.Account, error)
	GetByUPI(upi string) (*models.Account, error)
	UPIExists(upi string) bool
	Update(account *models.Account) error
	List() []models.Account
	Count() int
	NextNumber() int
}

// TransactionRepositoryInterface defines the contract for the append-only transaction log
type TransactionRepositoryInterface interface {
	Append(transaction *models.Transaction) error
	GetByAccount(number int) ([]models.Transaction, error)
	GetRecentByAccount(number, limit int) ([]models.Transaction, error)
}

// HoldingRepositoryInterface defines the contract for holding table operations
type HoldingRepositoryInterface interface {
	Persistable
	Get(accountNumber int, assetID string) (*models.Holding, error)
	Upsert(holding *models.Holding) error
	Remove(accountNumber int, assetID string) error
	ListByAccount(accountNumber int) []models.Holding
	Count() int
	HasCapacity() bool
}

// PriceRepositoryInterface defines the contract for price table operations
type PriceRepositoryInterface interface {
	Persistable
	Create(price *models.PriceRecord) error
	Get(assetID string) (*models.PriceRecord, error)
	Update(price *models.PriceRecord) error
	List() []models.PriceRecord
	Count() int
}

// FXRepositoryInterface defines the contract for the exchange rate singleton
type FXRepositoryInterface interface {
	Persistable
	Get() models.FXRates
	Set(rates models.FXRates)
}

// AuditLogRepositoryInterface defines the contract for the audit and notification logs
type AuditLogRepositoryInterface interface {
	AppendAudit(entry *models.AuditEntry) error
	ListAudit(limit int) ([]models.AuditEntry, error)
	AppendNotification(notification *models.Notification) error
	ListNotifications(accountNumber, limit int) ([]models.Notification, error)
}
