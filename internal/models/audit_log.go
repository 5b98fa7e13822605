package models

import (
	"fmt"
	"time"
)

const (
	AuditActionCreateAccount    = "CREATE_ACCOUNT"
	AuditActionAccountFrozen    = "ACCOUNT_FROZEN"
	AuditActionDefaultAccounts  = "DEFAULT_ACCOUNTS_CREATED"
	AuditActionDefaultPrices    = "INITIALIZED_DEFAULT_PRICES"
	AuditActionMarketTick       = "MARKET_TICK"
	AuditActionAdminLogin       = "ADMIN_LOGIN"
	AuditActionAdminLoginFailed = "ADMIN_LOGIN_FAILED"
	AuditActionAdminLogout      = "ADMIN_LOGOUT"
	AuditActionRandomizePrices  = "ADMIN_RANDOMIZE_PRICES"
	AuditActionSetPrice         = "ADMIN_SET_PRICE"
	AuditActionApplyInterest    = "ADMIN_APPLY_INTEREST"
	AuditActionSetFX            = "ADMIN_SET_FX"
	AuditActionUnfreeze         = "ADMIN_UNFREEZE"
	AuditActionDeactivate       = "ADMIN_DEACTIVATE"
	AuditActionReactivate       = "ADMIN_REACTIVATE"
	AuditActionBuy              = "BUY"
	AuditActionSell             = "SELL"
)

// AuditEntry is one line of the administrative audit log
type AuditEntry struct {
	Timestamp time.Time
	Entry     string
}

func (e *AuditEntry) String() string {
	return fmt.Sprintf("%s %s", e.Timestamp.Format(TimestampLayout), e.Entry)
}

// Notification is a message queued for an account holder
type Notification struct {
	Timestamp     time.Time
	AccountNumber int
	Message       string
}
