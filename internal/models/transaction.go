package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction type tags as written to the transaction log
const (
	TransactionTypeCreate      = "CREATE"
	TransactionTypeDeposit     = "DEPOSIT"
	TransactionTypeWithdraw    = "WITHDRAW"
	TransactionTypeTransferIn  = "TRANSFER_IN"
	TransactionTypeTransferOut = "TRANSFER_OUT"
	TransactionTypeUPIIn       = "UPI_IN"
	TransactionTypeUPIOut      = "UPI_OUT"
	TransactionTypeBuy         = "BUY"
	TransactionTypeSell        = "SELL"
	TransactionTypeInterest    = "INTEREST"
)

// Transaction is one immutable line of the cash audit trail.
// Amount is signed: debits are negative.
type Transaction struct {
	AccountNumber int
	Timestamp     time.Time
	Type          string
	Amount        decimal.Decimal
	BalanceAfter  decimal.Decimal
	Note          string
}
