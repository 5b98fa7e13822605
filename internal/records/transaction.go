package records

import (
	"strconv"

	"bvdu-bank/internal/models"
)

const transactionFields = 6

// EncodeTransaction writes accNo|timestamp|type|amount|balanceAfter|note
func EncodeTransaction(t *models.Transaction) string {
	return join(
		strconv.Itoa(t.AccountNumber),
		formatTime(t.Timestamp),
		t.Type,
		t.Amount.StringFixed(models.MoneyPlaces),
		t.BalanceAfter.StringFixed(models.MoneyPlaces),
		t.Note,
	)
}

func DecodeTransaction(line string) (*models.Transaction, error) {
	f, err := fields(line, transactionFields)
	if err != nil {
		return nil, err
	}

	t := &models.Transaction{Type: f[2], Note: f[5]}
	if t.AccountNumber, err = parseInt("account number", f[0]); err != nil {
		return nil, err
	}
	if t.Timestamp, err = parseTime("timestamp", f[1]); err != nil {
		return nil, err
	}
	if t.Amount, err = parseDecimal("amount", f[3], models.MoneyPlaces); err != nil {
		return nil, err
	}
	if t.BalanceAfter, err = parseDecimal("balance after", f[4], models.MoneyPlaces); err != nil {
		return nil, err
	}
	return t, nil
}
