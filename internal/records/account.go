package records

import (
	"strconv"

	"bvdu-bank/internal/models"
)

const accountFields = 11

// EncodeAccount writes number|name|type|pin|balance|loan|active|frozen|failed|upi|lastLogin
func EncodeAccount(a *models.Account) string {
	return join(
		strconv.Itoa(a.Number),
		a.Name,
		a.Type,
		strconv.Itoa(a.PIN),
		a.Balance.StringFixed(models.MoneyPlaces),
		a.Loan.StringFixed(models.MoneyPlaces),
		formatBool(a.Active),
		formatBool(a.Frozen),
		strconv.Itoa(a.FailedAttempts),
		a.UPI,
		formatTime(a.LastLogin),
	)
}

func DecodeAccount(line string) (*models.Account, error) {
	f, err := fields(line, accountFields)
	if err != nil {
		return nil, err
	}

	a := &models.Account{Name: f[1], Type: f[2], UPI: f[9]}
	if a.Number, err = parseInt("account number", f[0]); err != nil {
		return nil, err
	}
	if a.PIN, err = parseInt("pin", f[3]); err != nil {
		return nil, err
	}
	if a.Balance, err = parseDecimal("balance", f[4], models.MoneyPlaces); err != nil {
		return nil, err
	}
	if a.Loan, err = parseDecimal("loan", f[5], models.MoneyPlaces); err != nil {
		return nil, err
	}
	if a.Active, err = parseBool("active", f[6]); err != nil {
		return nil, err
	}
	if a.Frozen, err = parseBool("frozen", f[7]); err != nil {
		return nil, err
	}
	if a.FailedAttempts, err = parseInt("failed attempts", f[8]); err != nil {
		return nil, err
	}
	if a.LastLogin, err = parseTime("last login", f[10]); err != nil {
		return nil, err
	}
	return a, nil
}
