package models

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount with the currency symbol and grouping of its ISO code
func FormatMoney(amount decimal.Decimal, currency string) string {
	// money.New never returns a nil currency, unknown codes get a generic formatter
	cur := *money.New(0, currency).Currency()
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// FormatINR renders a rupee amount
func FormatINR(amount decimal.Decimal) string {
	return FormatMoney(amount, money.INR)
}
