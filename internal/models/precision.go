package models

import "github.com/shopspring/decimal"

// Decimal places kept for each kind of stored number. Values are rounded when
// they are mutated so that a load-save-load cycle reproduces them exactly.
const (
	MoneyPlaces    int32 = 2
	PricePlaces    int32 = 4
	QuantityPlaces int32 = 6
	RatePlaces     int32 = 6
)

// TimestampLayout is the local-time format used in every data file
const TimestampLayout = "2006-01-02 15:04:05"

// minQuote is the smallest positive price that survives rounding to PricePlaces
var minQuote = decimal.New(1, -PricePlaces)
