package request

import "github.com/shopspring/decimal"

// toCents converts a major-unit JSON amount (e.g. 150.50) to int64
// cents, rounding half-up at the cent so float noise from JSON decoding
// never shifts a price.
func toCents(amount float64) int64 {
	return decimal.NewFromFloat(amount).Shift(2).Round(0).IntPart()
}

func toCentsPtr(amount *float64) *int64 {
	if amount == nil {
		return nil
	}
	v := toCents(*amount)
	return &v
}

// percentToBps converts a margin percentage (e.g. 42.5) to basis points.
func percentToBps(percent float64) int64 {
	return decimal.NewFromFloat(percent).Shift(2).Round(0).IntPart()
}
