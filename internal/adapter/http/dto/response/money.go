package response

import "github.com/shopspring/decimal"

// fromCents converts int64 cents back to a major-unit amount for JSON.
// Two decimal places always represent exactly in float64 at these
// magnitudes.
func fromCents(cents int64) float64 {
	v, _ := decimal.New(cents, -2).Float64()
	return v
}

func fromCentsPtr(cents *int64) *float64 {
	if cents == nil {
		return nil
	}
	v := fromCents(*cents)
	return &v
}

// bpsToPercent converts basis points to a percentage (3500 -> 35.0).
func bpsToPercent(bps int64) float64 {
	v, _ := decimal.New(bps, -2).Float64()
	return v
}
