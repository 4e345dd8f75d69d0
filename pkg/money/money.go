// Package money converts between the catalog's decimal euro amounts and the
// integer cent values every pricing computation runs on.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseCents parses a decimal euro amount ("45.00") into cents. Prices come
// from the catalog as strings; floats never enter the pricing path.
func ParseCents(amount string) (int64, error) {
	trimmed := strings.TrimSpace(amount)
	if trimmed == "" {
		return 0, fmt.Errorf("amount is empty")
	}
	dec, err := decimal.NewFromString(trimmed)
	if err != nil {
		return 0, fmt.Errorf("parsing amount %q: %w", amount, err)
	}
	return dec.Shift(2).Round(0).IntPart(), nil
}

// FormatEuros renders a cent amount as a two-decimal euro string.
func FormatEuros(cents int64) string {
	return decimal.NewFromInt(cents).Shift(-2).StringFixed(2)
}

// RoundKmRate prices a delivery distance at the given cents-per-km rate,
// rounding half away from zero.
func RoundKmRate(distanceKm float64, ratePerKmCents int) int64 {
	price := decimal.NewFromFloat(distanceKm).Mul(decimal.NewFromInt(int64(ratePerKmCents)))
	return price.Round(0).IntPart()
}
