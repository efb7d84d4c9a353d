package utils

import (
	"fmt"
	"strings"

	"github.com/hance08/teller/internal/constants"
	"github.com/shopspring/decimal"
)

var (
	centsPerUnit = decimal.NewFromInt(constants.CentsPerUnit)
	maxCents     = decimal.NewFromInt(constants.MaxAmountCents)
)

func FormatFromCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// FormatMoney prefixes the formatted amount with the currency label, e.g. "RM12.50".
func FormatMoney(currency string, cents int64) string {
	return currency + FormatFromCents(cents)
}

// ParseToCents parses "150", "150.5" or "150.50" into cents.
// More than two fractional digits is rejected rather than truncated.
func ParseToCents(amountStr string) (int64, error) {
	amountStr = strings.TrimSpace(amountStr)
	if amountStr == "" {
		return 0, fmt.Errorf("amount is required")
	}

	d, err := decimal.NewFromString(amountStr)
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %s", amountStr)
	}

	if d.Exponent() < -2 && !d.Equal(d.Round(2)) {
		return 0, fmt.Errorf("invalid amount: %s (at most 2 decimal places)", amountStr)
	}

	cents := d.Mul(centsPerUnit)
	if !cents.IsInteger() {
		return 0, fmt.Errorf("invalid amount: %s", amountStr)
	}
	if cents.Abs().GreaterThan(maxCents) {
		return 0, fmt.Errorf("invalid amount: %s (larger than %s)", amountStr, FormatFromCents(constants.MaxAmountCents))
	}

	return cents.IntPart(), nil
}

// PercentOf returns rate*cents rounded half-up to a whole cent.
func PercentOf(cents int64, rate decimal.Decimal) int64 {
	return decimal.NewFromInt(cents).Mul(rate).Round(0).IntPart()
}

// FormatRate renders 0.02 as "2%".
func FormatRate(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).String() + "%"
}
