package config

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ParseRate parses a fee rate such as "0.02". Rates must be within [0, 1].
func ParseRate(s string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid rate '%s'", s)
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.Zero, fmt.Errorf("rate %s out of range (0 to 1)", s)
	}
	return rate, nil
}
