package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a decimal amount such as "150", "150.5" or "150.50".
// Floats never take part, so the value is exact.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	s := strings.TrimSpace(amountStr)
	if s == "" {
		return decimal.Zero, fmt.Errorf("amount is required")
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount: %s", amountStr)
	}

	return amount, nil
}

// FitsScale reports whether amount has at most scale fractional digits.
func FitsScale(amount decimal.Decimal, scale int32) bool {
	return amount.Equal(amount.Truncate(scale))
}

func FormatAmount(amount decimal.Decimal, scale int32) string {
	return amount.StringFixed(scale)
}
