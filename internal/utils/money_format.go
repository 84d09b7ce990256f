package utils

import (
	"github.com/shopspring/decimal"
)

// FormatMoney renders a monetary amount as a fixed two-decimal string for the
// API boundary. Formatting is idempotent: parsing the output and formatting
// again yields the same text.
// Example: 12.3456 returns "12.35", 0 returns "0.00"
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
