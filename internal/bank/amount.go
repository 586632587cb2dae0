// internal/bank/amount.go
//
// Parsing and printing of money typed at the terminal. Amounts are
// decimal.Decimal throughout so balances never pick up float rounding.

package bank

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountPattern is a plain number with at most two decimals after a comma or
// a dot. Exponents and thousands separators do not match.
var amountPattern = regexp.MustCompile(`^-?\d+([.,]\d{1,2})?$`)

// ParseAmount reads an amount typed by the customer. Both "500.50" and
// "500,50" are accepted; thousands separators, exponents and more than two
// decimals are not. The sign is kept, so the caller's rules decide about
// negatives.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if !amountPattern.MatchString(s) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrBadAmountFormat, s)
	}

	d, err := decimal.NewFromString(strings.Replace(s, ",", ".", 1))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrBadAmountFormat, s)
	}
	return d, nil
}

// FormatBRL prints an amount as "R$ 1500.90".
func FormatBRL(d decimal.Decimal) string {
	return "R$ " + d.StringFixed(2)
}
