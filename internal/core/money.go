// Package core provides the ledger domain types, amount parsing and
// balance aggregation.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a user-supplied amount string to a decimal.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators and
// trims surrounding whitespace. Zero and negative amounts are rejected:
// the sign of an entry is carried by its category, never by the number.
//
// Examples:
//
//	ParseAmount("1000")  -> 1000, nil
//	ParseAmount("12,34") -> 12.34, nil
//	ParseAmount("-5")    -> 0, ErrInvalidAmount
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if !d.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}
