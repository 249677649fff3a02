package core

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	Income  Category = "Income"
	Expense Category = "Expense"
)

type (
	// Category is the kind of a ledger entry. Sign is implied by the
	// category; the stored amount is always non-negative.
	Category string

	// Entry is one persisted ledger row: a category and an amount.
	Entry struct {
		Category Category
		Amount   decimal.Decimal
	}

	// Snapshot is the derived view of the whole ledger. It is recomputed
	// from scratch on every balance request and never persisted.
	Snapshot struct {
		Income  decimal.Decimal
		Expense decimal.Decimal
		Balance decimal.Decimal
	}
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidCategory = errors.New("invalid category")
)

// ParseCategory maps a stored cell value to a Category, case-insensitively.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	default:
		return "", ErrInvalidCategory
	}
}

func (c Category) Validate() error {
	switch c {
	case Income, Expense:
		return nil
	default:
		return ErrInvalidCategory
	}
}

func (e Entry) Validate() error {
	if err := e.Category.Validate(); err != nil {
		return err
	}
	if e.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}
