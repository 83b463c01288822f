package models

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spendwise/core/pkg/types"
)

// Expense is a single recorded expense.
//
// The ID is derived from the wall clock at creation time (Unix milliseconds)
// and is unique per record within a session. Records are never mutated in
// place: an edit removes the record and a subsequent re-add creates a new one
// with a fresh ID.
type Expense struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	Amount   float64    `json:"amount"`
	Category Category   `json:"category"`
	Date     types.Date `json:"date"`
}

// Validate checks the expense for user input errors.
func (e Expense) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return ErrNameEmpty
	}

	if err := ValidateAmount(e.Amount); err != nil {
		return err
	}

	if !e.Category.Valid() {
		return ErrCategoryUnknown
	}

	if e.Date.IsZero() {
		return ErrDateInvalid
	}

	return nil
}

// AmountString renders the amount the way the presentation layer shows it:
// a plain decimal with no trailing zeros, so 12.50 becomes "12.5" and
// 3.00 becomes "3". Amounts stay float64 internally, rounding happens
// only here.
func (e Expense) AmountString() string {
	return decimal.NewFromFloat(e.Amount).String()
}

// ValidateAmount checks that an amount is a finite, positive number.
func ValidateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return ErrAmountNotPositive
	}

	return nil
}
