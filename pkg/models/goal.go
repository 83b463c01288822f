package models

import (
	"strings"

	"github.com/spendwise/core/pkg/types"
)

// SavingsGoal tracks progress toward a savings target.
//
// CurrentAmount starts at zero and only grows through contributions.
type SavingsGoal struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	TargetAmount  float64    `json:"targetAmount"`
	TargetDate    types.Date `json:"targetDate"`
	CurrentAmount float64    `json:"currentAmount"`
}

// Validate checks the goal for user input errors.
func (g SavingsGoal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return ErrNameEmpty
	}

	if err := ValidateAmount(g.TargetAmount); err != nil {
		return err
	}

	if g.TargetDate.IsZero() {
		return ErrDateInvalid
	}

	return nil
}
