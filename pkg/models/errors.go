package models

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is the root of all bad-input errors. Wrapping errors carry
	// the user-facing message; callers check the class with errors.Is.
	ErrValidation = errors.New("invalid input")

	// ErrNotFound is returned when no resource matches the specified id.
	ErrNotFound = errors.New("no resource matches the specified id")

	ErrNameEmpty               = fmt.Errorf("%w: the name must not be empty", ErrValidation)
	ErrAmountNotPositive       = fmt.Errorf("%w: the amount must be a positive number", ErrValidation)
	ErrCategoryUnknown         = fmt.Errorf("%w: the category is not recognized", ErrValidation)
	ErrDateInvalid             = fmt.Errorf("%w: the date must be in YYYY-MM-DD format", ErrValidation)
	ErrBudgetNegative          = fmt.Errorf("%w: the monthly budget must be a non-negative number", ErrValidation)
	ErrContributionNotPositive = fmt.Errorf("%w: contributions must be larger than zero", ErrValidation)
)
