// Package storage implements the durable key-value store backing the ledger.
package storage

import "errors"

// Keys used by the ledger. Each key holds the full serialized value for its
// concern; every mutation rewrites the affected keys completely.
const (
	KeyExpenses = "expenses" // JSON array of expenses
	KeyBudget   = "budget"   // stringified number
	KeyGoals    = "goals"    // JSON array of savings goals
)

// ErrStore is returned when the store is unreadable or unwritable. On load the
// ledger degrades to default state; on save the error propagates to the caller
// so the UI can warn that the change may not survive a reload.
var ErrStore = errors.New("the store could not be accessed")

// Store is the persistence adapter contract.
//
// Load returns the value for a key and whether it was present; an absent key
// is not an error. Save writes the value for a key, replacing any previous
// value. Both are synchronous.
type Store interface {
	Load(key string) (value string, ok bool, err error)
	Save(key, value string) error
}
