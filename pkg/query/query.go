// Package query implements the pure filter, sort and paginate pipeline that
// turns the full expense sequence into a page for display.
//
// Nothing in this package mutates its input or touches the ledger; the view
// state is supplied by the caller on every call.
package query

import (
	"cmp"
	"slices"
	"strings"

	"github.com/spendwise/core/pkg/models"
)

// PageSize is the fixed number of expenses per page.
const PageSize = 10

// CategoryAll disables category filtering.
const CategoryAll = "all"

// SortKey selects the sort order of the pipeline.
type SortKey string

const (
	SortDate     SortKey = "date"     // chronological, earliest first
	SortAmount   SortKey = "amount"   // ascending
	SortCategory SortKey = "category" // lexicographic ascending
)

// ViewState is the ephemeral display selection. It is never persisted.
type ViewState struct {
	Category string  // CategoryAll or a category name
	Search   string  // case-insensitive substring match on the name
	SortBy   SortKey // zero value keeps the stored order
	Page     int     // 1-indexed
}

// Result is one page of expenses plus pagination metadata.
type Result struct {
	Expenses      []models.Expense
	Page          int
	PageSize      int
	FilteredCount int
	TotalPages    int
}

// Run applies filter, sort and paginate in order and returns the page the
// view state selects.
//
// Pages out of range yield an empty slice; clamping the page number into
// range is the caller's job.
func Run(expenses []models.Expense, view ViewState) Result {
	filtered := Filter(expenses, view.Category, view.Search)
	sorted := Sort(filtered, view.SortBy)

	return Result{
		Expenses:      Paginate(sorted, view.Page),
		Page:          view.Page,
		PageSize:      PageSize,
		FilteredCount: len(filtered),
		TotalPages:    TotalPages(len(filtered)),
	}
}

// Filter returns the expenses matching the category and search selection.
// An empty or CategoryAll category matches everything, as does an empty
// search string.
func Filter(expenses []models.Expense, category, search string) []models.Expense {
	search = strings.ToLower(search)

	out := []models.Expense{}
	for _, expense := range expenses {
		if category != "" && category != CategoryAll && string(expense.Category) != category {
			continue
		}

		if search != "" && !strings.Contains(strings.ToLower(expense.Name), search) {
			continue
		}

		out = append(out, expense)
	}

	return out
}

// Sort returns a sorted copy of the expenses. The sort is stable: ties keep
// their prior relative order.
func Sort(expenses []models.Expense, key SortKey) []models.Expense {
	out := make([]models.Expense, len(expenses))
	copy(out, expenses)

	switch key {
	case SortDate:
		slices.SortStableFunc(out, func(a, b models.Expense) int {
			return a.Date.Time().Compare(b.Date.Time())
		})
	case SortAmount:
		slices.SortStableFunc(out, func(a, b models.Expense) int {
			return cmp.Compare(a.Amount, b.Amount)
		})
	case SortCategory:
		slices.SortStableFunc(out, func(a, b models.Expense) int {
			return strings.Compare(string(a.Category), string(b.Category))
		})
	}

	return out
}

// Paginate returns the 1-indexed page of the expenses. Pages before the first
// or past the last yield an empty slice.
func Paginate(expenses []models.Expense, page int) []models.Expense {
	if page < 1 {
		return []models.Expense{}
	}

	start := (page - 1) * PageSize
	if start >= len(expenses) {
		return []models.Expense{}
	}

	end := min(start+PageSize, len(expenses))
	return expenses[start:end]
}

// TotalPages returns the number of pages for a filtered count. It is at
// least 1 even for an empty result, the UI always shows one page.
func TotalPages(count int) int {
	if count <= 0 {
		return 1
	}

	return (count + PageSize - 1) / PageSize
}
