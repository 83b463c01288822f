package query_test

import (
	"fmt"
	"testing"

	"github.com/spendwise/core/pkg/models"
	"github.com/spendwise/core/pkg/query"
	"github.com/spendwise/core/pkg/types"
	"github.com/stretchr/testify/assert"
)

func testExpenses() []models.Expense {
	return []models.Expense{
		{ID: 1, Name: "Lunch", Amount: 12.50, Category: models.CategoryFood, Date: types.NewDate(2024, 1, 5)},
		{ID: 2, Name: "Bus", Amount: 3.00, Category: models.CategoryTransportation, Date: types.NewDate(2024, 1, 6)},
		{ID: 3, Name: "Dinner", Amount: 28.00, Category: models.CategoryFood, Date: types.NewDate(2024, 1, 2)},
		{ID: 4, Name: "Cinema", Amount: 9.00, Category: models.CategoryEntertainment, Date: types.NewDate(2024, 1, 6)},
	}
}

func TestFilterCategory(t *testing.T) {
	expenses := testExpenses()

	tests := []struct {
		category string
		ids      []int64
	}{
		{"all", []int64{1, 2, 3, 4}},
		{"", []int64{1, 2, 3, 4}},
		{"food", []int64{1, 3}},
		{"transportation", []int64{2}},
		{"healthcare", []int64{}},
	}

	for _, tt := range tests {
		filtered := query.Filter(expenses, tt.category, "")

		ids := []int64{}
		for _, e := range filtered {
			ids = append(ids, e.ID)
		}
		assert.Equal(t, tt.ids, ids, "category %q", tt.category)
	}
}

func TestFilterSearch(t *testing.T) {
	expenses := testExpenses()

	// case-insensitive substring on the name
	assert.Len(t, query.Filter(expenses, "all", "LUN"), 1)
	assert.Len(t, query.Filter(expenses, "all", "in"), 2) // Dinner, Cinema
	assert.Len(t, query.Filter(expenses, "all", "taxi"), 0)
}

func TestFilterConjunction(t *testing.T) {
	filtered := query.Filter(testExpenses(), "food", "din")

	assert.Len(t, filtered, 1)
	assert.Equal(t, int64(3), filtered[0].ID)
}

func TestFilterIdempotent(t *testing.T) {
	once := query.Filter(testExpenses(), "food", "n")
	twice := query.Filter(once, "food", "n")

	assert.Equal(t, once, twice)
}

func TestFilterDoesNotMutate(t *testing.T) {
	expenses := testExpenses()
	_ = query.Filter(expenses, "food", "")

	assert.Equal(t, testExpenses(), expenses)
}

func TestSortDate(t *testing.T) {
	sorted := query.Sort(testExpenses(), query.SortDate)

	// earliest first
	assert.Equal(t, int64(3), sorted[0].ID)
	assert.Equal(t, int64(1), sorted[1].ID)
	// equal dates keep their stored order
	assert.Equal(t, int64(2), sorted[2].ID)
	assert.Equal(t, int64(4), sorted[3].ID)
}

func TestSortAmount(t *testing.T) {
	sorted := query.Sort(testExpenses(), query.SortAmount)

	assert.Equal(t, []int64{2, 4, 1, 3}, ids(sorted))
}

func TestSortCategory(t *testing.T) {
	sorted := query.Sort(testExpenses(), query.SortCategory)

	assert.Equal(t, []int64{4, 1, 3, 2}, ids(sorted))
}

func TestSortStability(t *testing.T) {
	// Sorting an already date-sorted sequence by category keeps the
	// relative order among equal categories.
	byDate := query.Sort(testExpenses(), query.SortDate)
	byCategory := query.Sort(byDate, query.SortCategory)

	assert.Equal(t, []int64{4, 3, 1, 2}, ids(byCategory))
}

func TestSortDoesNotMutate(t *testing.T) {
	expenses := testExpenses()
	_ = query.Sort(expenses, query.SortAmount)

	assert.Equal(t, testExpenses(), expenses)
}

func TestPaginate(t *testing.T) {
	var expenses []models.Expense
	for i := 1; i <= 23; i++ {
		expenses = append(expenses, models.Expense{ID: int64(i), Name: fmt.Sprintf("e%d", i)})
	}

	assert.Len(t, query.Paginate(expenses, 1), 10)
	assert.Len(t, query.Paginate(expenses, 2), 10)
	assert.Len(t, query.Paginate(expenses, 3), 3)

	// the pipeline does not clamp, out of range is empty
	assert.Empty(t, query.Paginate(expenses, 4))
	assert.Empty(t, query.Paginate(expenses, 0))
	assert.Empty(t, query.Paginate(expenses, -1))

	assert.Equal(t, int64(11), query.Paginate(expenses, 2)[0].ID)
}

func TestPaginateCoversAll(t *testing.T) {
	for _, count := range []int{0, 1, 9, 10, 11, 20, 23, 100} {
		var expenses []models.Expense
		for i := 0; i < count; i++ {
			expenses = append(expenses, models.Expense{ID: int64(i)})
		}

		total := 0
		for page := 1; page <= query.TotalPages(count); page++ {
			total += len(query.Paginate(expenses, page))
		}

		// sum of all page lengths equals the filtered count
		assert.Equal(t, count, total, "count %d", count)
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count    int
		expected int
	}{
		{0, 1},
		{1, 1},
		{10, 1},
		{11, 2},
		{20, 2},
		{21, 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, query.TotalPages(tt.count), "count %d", tt.count)
	}
}

func TestRun(t *testing.T) {
	result := query.Run(testExpenses(), query.ViewState{
		Category: "food",
		SortBy:   query.SortDate,
		Page:     1,
	})

	assert.Equal(t, []int64{3, 1}, ids(result.Expenses))
	assert.Equal(t, 2, result.FilteredCount)
	assert.Equal(t, 1, result.TotalPages)
	assert.Equal(t, query.PageSize, result.PageSize)
}

func ids(expenses []models.Expense) []int64 {
	out := []int64{}
	for _, e := range expenses {
		out = append(out, e.ID)
	}
	return out
}
