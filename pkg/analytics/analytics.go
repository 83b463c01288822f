// Package analytics derives totals, breakdowns, comparisons and a naive
// spending forecast from the full expense sequence.
//
// All functions are pure reductions; they always work on the stored sequence,
// never on a filtered or paginated view. Ratio computations are guarded, no
// NaN or Inf ever reaches a caller.
package analytics

import (
	"errors"
	"slices"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendwise/core/pkg/models"
	"github.com/spendwise/core/pkg/types"
)

// RecentCount is the default number of expenses shown in the recent list.
const RecentCount = 5

// forecastWindowDays restricts the forecast input to recent history.
const forecastWindowDays = 180

// forecastMonths is how far the forecast projects forward.
const forecastMonths = 6

// ErrInsufficientData is returned when fewer than two months of history exist
// inside the forecast window.
var ErrInsufficientData = errors.New("not enough data for a forecast")

// CategoryTotal is the spending sum for one category.
type CategoryTotal struct {
	Category models.Category `json:"category"`
	Total    float64         `json:"total"`
}

// CategoryShare is a category's share of the grand total.
type CategoryShare struct {
	Category models.Category `json:"category"`
	Total    float64         `json:"total"`
	Percent  float64         `json:"percent"`
}

// Progress reports spending against the monthly budget.
type Progress struct {
	Percent    float64 `json:"percent"`
	OverBudget bool    `json:"overBudget"`
	BudgetSet  bool    `json:"budgetSet"` // false when no budget is configured
}

// Comparison compares the current calendar month against the previous one.
type Comparison struct {
	ThisMonth     float64 `json:"thisMonth"`
	LastMonth     float64 `json:"lastMonth"`
	ChangePercent float64 `json:"changePercent"`
}

// ForecastEntry is the projected spend for one future month.
type ForecastEntry struct {
	Month  types.Month `json:"month"`
	Amount float64     `json:"amount"`
}

// Total returns the sum of all expense amounts.
func Total(expenses []models.Expense) float64 {
	var total float64
	for _, expense := range expenses {
		total += expense.Amount
	}

	return total
}

// CategoryTotals returns the spending sum per category, in the order the
// categories first appear in the sequence.
func CategoryTotals(expenses []models.Expense) []CategoryTotal {
	totals := []CategoryTotal{}
	index := map[models.Category]int{}

	for _, expense := range expenses {
		i, seen := index[expense.Category]
		if !seen {
			i = len(totals)
			index[expense.Category] = i
			totals = append(totals, CategoryTotal{Category: expense.Category})
		}

		totals[i].Total += expense.Amount
	}

	return totals
}

// CategoryPercentages returns each category's share of the grand total,
// sorted by share in descending order. With a zero grand total every share
// is 0 instead of NaN.
func CategoryPercentages(expenses []models.Expense) []CategoryShare {
	grand := Total(expenses)

	shares := []CategoryShare{}
	for _, ct := range CategoryTotals(expenses) {
		share := CategoryShare{Category: ct.Category, Total: ct.Total}
		if grand > 0 {
			share.Percent = ct.Total / grand * 100
		}

		shares = append(shares, share)
	}

	// stable: equal shares keep first-seen order
	slices.SortStableFunc(shares, func(a, b CategoryShare) int {
		switch {
		case a.Percent > b.Percent:
			return -1
		case a.Percent < b.Percent:
			return 1
		default:
			return 0
		}
	})

	return shares
}

// BudgetProgress reports how much of the budget the total consumes. A zero
// budget yields zero percent with BudgetSet false, never a division by zero.
func BudgetProgress(total, budget float64) Progress {
	if budget <= 0 {
		return Progress{}
	}

	return Progress{
		Percent:    total / budget * 100,
		OverBudget: total > budget,
		BudgetSet:  true,
	}
}

// TopCategory returns the category with the highest spending sum. Ties keep
// the first-seen category. ok is false when there are no expenses.
func TopCategory(expenses []models.Expense) (top CategoryTotal, ok bool) {
	for i, ct := range CategoryTotals(expenses) {
		if i == 0 || ct.Total > top.Total {
			top = ct
			ok = true
		}
	}

	return top, ok
}

// Recent returns the last n expenses by insertion order, not by date. It is
// the tail of the stored sequence.
func Recent(expenses []models.Expense, n int) []models.Expense {
	if n <= 0 {
		return []models.Expense{}
	}
	if n > len(expenses) {
		n = len(expenses)
	}

	out := make([]models.Expense, n)
	copy(out, expenses[len(expenses)-n:])
	return out
}

// MonthlyComparison sums the current calendar month against the previous one
// and reports the percentage change.
//
// Both months are matched within the current year only: in January the
// previous month matches nothing. The change is 100 when the previous month
// has no spending.
func MonthlyComparison(expenses []models.Expense, now time.Time) Comparison {
	thisMonth := types.MonthOf(now)
	lastMonth := types.NewMonth(now.Year(), now.Month()-1)

	c := Comparison{}
	for _, expense := range expenses {
		date := expense.Date.Time()
		if date.Year() != now.Year() {
			continue
		}

		if thisMonth.Contains(date) {
			c.ThisMonth += expense.Amount
		} else if lastMonth.Contains(date) {
			c.LastMonth += expense.Amount
		}
	}

	if c.LastMonth == 0 {
		c.ChangePercent = 100
	} else {
		c.ChangePercent = (c.ThisMonth - c.LastMonth) / c.LastMonth * 100
	}

	return c
}

// Forecast projects the next six months of spending from the last 180 days.
//
// Expenses inside the window are bucketed by month; the successive
// month-over-month deltas are averaged and the average is repeatedly added
// to the last known month's total. This is a deliberate linear extrapolation,
// not a statistical model. With fewer than two months of history it returns
// ErrInsufficientData.
func Forecast(expenses []models.Expense, now time.Time) ([]ForecastEntry, error) {
	cutoff := now.AddDate(0, 0, -forecastWindowDays)

	sums := map[types.Month]float64{}
	for _, expense := range expenses {
		date := expense.Date.Time()
		if date.Before(cutoff) || date.After(now) {
			continue
		}

		sums[expense.Date.Month()] += expense.Amount
	}

	if len(sums) < 2 {
		return nil, ErrInsufficientData
	}

	months := make([]types.Month, 0, len(sums))
	for month := range sums {
		months = append(months, month)
	}
	slices.SortFunc(months, func(a, b types.Month) int {
		return time.Time(a).Compare(time.Time(b))
	})

	var deltaSum float64
	for i := 1; i < len(months); i++ {
		deltaSum += sums[months[i]] - sums[months[i-1]]
	}
	averageDelta := deltaSum / float64(len(months)-1)

	last := months[len(months)-1]
	lastTotal := sums[last]

	forecast := make([]ForecastEntry, 0, forecastMonths)
	for i := 1; i <= forecastMonths; i++ {
		forecast = append(forecast, ForecastEntry{
			Month:  last.AddDate(0, i),
			Amount: lastTotal + averageDelta*float64(i),
		})
	}

	return forecast, nil
}

// GoalProgress returns the percentage of a savings goal that is funded.
// A zero target yields zero, never a division by zero.
func GoalProgress(goal models.SavingsGoal) float64 {
	if goal.TargetAmount <= 0 {
		return 0
	}

	return goal.CurrentAmount / goal.TargetAmount * 100
}

// Round2 rounds a value to two decimals for presentation. Amounts and
// percentages stay unrounded everywhere else.
func Round2(v float64) float64 {
	out, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return out
}
