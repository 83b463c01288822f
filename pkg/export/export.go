// Package export serializes the expense sequence into downloadable text.
// Triggering the actual download is the presentation layer's job.
package export

import (
	"encoding/json"
	"strings"

	"github.com/spendwise/core/pkg/models"
)

// CSV renders the expenses as comma-separated text in stored order.
//
// Values are joined verbatim: an embedded comma in a name shifts the columns
// of that row. Consumers of the original exports rely on this byte-for-byte,
// so no quoting or escaping is added.
func CSV(expenses []models.Expense) string {
	var b strings.Builder
	b.WriteString("Name,Amount,Category,Date\n")

	for _, expense := range expenses {
		b.WriteString(expense.Name)
		b.WriteString(",")
		b.WriteString(expense.AmountString())
		b.WriteString(",")
		b.WriteString(expense.Category.String())
		b.WriteString(",")
		b.WriteString(expense.Date.String())
		b.WriteString("\n")
	}

	return b.String()
}

// JSON renders the expenses as a pretty-printed JSON array.
func JSON(expenses []models.Expense) (string, error) {
	if expenses == nil {
		expenses = []models.Expense{}
	}

	data, err := json.MarshalIndent(expenses, "", "  ")
	if err != nil {
		return "", err
	}

	return string(data), nil
}
