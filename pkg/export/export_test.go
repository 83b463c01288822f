package export_test

import (
	"encoding/json"
	"testing"

	"github.com/spendwise/core/pkg/export"
	"github.com/spendwise/core/pkg/models"
	"github.com/spendwise/core/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testExpenses() []models.Expense {
	return []models.Expense{
		{ID: 1, Name: "Lunch", Amount: 12.50, Category: models.CategoryFood, Date: types.NewDate(2024, 1, 5)},
		{ID: 2, Name: "Bus", Amount: 3.00, Category: models.CategoryTransportation, Date: types.NewDate(2024, 1, 6)},
	}
}

func TestCSV(t *testing.T) {
	expected := "Name,Amount,Category,Date\n" +
		"Lunch,12.5,food,2024-01-05\n" +
		"Bus,3,transportation,2024-01-06\n"

	assert.Equal(t, expected, export.CSV(testExpenses()))
}

func TestCSVEmpty(t *testing.T) {
	assert.Equal(t, "Name,Amount,Category,Date\n", export.CSV(nil))
}

func TestCSVNoEscaping(t *testing.T) {
	expenses := []models.Expense{
		{ID: 1, Name: "Dinner, with friends", Amount: 40, Category: models.CategoryFood, Date: types.NewDate(2024, 1, 5)},
	}

	// embedded commas pass through unquoted
	assert.Equal(t,
		"Name,Amount,Category,Date\nDinner, with friends,40,food,2024-01-05\n",
		export.CSV(expenses))
}

func TestJSON(t *testing.T) {
	out, err := export.JSON(testExpenses())
	require.Nil(t, err)

	// pretty-printed
	assert.Contains(t, out, "\n  ")
	assert.Contains(t, out, `"name": "Lunch"`)
	assert.Contains(t, out, `"date": "2024-01-05"`)

	// and round-trippable
	var parsed []models.Expense
	require.Nil(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, testExpenses(), parsed)
}

func TestJSONEmpty(t *testing.T) {
	out, err := export.JSON(nil)

	require.Nil(t, err)
	assert.Equal(t, "[]", out)
}
