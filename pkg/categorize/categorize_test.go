package categorize_test

import (
	"testing"

	"github.com/spendwise/core/pkg/categorize"
	"github.com/spendwise/core/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	suggester := categorize.NewKeyword()

	tests := []struct {
		description string
		expected    models.Category
	}{
		{"Dinner at restaurant", models.CategoryFood},
		{"GROCERY RUN", models.CategoryFood},
		{"Uber to the airport", models.CategoryTransportation},
		{"monthly bus pass", models.CategoryTransportation},
		{"Netflix subscription", models.CategoryEntertainment},
		{"electricity bill", models.CategoryUtilities},
		{"new shoes", models.CategoryShopping},
		{"dentist appointment", models.CategoryHealthcare},
		{"random stuff", models.CategoryOther},
		{"", models.CategoryOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, suggester.Suggest(tt.description), "description %q", tt.description)
	}
}

func TestSuggestPriorityOrder(t *testing.T) {
	suggester := categorize.NewKeyword()

	// "dinner at the movie theater" matches both food and entertainment;
	// the first category in table order wins.
	assert.Equal(t, models.CategoryFood, suggester.Suggest("dinner at the movie theater"))
}

func TestSuggestDeterministic(t *testing.T) {
	suggester := categorize.NewKeyword()

	first := suggester.Suggest("coffee with friends")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, suggester.Suggest("coffee with friends"))
	}
}

// Keyword satisfies the Suggester interface.
var _ categorize.Suggester = &categorize.Keyword{}
