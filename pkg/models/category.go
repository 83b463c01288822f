package models

// Category classifies an expense's purpose.
type Category string

const (
	CategoryFood           Category = "food"
	CategoryTransportation Category = "transportation"
	CategoryEntertainment  Category = "entertainment"
	CategoryUtilities      Category = "utilities"
	CategoryShopping       Category = "shopping"
	CategoryHealthcare     Category = "healthcare"
	CategoryOther          Category = "other"
)

// categories holds the recognized set in presentation order,
// with the fallback category last.
var categories = []Category{
	CategoryFood,
	CategoryTransportation,
	CategoryEntertainment,
	CategoryUtilities,
	CategoryShopping,
	CategoryHealthcare,
	CategoryOther,
}

// Categories returns the recognized categories in a fixed order.
// The UI populates its select boxes from this.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Valid reports whether the category is in the recognized set.
func (c Category) Valid() bool {
	for _, category := range categories {
		if c == category {
			return true
		}
	}

	return false
}

func (c Category) String() string {
	return string(c)
}
