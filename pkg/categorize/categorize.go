// Package categorize suggests a category for a free-text expense description.
package categorize

import (
	"strings"

	"github.com/ryanuber/go-glob"
	"github.com/spendwise/core/pkg/models"
)

// Suggester suggests a category for a description. Implementations are
// deterministic and keep no state, so a smarter one can be swapped in
// without changing callers.
type Suggester interface {
	Suggest(description string) models.Category
}

// rule maps one category to the glob patterns that select it.
type rule struct {
	Category models.Category
	Patterns []string
}

// Keyword is a Suggester matching a fixed, priority-ordered pattern table
// against the lowercased description. The first category with any matching
// pattern wins; nothing matches falls back to CategoryOther.
type Keyword struct {
	rules []rule
}

// NewKeyword returns a Keyword suggester with the default pattern table.
func NewKeyword() *Keyword {
	return &Keyword{
		rules: []rule{
			{models.CategoryFood, []string{
				"*restaurant*", "*dinner*", "*lunch*", "*breakfast*",
				"*grocery*", "*groceries*", "*coffee*", "*pizza*", "*food*",
			}},
			{models.CategoryTransportation, []string{
				"*bus*", "*train*", "*taxi*", "*uber*", "*gas*",
				"*fuel*", "*parking*", "*metro*",
			}},
			{models.CategoryEntertainment, []string{
				"*movie*", "*cinema*", "*concert*", "*game*",
				"*netflix*", "*spotify*",
			}},
			{models.CategoryUtilities, []string{
				"*electric*", "*water*", "*internet*", "*phone*",
				"*rent*", "*bill*",
			}},
			{models.CategoryShopping, []string{
				"*clothes*", "*shoes*", "*amazon*", "*mall*", "*store*",
			}},
			{models.CategoryHealthcare, []string{
				"*doctor*", "*pharmacy*", "*medicine*", "*hospital*",
				"*dentist*",
			}},
		},
	}
}

// Suggest implements the Suggester interface.
func (k *Keyword) Suggest(description string) models.Category {
	description = strings.ToLower(description)

	for _, rule := range k.rules {
		for _, pattern := range rule.Patterns {
			if glob.Glob(pattern, description) {
				return rule.Category
			}
		}
	}

	return models.CategoryOther
}
