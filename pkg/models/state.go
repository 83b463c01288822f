package models

// State is the entire persisted state of the tracker: the append-only expense
// sequence, the savings goals and the monthly budget. Presentation order of
// expenses is controlled by the query pipeline, never by the stored sequence.
type State struct {
	Expenses      []Expense
	Goals         []SavingsGoal
	MonthlyBudget float64
}
