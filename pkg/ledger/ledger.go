// Package ledger implements the authoritative collection of expenses, savings
// goals and the monthly budget.
//
// A Ledger owns the full state in memory and writes every mutation through to
// its Store before returning. There is exactly one mutator at a time by
// construction, so the ledger does no locking.
package ledger

import (
	"encoding/json"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spendwise/core/pkg/models"
	"github.com/spendwise/core/pkg/storage"
	"github.com/spendwise/core/pkg/types"
)

// Ledger is the single owner of the persisted tracker state.
type Ledger struct {
	store storage.Store
	log   zerolog.Logger

	state  models.State
	lastID int64
}

// New constructs a Ledger from the given store.
//
// Absent or malformed stored values degrade to an empty sequence or a zero
// budget with a warning; a first run must never fail.
func New(store storage.Store) *Ledger {
	l := &Ledger{
		store: store,
		log:   log.With().Str("ledger", uuid.NewString()).Logger(),
		state: models.State{
			Expenses: []models.Expense{},
			Goals:    []models.SavingsGoal{},
		},
	}

	l.loadExpenses()
	l.loadGoals()
	l.loadBudget()

	// IDs are wall-clock derived. Resuming from stored state must not hand
	// out an ID that is already taken.
	for _, expense := range l.state.Expenses {
		if expense.ID > l.lastID {
			l.lastID = expense.ID
		}
	}
	for _, goal := range l.state.Goals {
		if goal.ID > l.lastID {
			l.lastID = goal.ID
		}
	}

	return l
}

// AddExpense validates the input, appends a new expense to the sequence and
// persists it. The date is expected in YYYY-MM-DD format.
func (l *Ledger) AddExpense(name string, amount float64, category models.Category, date string) (models.Expense, error) {
	parsed, err := types.ParseDate(date)
	if err != nil {
		return models.Expense{}, models.ErrDateInvalid
	}

	expense := models.Expense{
		Name:     name,
		Amount:   amount,
		Category: category,
		Date:     parsed,
	}

	if err := expense.Validate(); err != nil {
		return models.Expense{}, err
	}

	expense.ID = l.nextID()
	l.state.Expenses = append(l.state.Expenses, expense)
	return expense, l.persistExpenses()
}

// DeleteExpense removes the expense with the given id. A missing id is a
// benign no-op, the state is persisted either way.
func (l *Ledger) DeleteExpense(id int64) error {
	kept := l.state.Expenses[:0]
	for _, expense := range l.state.Expenses {
		if expense.ID != id {
			kept = append(kept, expense)
		}
	}
	l.state.Expenses = kept

	return l.persistExpenses()
}

// BeginEdit removes the expense with the given id from the ledger and returns
// it so the caller can prefill its form for a re-add.
//
// The re-added expense gets a fresh id and loses the original list position.
// This matches the source behavior of editing and is asserted by tests, do
// not change it to an in-place update.
func (l *Ledger) BeginEdit(id int64) (models.Expense, error) {
	for i, expense := range l.state.Expenses {
		if expense.ID == id {
			l.state.Expenses = append(l.state.Expenses[:i], l.state.Expenses[i+1:]...)
			return expense, l.persistExpenses()
		}
	}

	return models.Expense{}, models.ErrNotFound
}

// AddGoal validates the input, appends a new savings goal and persists it.
// The target date is expected in YYYY-MM-DD format.
func (l *Ledger) AddGoal(name string, target float64, targetDate string) (models.SavingsGoal, error) {
	parsed, err := types.ParseDate(targetDate)
	if err != nil {
		return models.SavingsGoal{}, models.ErrDateInvalid
	}

	goal := models.SavingsGoal{
		Name:         name,
		TargetAmount: target,
		TargetDate:   parsed,
	}

	if err := goal.Validate(); err != nil {
		return models.SavingsGoal{}, err
	}

	goal.ID = l.nextID()
	l.state.Goals = append(l.state.Goals, goal)
	return goal, l.persistGoals()
}

// Contribute adds the amount to the goal's current amount and persists.
// The current amount only ever grows, contributions must be positive.
func (l *Ledger) Contribute(goalID int64, amount float64) (models.SavingsGoal, error) {
	if err := models.ValidateAmount(amount); err != nil {
		return models.SavingsGoal{}, models.ErrContributionNotPositive
	}

	for i := range l.state.Goals {
		if l.state.Goals[i].ID == goalID {
			l.state.Goals[i].CurrentAmount += amount
			return l.state.Goals[i], l.persistGoals()
		}
	}

	return models.SavingsGoal{}, models.ErrNotFound
}

// DeleteGoal removes the goal with the given id. A missing id is a benign
// no-op, the state is persisted either way.
func (l *Ledger) DeleteGoal(id int64) error {
	kept := l.state.Goals[:0]
	for _, goal := range l.state.Goals {
		if goal.ID != id {
			kept = append(kept, goal)
		}
	}
	l.state.Goals = kept

	return l.persistGoals()
}

// SetBudget sets the monthly budget and persists it.
func (l *Ledger) SetBudget(amount float64) error {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return models.ErrBudgetNegative
	}

	l.state.MonthlyBudget = amount
	return l.persistBudget()
}

// Expenses returns the expense sequence in insertion order.
func (l *Ledger) Expenses() []models.Expense {
	out := make([]models.Expense, len(l.state.Expenses))
	copy(out, l.state.Expenses)
	return out
}

// Goals returns the savings goals in insertion order.
func (l *Ledger) Goals() []models.SavingsGoal {
	out := make([]models.SavingsGoal, len(l.state.Goals))
	copy(out, l.state.Goals)
	return out
}

// Budget returns the monthly budget. Zero means no budget is set.
func (l *Ledger) Budget() float64 {
	return l.state.MonthlyBudget
}

// nextID returns a fresh identifier derived from the wall clock, bumped past
// the last one handed out so that two records created in the same millisecond
// stay distinguishable.
func (l *Ledger) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id

	return id
}

func (l *Ledger) loadExpenses() {
	raw, ok, err := l.store.Load(storage.KeyExpenses)
	if err != nil {
		l.log.Warn().Err(err).Msg("loading expenses failed, starting empty")
		return
	}
	if !ok {
		return
	}

	var expenses []models.Expense
	if err := json.Unmarshal([]byte(raw), &expenses); err != nil {
		l.log.Warn().Err(err).Msg("stored expenses are malformed, starting empty")
		return
	}

	l.state.Expenses = expenses
}

func (l *Ledger) loadGoals() {
	raw, ok, err := l.store.Load(storage.KeyGoals)
	if err != nil {
		l.log.Warn().Err(err).Msg("loading goals failed, starting empty")
		return
	}
	if !ok {
		return
	}

	var goals []models.SavingsGoal
	if err := json.Unmarshal([]byte(raw), &goals); err != nil {
		l.log.Warn().Err(err).Msg("stored goals are malformed, starting empty")
		return
	}

	l.state.Goals = goals
}

func (l *Ledger) loadBudget() {
	raw, ok, err := l.store.Load(storage.KeyBudget)
	if err != nil {
		l.log.Warn().Err(err).Msg("loading budget failed, defaulting to zero")
		return
	}
	if !ok {
		return
	}

	budget, err := strconv.ParseFloat(raw, 64)
	if err != nil || budget < 0 || math.IsNaN(budget) || math.IsInf(budget, 0) {
		l.log.Warn().Str("value", raw).Msg("stored budget is malformed, defaulting to zero")
		return
	}

	l.state.MonthlyBudget = budget
}

func (l *Ledger) persistExpenses() error {
	data, err := json.Marshal(l.state.Expenses)
	if err != nil {
		return err
	}

	return l.store.Save(storage.KeyExpenses, string(data))
}

func (l *Ledger) persistGoals() error {
	data, err := json.Marshal(l.state.Goals)
	if err != nil {
		return err
	}

	return l.store.Save(storage.KeyGoals, string(data))
}

func (l *Ledger) persistBudget() error {
	return l.store.Save(storage.KeyBudget, strconv.FormatFloat(l.state.MonthlyBudget, 'f', -1, 64))
}
