// Package store owns the authoritative tracked state: the expense
// collection, the budget, the savings pool and its goal, and the selected
// reporting period. Memory is updated first on every mutation and the
// affected key is written through to the persistence port afterwards; a
// failed write is logged and the in-memory state stays authoritative for
// the rest of the session.
//
// No operation here returns an error. Unparseable numeric input
// canonicalizes to zero and unknown IDs are ignored, so a UI caller always
// gets a usable result back.
package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"ggmoney/internal/core"
	"ggmoney/internal/kv"
)

// Persistence keys. The whole expense collection is a single value; the
// scalars each get their own key.
const (
	KeyExpenses = "expenses"
	KeyBudget   = "budget"
	KeySavings  = "savings"
	KeyPeriod   = "period"
	KeyGoal     = "goal"
)

// A fresh store starts with a savings goal of 1000 so the progress bar has
// a meaningful denominator before the user sets one.
var defaultGoal = decimal.NewFromInt(1000)

const defaultPeriod = core.PeriodMonth

// EventKind names a mutation for change subscribers.
type EventKind string

const (
	EventExpenseAdded   EventKind = "expense_added"
	EventExpenseEdited  EventKind = "expense_edited"
	EventExpenseDeleted EventKind = "expense_deleted"
	EventBudgetSet      EventKind = "budget_set"
	EventSavingsChanged EventKind = "savings_changed"
	EventGoalSet        EventKind = "goal_set"
	EventPeriodSet      EventKind = "period_set"
)

// Event describes one completed mutation. ExpenseID is zero for scalar
// mutations.
type Event struct {
	Kind      EventKind
	ExpenseID int64
	At        time.Time
}

// Draft is the caller's input to AddExpense. A zero ID requests a fresh
// one; a zero Date defaults to today.
type Draft struct {
	ID       int64
	Amount   core.RawAmount
	Category core.Category
	Date     core.Date
	Note     string
}

// Patch carries the fields EditExpense should replace. Nil fields keep the
// existing value; the ID is immutable.
type Patch struct {
	Amount   core.RawAmount
	Category *core.Category
	Date     *core.Date
	Note     *string
}

// Store is the explicit state container, constructed once at startup and
// handed to whichever layer needs it.
type Store struct {
	mu sync.Mutex
	kv kv.Store

	expenses []core.Expense
	budget   decimal.Decimal
	savings  decimal.Decimal
	goal     decimal.Decimal
	period   core.Period

	lastID int64
	subs   []func(Event)
}

// Open loads all persisted state from the key-value store. Missing or
// malformed values degrade to defaults; the store is usable even when the
// persistence layer is broken.
func Open(ctx context.Context, store kv.Store) *Store {
	s := &Store{
		kv:      store,
		budget:  decimal.Zero,
		savings: decimal.Zero,
		goal:    defaultGoal,
		period:  defaultPeriod,
	}
	s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) {
	if raw, ok := s.loadKey(ctx, KeyExpenses); ok {
		var expenses []core.Expense
		if err := json.Unmarshal([]byte(raw), &expenses); err != nil {
			slog.WarnContext(ctx, "Discarding malformed expense collection", "error", err)
		} else {
			s.expenses = expenses
		}
	}
	for _, e := range s.expenses {
		if e.ID > s.lastID {
			s.lastID = e.ID
		}
	}

	s.budget = s.loadDecimal(ctx, KeyBudget, decimal.Zero)
	s.savings = s.loadDecimal(ctx, KeySavings, decimal.Zero)
	s.goal = s.loadDecimal(ctx, KeyGoal, defaultGoal)

	if raw, ok := s.loadKey(ctx, KeyPeriod); ok && raw != "" {
		s.period = core.ParsePeriod(raw)
	}
}

func (s *Store) loadKey(ctx context.Context, key string) (string, bool) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		slog.WarnContext(ctx, "Failed to read persisted state, using default",
			"key", key, "error", err)
		return "", false
	}
	return raw, ok
}

func (s *Store) loadDecimal(ctx context.Context, key string, fallback decimal.Decimal) decimal.Decimal {
	raw, ok := s.loadKey(ctx, key)
	if !ok {
		return fallback
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		slog.WarnContext(ctx, "Discarding malformed persisted number",
			"key", key, "value", raw, "error", err)
		return fallback
	}
	return d
}

// Subscribe registers fn to be called synchronously after every completed
// mutation. Subscribers must not mutate the store from the callback.
func (s *Store) Subscribe(fn func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) notify(ev Event) {
	for _, fn := range s.subs {
		fn(ev)
	}
}

// AddExpense canonicalizes the draft and appends it to the collection. The
// amount is always run through ParseAmount, whatever the caller validated.
func (s *Store) AddExpense(ctx context.Context, draft Draft) core.Expense {
	s.mu.Lock()

	e := core.Expense{
		ID:       draft.ID,
		Amount:   core.ParseAmount(draft.Amount),
		Category: draft.Category,
		Date:     draft.Date,
		Note:     draft.Note,
	}
	if e.ID == 0 {
		e.ID = s.nextID()
	} else if e.ID > s.lastID {
		s.lastID = e.ID
	}
	if e.Date.IsZero() {
		e.Date = core.DateOf(time.Now())
	}

	s.expenses = append(s.expenses, e)
	s.persistExpenses(ctx)
	s.mu.Unlock()

	slog.InfoContext(ctx, "Expense added",
		"id", e.ID, "amount", e.Amount, "category", e.Category)
	s.notify(Event{Kind: EventExpenseAdded, ExpenseID: e.ID, At: time.Now()})
	return e
}

// nextID issues a unique id from the wall clock in milliseconds, bumping
// past the last issued id when two records land in the same millisecond.
func (s *Store) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// DeleteExpense removes the record with the given id. An unknown id leaves
// the collection untouched.
func (s *Store) DeleteExpense(ctx context.Context, id int64) {
	s.mu.Lock()

	removed := false
	kept := s.expenses[:0]
	for _, e := range s.expenses {
		if e.ID == id {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	s.expenses = kept
	if removed {
		s.persistExpenses(ctx)
	}
	s.mu.Unlock()

	if removed {
		slog.InfoContext(ctx, "Expense deleted", "id", id)
		s.notify(Event{Kind: EventExpenseDeleted, ExpenseID: id, At: time.Now()})
	}
}

// EditExpense merges the patch over the record with the given id. A patched
// amount is re-canonicalized; the id never changes. An unknown id is a
// no-op.
func (s *Store) EditExpense(ctx context.Context, id int64, patch Patch) {
	s.mu.Lock()

	found := false
	for i := range s.expenses {
		if s.expenses[i].ID != id {
			continue
		}
		found = true
		if patch.Amount != nil {
			s.expenses[i].Amount = core.ParseAmount(patch.Amount)
		}
		if patch.Category != nil {
			s.expenses[i].Category = *patch.Category
		}
		if patch.Date != nil {
			s.expenses[i].Date = *patch.Date
		}
		if patch.Note != nil {
			s.expenses[i].Note = *patch.Note
		}
		break
	}
	if found {
		s.persistExpenses(ctx)
	}
	s.mu.Unlock()

	if found {
		slog.InfoContext(ctx, "Expense edited", "id", id)
		s.notify(Event{Kind: EventExpenseEdited, ExpenseID: id, At: time.Now()})
	}
}

func (s *Store) SetBudget(ctx context.Context, raw core.RawAmount) {
	s.mu.Lock()
	s.budget = core.ParseAmount(raw)
	s.persistDecimal(ctx, KeyBudget, s.budget)
	s.mu.Unlock()
	s.notify(Event{Kind: EventBudgetSet, At: time.Now()})
}

func (s *Store) SetSavings(ctx context.Context, raw core.RawAmount) {
	s.mu.Lock()
	s.savings = core.ParseAmount(raw)
	s.persistDecimal(ctx, KeySavings, s.savings)
	s.mu.Unlock()
	s.notify(Event{Kind: EventSavingsChanged, At: time.Now()})
}

// AddToSavings applies a signed delta to the savings pool. No minimum and
// no floor: a negative delta can push savings below zero; ResetSavings is
// the only reset.
func (s *Store) AddToSavings(ctx context.Context, raw core.RawAmount) {
	s.mu.Lock()
	s.savings = s.savings.Add(core.ParseAmount(raw))
	s.persistDecimal(ctx, KeySavings, s.savings)
	s.mu.Unlock()
	s.notify(Event{Kind: EventSavingsChanged, At: time.Now()})
}

// ResetSavings sets the savings pool to exactly zero, whatever its prior
// value.
func (s *Store) ResetSavings(ctx context.Context) {
	s.mu.Lock()
	s.savings = decimal.Zero
	s.persistDecimal(ctx, KeySavings, s.savings)
	s.mu.Unlock()
	s.notify(Event{Kind: EventSavingsChanged, At: time.Now()})
}

func (s *Store) SetGoal(ctx context.Context, raw core.RawAmount) {
	s.mu.Lock()
	s.goal = core.ParseAmount(raw)
	s.persistDecimal(ctx, KeyGoal, s.goal)
	s.mu.Unlock()
	s.notify(Event{Kind: EventGoalSet, At: time.Now()})
}

// SetPeriod replaces the reporting-period selector. The value is not
// validated: an unrecognized selector degrades to the match-everything
// default at aggregation time.
func (s *Store) SetPeriod(ctx context.Context, value string) {
	s.mu.Lock()
	s.period = core.ParsePeriod(value)
	s.persist(ctx, KeyPeriod, string(s.period))
	s.mu.Unlock()
	s.notify(Event{Kind: EventPeriodSet, At: time.Now()})
}

// Expenses returns a copy of the expense collection.
func (s *Store) Expenses() []core.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Expense(nil), s.expenses...)
}

func (s *Store) Budget() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.budget
}

func (s *Store) Savings() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.savings
}

func (s *Store) Goal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.goal
}

func (s *Store) Period() core.Period {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.period
}

// Snapshot captures the current state for the pure aggregate computations.
func (s *Store) Snapshot() core.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return core.Snapshot{
		Expenses: append([]core.Expense(nil), s.expenses...),
		Budget:   s.budget,
		Savings:  s.savings,
		Goal:     s.goal,
		Period:   s.period,
	}
}

func (s *Store) persistExpenses(ctx context.Context) {
	data, err := json.Marshal(s.expenses)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to serialize expense collection", "error", err)
		return
	}
	s.persist(ctx, KeyExpenses, string(data))
}

func (s *Store) persistDecimal(ctx context.Context, key string, d decimal.Decimal) {
	s.persist(ctx, key, d.String())
}

// persist writes one key through to the store. Failures are logged and
// swallowed: memory stays authoritative for the session.
func (s *Store) persist(ctx context.Context, key, value string) {
	if err := s.kv.Put(ctx, key, value); err != nil {
		slog.WarnContext(ctx, "Persistence write failed, keeping in-memory state",
			"key", key, "error", err)
	}
}
