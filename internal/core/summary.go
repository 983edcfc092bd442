package core

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// CategoryAmount is an amount aggregated under one category.
type CategoryAmount struct {
	Name   Category        `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// Snapshot is an immutable view of the tracked state, the input to every
// derived computation. Aggregates are recomputed on each read; nothing here
// is cached or invalidated.
type Snapshot struct {
	Expenses []Expense
	Budget   decimal.Decimal
	Savings  decimal.Decimal
	Goal     decimal.Decimal
	Period   Period
}

// Overview bundles every aggregate the view layer renders for the
// currently selected period.
type Overview struct {
	Period            Period           `json:"period"`
	Total             decimal.Decimal  `json:"total"`
	Remaining         decimal.Decimal  `json:"remaining"`
	ByCategory        []CategoryAmount `json:"by_category"`
	TopCategory       Category         `json:"top_category,omitempty"`
	TopAmount         decimal.Decimal  `json:"top_amount"`
	OverConcentration bool             `json:"over_concentration"`
	SavingsProgress   float64          `json:"savings_progress"`
}

// TotalForPeriod sums the amounts of all expenses inside the selected
// reporting window around ref.
func (s Snapshot) TotalForPeriod(ref time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, e := range s.Expenses {
		if MatchesPeriod(e.Date.Time, ref, s.Period) {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// Remaining is budget minus period spending minus savings. Money moved into
// the savings pool counts as no longer available against the budget.
func (s Snapshot) Remaining(ref time.Time) decimal.Decimal {
	return s.Budget.Sub(s.TotalForPeriod(ref)).Sub(s.Savings)
}

// CategoryTotals sums the filtered expenses per category, ordered by the
// first appearance of each category among the matching records.
func (s Snapshot) CategoryTotals(ref time.Time) []CategoryAmount {
	var totals []CategoryAmount
	index := make(map[Category]int)
	for _, e := range s.Expenses {
		if !MatchesPeriod(e.Date.Time, ref, s.Period) {
			continue
		}
		if i, ok := index[e.Category]; ok {
			totals[i].Amount = totals[i].Amount.Add(e.Amount)
			continue
		}
		index[e.Category] = len(totals)
		totals = append(totals, CategoryAmount{Name: e.Category, Amount: e.Amount})
	}
	return totals
}

// TopCategory returns the category with the largest total in the current
// window. Ties keep the category seen first. ok is false when no expense
// matches the window.
func (s Snapshot) TopCategory(ref time.Time) (top CategoryAmount, ok bool) {
	for _, ca := range s.CategoryTotals(ref) {
		if !ok || ca.Amount.GreaterThan(top.Amount) {
			top = ca
			ok = true
		}
	}
	return top, ok
}

// OverConcentration reports whether the top category takes more than half
// of the period total. False when nothing was spent.
func (s Snapshot) OverConcentration(ref time.Time) bool {
	total := s.TotalForPeriod(ref)
	if !total.IsPositive() {
		return false
	}
	top, ok := s.TopCategory(ref)
	if !ok {
		return false
	}
	return top.Amount.Mul(decimal.NewFromInt(2)).GreaterThan(total)
}

// SavingsProgress is savings/goal clamped to at most 1, or 0 when no
// positive goal is set.
func (s Snapshot) SavingsProgress() float64 {
	if !s.Goal.IsPositive() {
		return 0
	}
	ratio, _ := s.Savings.Div(s.Goal).Float64()
	return math.Min(ratio, 1)
}

// OverviewAt computes every aggregate for the selected period at once.
func (s Snapshot) OverviewAt(ref time.Time) Overview {
	o := Overview{
		Period:          s.Period,
		Total:           s.TotalForPeriod(ref),
		Remaining:       s.Remaining(ref),
		ByCategory:      s.CategoryTotals(ref),
		TopAmount:       decimal.Zero,
		SavingsProgress: s.SavingsProgress(),
	}
	if top, ok := s.TopCategory(ref); ok {
		o.TopCategory = top.Name
		o.TopAmount = top.Amount
	}
	o.OverConcentration = s.OverConcentration(ref)
	return o
}
