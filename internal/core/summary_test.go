package core

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func expense(id int64, amount string, cat Category, date Date) Expense {
	return Expense{ID: id, Amount: dec(amount), Category: cat, Date: date}
}

func TestRemainingSubtractsSavings(t *testing.T) {
	ref := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)
	snap := Snapshot{
		Expenses: []Expense{
			expense(1, "120", CategoryFood, NewDate(2024, 3, 2)),
			expense(2, "180", CategoryHousing, NewDate(2024, 3, 14)),
			expense(3, "999", CategoryOther, NewDate(2024, 2, 28)), // outside the month
		},
		Budget:  dec("500"),
		Savings: dec("50"),
		Period:  PeriodMonth,
	}

	if got := snap.TotalForPeriod(ref); !got.Equal(dec("300")) {
		t.Fatalf("TotalForPeriod = %s, want 300", got)
	}
	if got := snap.Remaining(ref); !got.Equal(dec("150")) {
		t.Fatalf("Remaining = %s, want 150", got)
	}
}

func TestCategoryTotalsInsertionOrder(t *testing.T) {
	ref := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)
	snap := Snapshot{
		Expenses: []Expense{
			expense(1, "10", CategoryTransport, NewDate(2024, 3, 1)),
			expense(2, "40", CategoryFood, NewDate(2024, 3, 2)),
			expense(3, "5", CategoryTransport, NewDate(2024, 3, 3)),
		},
		Period: PeriodMonth,
	}

	totals := snap.CategoryTotals(ref)
	if len(totals) != 2 {
		t.Fatalf("got %d categories, want 2", len(totals))
	}
	if totals[0].Name != CategoryTransport || !totals[0].Amount.Equal(dec("15")) {
		t.Errorf("totals[0] = %s %s, want Transport 15", totals[0].Name, totals[0].Amount)
	}
	if totals[1].Name != CategoryFood || !totals[1].Amount.Equal(dec("40")) {
		t.Errorf("totals[1] = %s %s, want Food 40", totals[1].Name, totals[1].Amount)
	}
}

func TestTopCategoryAndOverConcentration(t *testing.T) {
	ref := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)
	snap := Snapshot{
		Expenses: []Expense{
			expense(1, "80", CategoryFood, NewDate(2024, 3, 1)),
			expense(2, "20", CategoryTransport, NewDate(2024, 3, 2)),
		},
		Period: PeriodMonth,
	}

	top, ok := snap.TopCategory(ref)
	if !ok || top.Name != CategoryFood || !top.Amount.Equal(dec("80")) {
		t.Fatalf("TopCategory = %v %v (ok=%v), want Food 80", top.Name, top.Amount, ok)
	}
	if !snap.OverConcentration(ref) {
		t.Error("OverConcentration should hold at 80%% of total")
	}
}

func TestTopCategoryTieKeepsFirstSeen(t *testing.T) {
	ref := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)
	snap := Snapshot{
		Expenses: []Expense{
			expense(1, "50", CategoryLeisure, NewDate(2024, 3, 1)),
			expense(2, "50", CategoryFood, NewDate(2024, 3, 2)),
		},
		Period: PeriodMonth,
	}

	top, ok := snap.TopCategory(ref)
	if !ok || top.Name != CategoryLeisure {
		t.Fatalf("tie should keep first-seen category, got %s", top.Name)
	}
	// An exact 50/50 split is not over-concentrated.
	if snap.OverConcentration(ref) {
		t.Error("OverConcentration should be false at exactly 50%%")
	}
}

func TestOverConcentrationEmptyPeriod(t *testing.T) {
	ref := time.Now()
	snap := Snapshot{Period: PeriodMonth}
	if snap.OverConcentration(ref) {
		t.Error("OverConcentration should be false with no spending")
	}
	if _, ok := snap.TopCategory(ref); ok {
		t.Error("TopCategory should report no category for an empty period")
	}
}

func TestSavingsProgress(t *testing.T) {
	cases := []struct {
		name    string
		savings string
		goal    string
		want    float64
	}{
		{"partial", "250", "1000", 0.25},
		{"complete", "1000", "1000", 1},
		{"clamped above goal", "1500", "1000", 1},
		{"zero goal", "500", "0", 0},
		{"negative goal", "500", "-10", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap := Snapshot{Savings: dec(tc.savings), Goal: dec(tc.goal)}
			if got := snap.SavingsProgress(); got != tc.want {
				t.Errorf("SavingsProgress = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestOverviewAt(t *testing.T) {
	ref := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)
	snap := Snapshot{
		Expenses: []Expense{
			expense(1, "80", CategoryFood, NewDate(2024, 3, 1)),
			expense(2, "20", CategoryTransport, NewDate(2024, 3, 2)),
		},
		Budget:  dec("500"),
		Savings: dec("50"),
		Goal:    dec("1000"),
		Period:  PeriodMonth,
	}

	o := snap.OverviewAt(ref)
	if !o.Total.Equal(dec("100")) {
		t.Errorf("Total = %s, want 100", o.Total)
	}
	if !o.Remaining.Equal(dec("350")) {
		t.Errorf("Remaining = %s, want 350", o.Remaining)
	}
	if o.TopCategory != CategoryFood || !o.TopAmount.Equal(dec("80")) {
		t.Errorf("TopCategory = %s %s, want Food 80", o.TopCategory, o.TopAmount)
	}
	if !o.OverConcentration {
		t.Error("OverConcentration should be true")
	}
	if o.SavingsProgress != 0.05 {
		t.Errorf("SavingsProgress = %v, want 0.05", o.SavingsProgress)
	}
	if len(o.ByCategory) != 2 {
		t.Errorf("ByCategory has %d entries, want 2", len(o.ByCategory))
	}
}
