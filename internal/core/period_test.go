package core

import (
	"testing"
	"time"
)

func TestMatchesPeriod(t *testing.T) {
	// Wednesday 2024-01-10.
	ref := time.Date(2024, 1, 10, 14, 30, 0, 0, time.Local)

	cases := []struct {
		name   string
		date   time.Time
		period Period
		want   bool
	}{
		{"same day", time.Date(2024, 1, 10, 0, 0, 0, 0, time.Local), PeriodDay, true},
		{"previous day", time.Date(2024, 1, 9, 23, 59, 0, 0, time.Local), PeriodDay, false},
		{"monday of same week", time.Date(2024, 1, 8, 0, 0, 0, 0, time.Local), PeriodWeek, true},
		{"sunday of same week", time.Date(2024, 1, 14, 0, 0, 0, 0, time.Local), PeriodWeek, true},
		{"sunday before monday start", time.Date(2024, 1, 7, 0, 0, 0, 0, time.Local), PeriodWeek, false},
		{"next monday", time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local), PeriodWeek, false},
		{"same month", time.Date(2024, 1, 31, 0, 0, 0, 0, time.Local), PeriodMonth, true},
		{"same month other year", time.Date(2023, 1, 10, 0, 0, 0, 0, time.Local), PeriodMonth, false},
		{"next month", time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local), PeriodMonth, false},
		{"all matches distant past", time.Date(1999, 6, 1, 0, 0, 0, 0, time.Local), PeriodAll, true},
		{"unrecognized selector matches", time.Date(1999, 6, 1, 0, 0, 0, 0, time.Local), Period("fortnight"), true},
		{"empty selector matches", time.Date(1999, 6, 1, 0, 0, 0, 0, time.Local), Period(""), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MatchesPeriod(tc.date, ref, tc.period); got != tc.want {
				t.Errorf("MatchesPeriod(%s, %s, %q) = %v, want %v",
					tc.date.Format("2006-01-02"), ref.Format("2006-01-02"), tc.period, got, tc.want)
			}
		})
	}
}

func TestParsePeriod(t *testing.T) {
	cases := []struct {
		in   string
		want Period
	}{
		{"day", PeriodDay},
		{"today", PeriodDay},
		{" Week ", PeriodWeek},
		{"month", PeriodMonth},
		{"all", PeriodAll},
		{"fortnight", Period("fortnight")},
	}
	for _, tc := range cases {
		if got := ParsePeriod(tc.in); got != tc.want {
			t.Errorf("ParsePeriod(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
