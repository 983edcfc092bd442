package core

import "time"

// MatchesPeriod reports whether d falls inside the reporting window that
// contains the reference instant. Weeks start on Monday (ISO weeks).
// PeriodAll and any unrecognized selector match unconditionally; that is
// the deliberate safe default, not an error.
func MatchesPeriod(d, ref time.Time, p Period) bool {
	switch p {
	case PeriodDay:
		return sameDay(d, ref)
	case PeriodWeek:
		return sameISOWeek(d, ref)
	case PeriodMonth:
		return d.Year() == ref.Year() && d.Month() == ref.Month()
	default:
		return true
	}
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func sameISOWeek(a, b time.Time) bool {
	ay, aw := a.ISOWeek()
	by, bw := b.ISOWeek()
	return ay == by && aw == bw
}
