package core

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Category identifies the spending bucket of an expense. The labels are
// canonical identifiers; translating them for display is a view concern.
type Category string

const (
	CategoryFood      Category = "Food"
	CategoryTransport Category = "Transport"
	CategoryHousing   Category = "Housing"
	CategoryLeisure   Category = "Leisure"
	CategoryHealth    Category = "Health"
	CategoryEducation Category = "Education"
	CategoryOther     Category = "Other"
)

// Categories returns the fixed category set in display order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransport,
		CategoryHousing,
		CategoryLeisure,
		CategoryHealth,
		CategoryEducation,
		CategoryOther,
	}
}

// Known reports whether c is one of the fixed categories. Mutating
// operations do not reject unknown categories; callers that care can check.
func (c Category) Known() bool {
	for _, k := range Categories() {
		if c == k {
			return true
		}
	}
	return false
}

// Period selects the reporting window all derived aggregates are scoped to.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodAll   Period = "all"
)

// ParsePeriod normalizes a period selector string. "today" is accepted as a
// legacy alias for day. Unrecognized values are kept verbatim and behave as
// the match-everything default at filter time, never as an error.
func ParsePeriod(s string) Period {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "day", "today":
		return PeriodDay
	case "week":
		return PeriodWeek
	case "month":
		return PeriodMonth
	case "all":
		return PeriodAll
	}
	return Period(s)
}

const (
	dateTimeLayout = "2006-01-02T15:04:05"
	dateOnlyLayout = "2006-01-02"
)

// Date is a calendar date with a fixed midnight time component, so that two
// records on the same day always compare equal at the day granularity.
// A time component supplied by the caller is preserved as-is.
type Date struct {
	time.Time
}

// NewDate creates a Date at midnight local time.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)}
}

// DateOf truncates t to its calendar day at midnight.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// ParseDate accepts a bare calendar date or a date with a time component.
// Bare dates are normalized to midnight.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(dateTimeLayout, s, time.Local); err == nil {
		return Date{Time: t}, nil
	}
	t, err := time.ParseInLocation(dateOnlyLayout, s, time.Local)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateTimeLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Expense is a single recorded spending entry.
type Expense struct {
	ID       int64           `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Category Category        `json:"category"`
	Date     Date            `json:"date"`
	Note     string          `json:"note,omitempty"`
}
