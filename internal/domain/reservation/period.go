package reservation

import (
	"time"

	"library-lending/internal/pkg/errs"
)

// DefaultLoanDays is the standard loan span when the caller does not
// pick an explicit return date.
const DefaultLoanDays = 5

var ErrInvalidPeriod = errs.New("period ends before it starts")

// Period is the loan interval of a reservation. Both bounds are dates;
// time-of-day is ignored by every comparison.
type Period struct {
	From time.Time
	To   time.Time
}

func NewPeriod(from, to time.Time) (Period, error) {
	from, to = DateOf(from), DateOf(to)
	if from.After(to) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{From: from, To: to}, nil
}

// PeriodFrom builds a period spanning the given number of days.
func PeriodFrom(from time.Time, days int) Period {
	from = DateOf(from)
	return Period{From: from, To: from.AddDate(0, 0, days)}
}

// DateOf strips the time-of-day, keeping the calendar date in t's
// location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
