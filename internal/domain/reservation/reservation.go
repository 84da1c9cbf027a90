package reservation

import (
	"time"

	"library-lending/internal/pkg/errs"
)

// Reservation binds one book copy to a loan period on behalf of a card.
// The owning card number is the key of the ledger that holds the
// reservation, so it is not repeated here.
type Reservation struct {
	BookCode string
	Period   Period
	Status   Status
}

// New creates a reservation in the initial Reserved status.
func New(bookCode string, period Period) Reservation {
	return Reservation{
		BookCode: bookCode,
		Period:   period,
		Status:   StatusReserved,
	}
}

// IsDelayed reports whether the reservation is overdue at the given
// instant: the loan period ended strictly before today and the copy has
// not come back. Delay is a query-time computation, never stored state.
func (r Reservation) IsDelayed(now time.Time) bool {
	return r.Period.To.Before(DateOf(now)) && r.Status != StatusReturned
}

// IsActive reports whether the reservation counts against the card's
// quota. Returned reservations are history.
func (r Reservation) IsActive() bool {
	return r.Status == StatusReserved || r.Status == StatusPicked
}

type Status int

const (
	StatusReserved Status = iota
	StatusPicked
	StatusReturned
)

var ErrInvalidStatus = errs.New("invalid reservation status")

func (s Status) String() string {
	switch s {
	case StatusReserved:
		return "reserved"
	case StatusPicked:
		return "picked"
	case StatusReturned:
		return "returned"
	default:
		return "unknown"
	}
}

func ParseStatus(s string) (Status, error) {
	switch s {
	case "reserved":
		return StatusReserved, nil
	case "picked":
		return StatusPicked, nil
	case "returned":
		return StatusReturned, nil
	default:
		return 0, ErrInvalidStatus
	}
}
