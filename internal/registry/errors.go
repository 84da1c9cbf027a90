package registry

import (
	"errors"

	"library-lending/internal/pkg/errs"
)

// ErrorKind classifies every failure the engine can surface. Adapters
// translate kinds into their own presentation; the engine only promises
// to fail with the most specific kind and to never mutate state on
// failure.
type ErrorKind string

const (
	// KindEmptyStore: the operation needs existing data but the
	// collection has zero entries.
	KindEmptyStore ErrorKind = "EMPTY_STORE"
	// KindNotFound: a specific key is absent where presence was required.
	KindNotFound ErrorKind = "NOT_FOUND"
	// KindDuplicateKey: an insert would violate a uniqueness constraint.
	KindDuplicateKey ErrorKind = "DUPLICATE_KEY"
	// KindStateViolation: a cross-cutting business rule is violated.
	KindStateViolation ErrorKind = "STATE_VIOLATION"
	// KindEmptyResult: a filtered query legitimately matched nothing.
	KindEmptyResult ErrorKind = "EMPTY_RESULT"
)

// Sentinel errors, one per failure condition. Each is always surfaced
// wrapped in an Error carrying its kind, so callers can branch on
// either errors.Is or IsKind.
var (
	ErrEmptyStore  = errs.New("store is empty")
	ErrEmptyResult = errs.New("no records match the filter")

	ErrDuplicateISBN       = errs.New("isbn already registered")
	ErrPublicationNotFound = errs.New("publication not found")

	ErrDuplicateCode     = errs.New("book code already registered")
	ErrBookNotFound      = errs.New("book copy not found")
	ErrPositionOccupied  = errs.New("shelf position already occupied")
	ErrBookNotReservable = errs.New("book copy has no shelf position")

	ErrDuplicateCardNumber = errs.New("card number already registered")
	ErrCardNotFound        = errs.New("card not found")
	ErrCardBlocked         = errs.New("card is blocked")
	ErrReservationsOpen    = errs.New("card still has reservations")
	ErrPatronLinked        = errs.New("card is still linked to a patron")

	ErrDuplicatePatronID = errs.New("patron id already registered")
	ErrPatronNotFound    = errs.New("patron not found")

	ErrCardAlreadyLinked   = errs.New("card is already linked to a patron")
	ErrPatronAlreadyLinked = errs.New("patron is already linked to a card")
	ErrLinkNotFound        = errs.New("card-patron link not found")
	ErrCardNotLinked       = errs.New("card is not linked to a patron")

	ErrBookAlreadyReserved   = errs.New("book copy is already reserved")
	ErrQuotaExceeded         = errs.New("reservation quota exceeded")
	ErrHasDelayedReservation = errs.New("card has a delayed reservation")
	ErrReservationNotFound   = errs.New("reservation not found")
)

// Error is the engine's failure type: a kind for coarse translation
// plus the wrapped sentinel for precise matching.
type Error struct {
	Kind ErrorKind
	err  error
}

func (e Error) Error() string {
	return string(e.Kind) + ": " + e.err.Error()
}

func (e Error) Unwrap() error {
	return e.err
}

// Reason is the failure description without the kind prefix, suitable
// for adapter-facing messages.
func (e Error) Reason() string {
	return e.err.Error()
}

// IsKind reports whether err carries the given engine error kind.
func IsKind(err error, kind ErrorKind) bool {
	var e Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func fail(kind ErrorKind, sentinel error) error {
	return Error{Kind: kind, err: sentinel}
}

func failf(kind ErrorKind, sentinel error, format string, args ...any) error {
	return Error{Kind: kind, err: errs.Wrapf(sentinel, format, args...)}
}
