package registry

import (
	"strings"
	"sync"
	"time"

	"library-lending/internal/domain/reservation"
	"library-lending/internal/pkg/clock"
	"library-lending/internal/pkg/config"
)

// ReservationLedger owns every reservation, grouped per card number.
// A reservation's lifecycle starts at insert and ends when its status
// reaches Returned; there is no hard delete, history is kept. Book
// codes are compared case-insensitively in every ledger scan.
type ReservationLedger struct {
	mu    sync.Mutex
	books *BookRegistry
	cards *CardRegistry
	links *CardPatronLink
	clock clock.Clock
	quota int
	items map[int][]reservation.Reservation
}

func NewReservationLedger(
	books *BookRegistry,
	cards *CardRegistry,
	links *CardPatronLink,
	clk clock.Clock,
	cfg config.LendingConfig,
) *ReservationLedger {
	return &ReservationLedger{
		books: books,
		cards: cards,
		links: links,
		clock: clk,
		quota: cfg.MaxActiveReservations,
		items: make(map[int][]reservation.Reservation),
	}
}

// Insert appends a reservation to the card's list after the full
// validation chain, stopping at the first failure:
//
//  1. the book copy must exist,
//  2. it must be catalogued (have a shelf position),
//  3. the card must exist and not be blocked,
//  4. no other reservation, for any card, may hold the copy,
//  5. the card must be linked to a patron,
//  6. the card's active reservations must be under the quota,
//  7. none of the card's reservations may be delayed.
//
// Nothing is mutated unless every check passes.
func (l *ReservationLedger) Insert(cardNumber int, res reservation.Reservation) error {
	l.books.mu.Lock()
	defer l.books.mu.Unlock()
	l.cards.mu.Lock()
	defer l.cards.mu.Unlock()
	l.links.mu.Lock()
	defer l.links.mu.Unlock()
	l.mu.Lock()
	defer l.mu.Unlock()

	copyToReserve, ok := l.books.getLocked(res.BookCode)
	if !ok {
		return failf(KindNotFound, ErrBookNotFound, "code %q", res.BookCode)
	}
	if !copyToReserve.IsCatalogued() {
		return failf(KindStateViolation, ErrBookNotReservable, "code %q", res.BookCode)
	}
	c, ok := l.cards.getLocked(cardNumber)
	if !ok {
		return failf(KindNotFound, ErrCardNotFound, "card %d", cardNumber)
	}
	if c.IsBlocked {
		return failf(KindStateViolation, ErrCardBlocked, "card %d", cardNumber)
	}
	if l.bookReservedLocked(res.BookCode) {
		return failf(KindDuplicateKey, ErrBookAlreadyReserved, "code %q", res.BookCode)
	}
	if !l.links.containsLocked(cardNumber) {
		return failf(KindStateViolation, ErrCardNotLinked, "card %d", cardNumber)
	}

	now := l.clock.Now()
	active := 0
	for _, r := range l.items[cardNumber] {
		if r.IsActive() {
			active++
		}
	}
	if active >= l.quota {
		return failf(KindStateViolation, ErrQuotaExceeded, "card %d", cardNumber)
	}
	for _, r := range l.items[cardNumber] {
		if r.IsDelayed(now) {
			return failf(KindStateViolation, ErrHasDelayedReservation, "card %d", cardNumber)
		}
	}

	l.items[cardNumber] = append(l.items[cardNumber], res)
	return nil
}

// UpdatePeriod extends (or shortens) the return date of one
// reservation. Extending any loan is blocked while another of the
// card's loans is overdue.
func (l *ReservationLedger) UpdatePeriod(cardNumber int, bookCode string, dateTo time.Time) error {
	l.links.mu.Lock()
	defer l.links.mu.Unlock()
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.items) == 0 {
		return fail(KindEmptyStore, ErrEmptyStore)
	}
	if !l.links.containsLocked(cardNumber) {
		return failf(KindStateViolation, ErrCardNotLinked, "card %d", cardNumber)
	}

	now := l.clock.Now()
	for _, r := range l.items[cardNumber] {
		if r.IsDelayed(now) {
			return failf(KindStateViolation, ErrHasDelayedReservation, "card %d", cardNumber)
		}
	}

	idx := l.indexOfLocked(cardNumber, bookCode)
	if idx < 0 {
		return failf(KindNotFound, ErrReservationNotFound, "card %d, code %q", cardNumber, bookCode)
	}
	updated, err := reservation.NewPeriod(l.items[cardNumber][idx].Period.From, dateTo)
	if err != nil {
		return failf(KindStateViolation, err, "card %d, code %q", cardNumber, bookCode)
	}
	l.items[cardNumber][idx].Period = updated
	return nil
}

// UpdateStatus advances the reservation's status. Re-activating or
// confirming pickup (a Reserved or Picked target) is blocked while any
// of the card's reservations is delayed; setting Returned always goes
// through. Re-setting the current status is a no-op success.
func (l *ReservationLedger) UpdateStatus(cardNumber int, bookCode string, status reservation.Status) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.items) == 0 {
		return fail(KindEmptyStore, ErrEmptyStore)
	}
	if _, ok := l.items[cardNumber]; !ok {
		return failf(KindNotFound, ErrCardNotFound, "card %d", cardNumber)
	}
	idx := l.indexOfLocked(cardNumber, bookCode)
	if idx < 0 {
		return failf(KindNotFound, ErrReservationNotFound, "card %d, code %q", cardNumber, bookCode)
	}
	if status == reservation.StatusReserved || status == reservation.StatusPicked {
		now := l.clock.Now()
		for _, r := range l.items[cardNumber] {
			if r.IsDelayed(now) {
				return failf(KindStateViolation, ErrHasDelayedReservation, "card %d", cardNumber)
			}
		}
	}
	l.items[cardNumber][idx].Status = status
	return nil
}

// GetDelayed collects every delayed reservation across all cards. A
// non-nil isBlocked narrows the scan to cards in that blocked state.
func (l *ReservationLedger) GetDelayed(isBlocked *bool) ([]reservation.Reservation, error) {
	l.cards.mu.Lock()
	defer l.cards.mu.Unlock()
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.items) == 0 {
		return nil, fail(KindEmptyStore, ErrEmptyStore)
	}
	now := l.clock.Now()
	result := make([]reservation.Reservation, 0)
	for cardNumber, list := range l.items {
		c, ok := l.cards.getLocked(cardNumber)
		if !ok {
			continue
		}
		if isBlocked != nil && c.IsBlocked != *isBlocked {
			continue
		}
		for _, r := range list {
			if r.IsDelayed(now) {
				result = append(result, r)
			}
		}
	}
	return result, nil
}

// ContainsCard reports whether the ledger holds any reservation for the
// card, regardless of status.
func (l *ReservationLedger) ContainsCard(cardNumber int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.containsCardLocked(cardNumber)
}

// ContainsBook scans every card's list for a reservation of the copy.
func (l *ReservationLedger) ContainsBook(bookCode string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.bookReservedLocked(bookCode)
}

// GetAll returns a deep copy of the whole ledger. Mutating the result
// never affects the store.
func (l *ReservationLedger) GetAll() (map[int][]reservation.Reservation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.items) == 0 {
		return nil, fail(KindEmptyStore, ErrEmptyStore)
	}
	return clone(l.items), nil
}

func (l *ReservationLedger) bookReservedLocked(bookCode string) bool {
	for _, list := range l.items {
		for _, r := range list {
			if strings.EqualFold(r.BookCode, bookCode) {
				return true
			}
		}
	}
	return false
}

func (l *ReservationLedger) indexOfLocked(cardNumber int, bookCode string) int {
	for i, r := range l.items[cardNumber] {
		if strings.EqualFold(r.BookCode, bookCode) {
			return i
		}
	}
	return -1
}

func (l *ReservationLedger) containsCardLocked(cardNumber int) bool {
	_, ok := l.items[cardNumber]
	return ok
}
