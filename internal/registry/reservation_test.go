//go:build unit

package registry_test

import (
	"fmt"
	"testing"
	"time"

	"library-lending/internal/domain/reservation"
	"library-lending/internal/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultReservation(e *engine, bookCode string) reservation.Reservation {
	return reservation.New(bookCode, reservation.PeriodFrom(e.clock.Now(), reservation.DefaultLoanDays))
}

func TestReservationLedgerInsert(t *testing.T) {
	t.Run("happy path starts in reserved status", func(t *testing.T) {
		e := newEngine()
		e.mustShelvedBook(t, "LB-001", "978-1", 3)
		e.mustLinkedCard(t, 100, "P-1")

		require.NoError(t, e.ledger.Insert(100, defaultReservation(e, "LB-001")))

		all, err := e.ledger.GetAll()
		require.NoError(t, err)
		require.Len(t, all[100], 1)
		assert.Equal(t, reservation.StatusReserved, all[100][0].Status)
		assert.True(t, e.ledger.ContainsCard(100))
		assert.True(t, e.ledger.ContainsBook("LB-001"))
	})

	t.Run("missing book copy", func(t *testing.T) {
		e := newEngine()
		e.mustLinkedCard(t, 100, "P-1")

		err := e.ledger.Insert(100, defaultReservation(e, "LB-404"))
		requireKind(t, err, registry.KindNotFound, registry.ErrBookNotFound)
	})

	t.Run("uncatalogued copy cannot be reserved", func(t *testing.T) {
		e := newEngine()
		e.mustPublication(t, "978-1", nil, nil)
		e.mustBook(t, "LB-001", "978-1", nil)
		e.mustLinkedCard(t, 100, "P-1")

		err := e.ledger.Insert(100, defaultReservation(e, "LB-001"))
		requireKind(t, err, registry.KindStateViolation, registry.ErrBookNotReservable)
		assert.False(t, e.ledger.ContainsCard(100))
	})

	t.Run("missing card", func(t *testing.T) {
		e := newEngine()
		e.mustShelvedBook(t, "LB-001", "978-1", 3)

		err := e.ledger.Insert(100, defaultReservation(e, "LB-001"))
		requireKind(t, err, registry.KindNotFound, registry.ErrCardNotFound)
	})

	t.Run("blocked card", func(t *testing.T) {
		e := newEngine()
		e.mustShelvedBook(t, "LB-001", "978-1", 3)
		e.mustLinkedCard(t, 100, "P-1")
		require.NoError(t, e.cards.UpdateIsBlocked(100, true))

		err := e.ledger.Insert(100, defaultReservation(e, "LB-001"))
		requireKind(t, err, registry.KindStateViolation, registry.ErrCardBlocked)
	})

	t.Run("a copy holds at most one reservation across all cards", func(t *testing.T) {
		e := newEngine()
		e.mustShelvedBook(t, "LB-001", "978-1", 3)
		e.mustLinkedCard(t, 100, "P-1")
		e.mustLinkedCard(t, 200, "P-2")
		e.mustReserve(t, 100, "LB-001")

		err := e.ledger.Insert(200, defaultReservation(e, "LB-001"))
		requireKind(t, err, registry.KindDuplicateKey, registry.ErrBookAlreadyReserved)
	})

	t.Run("book codes compare case-insensitively in ledger scans", func(t *testing.T) {
		e := newEngine()
		e.mustShelvedBook(t, "LB-001", "978-1", 3)
		e.mustBook(t, "lb-001", "978-1", intPtr(4))
		e.mustLinkedCard(t, 100, "P-1")
		e.mustReserve(t, 100, "LB-001")

		err := e.ledger.Insert(100, defaultReservation(e, "lb-001"))
		requireKind(t, err, registry.KindDuplicateKey, registry.ErrBookAlreadyReserved)
		assert.True(t, e.ledger.ContainsBook("lB-001"))
	})

	t.Run("a returned reservation still pins the copy", func(t *testing.T) {
		e := newEngine()
		e.mustShelvedBook(t, "LB-001", "978-1", 3)
		e.mustLinkedCard(t, 100, "P-1")
		e.mustReserve(t, 100, "LB-001")
		require.NoError(t, e.ledger.UpdateStatus(100, "LB-001", reservation.StatusReturned))

		err := e.ledger.Insert(100, defaultReservation(e, "LB-001"))
		requireKind(t, err, registry.KindDuplicateKey, registry.ErrBookAlreadyReserved)
	})

	t.Run("unlinked card cannot reserve", func(t *testing.T) {
		e := newEngine()
		e.mustShelvedBook(t, "LB-001", "978-1", 3)
		e.mustCard(t, 100, false)

		err := e.ledger.Insert(100, defaultReservation(e, "LB-001"))
		requireKind(t, err, registry.KindStateViolation, registry.ErrCardNotLinked)
	})
}

func TestReservationLedgerQuota(t *testing.T) {
	seedFive := func(t *testing.T) *engine {
		e := newEngine()
		e.mustLinkedCard(t, 100, "P-1")
		e.mustPublication(t, "978-1", nil, nil)
		for i := 1; i <= 6; i++ {
			e.mustBook(t, fmt.Sprintf("LB-%03d", i), "978-1", intPtr(i))
		}
		for i := 1; i <= 5; i++ {
			e.mustReserve(t, 100, fmt.Sprintf("LB-%03d", i))
		}
		return e
	}

	t.Run("the sixth active reservation is refused", func(t *testing.T) {
		e := seedFive(t)
		err := e.ledger.Insert(100, defaultReservation(e, "LB-006"))
		requireKind(t, err, registry.KindStateViolation, registry.ErrQuotaExceeded)

		all, getErr := e.ledger.GetAll()
		require.NoError(t, getErr)
		assert.Len(t, all[100], 5)
	})

	t.Run("returned reservations do not count", func(t *testing.T) {
		e := seedFive(t)
		require.NoError(t, e.ledger.UpdateStatus(100, "LB-001", reservation.StatusReturned))
		require.NoError(t, e.ledger.Insert(100, defaultReservation(e, "LB-006")))
	})

	t.Run("picked reservations still count", func(t *testing.T) {
		e := seedFive(t)
		require.NoError(t, e.ledger.UpdateStatus(100, "LB-001", reservation.StatusPicked))
		err := e.ledger.Insert(100, defaultReservation(e, "LB-006"))
		requireKind(t, err, registry.KindStateViolation, registry.ErrQuotaExceeded)
	})
}

func TestReservationLedgerDelayGate(t *testing.T) {
	// One reservation taken at baseTime, clock then moved past its end.
	seedDelayed := func(t *testing.T) *engine {
		e := newEngine()
		e.mustLinkedCard(t, 100, "P-1")
		e.mustPublication(t, "978-1", nil, nil)
		e.mustBook(t, "LB-001", "978-1", intPtr(1))
		e.mustBook(t, "LB-002", "978-1", intPtr(2))
		e.mustReserve(t, 100, "LB-001")
		e.clock.Advance((reservation.DefaultLoanDays + 1) * 24 * time.Hour)
		return e
	}

	t.Run("insert is blocked while any loan is overdue", func(t *testing.T) {
		e := seedDelayed(t)
		err := e.ledger.Insert(100, defaultReservation(e, "LB-002"))
		requireKind(t, err, registry.KindStateViolation, registry.ErrHasDelayedReservation)
	})

	t.Run("extending any loan is blocked too", func(t *testing.T) {
		e := seedDelayed(t)
		err := e.ledger.UpdatePeriod(100, "LB-001", e.clock.Now().AddDate(0, 0, 7))
		requireKind(t, err, registry.KindStateViolation, registry.ErrHasDelayedReservation)
	})

	t.Run("confirming pickup is blocked, returning is not", func(t *testing.T) {
		e := seedDelayed(t)
		err := e.ledger.UpdateStatus(100, "LB-001", reservation.StatusPicked)
		requireKind(t, err, registry.KindStateViolation, registry.ErrHasDelayedReservation)

		require.NoError(t, e.ledger.UpdateStatus(100, "LB-001", reservation.StatusReturned))
	})

	t.Run("returning the overdue copy reopens the card", func(t *testing.T) {
		e := seedDelayed(t)
		require.NoError(t, e.ledger.UpdateStatus(100, "LB-001", reservation.StatusReturned))
		require.NoError(t, e.ledger.Insert(100, defaultReservation(e, "LB-002")))
	})

	t.Run("the gate opens exactly one day after the end date", func(t *testing.T) {
		e := newEngine()
		e.mustShelvedBook(t, "LB-001", "978-1", 1)
		e.mustBook(t, "LB-002", "978-1", intPtr(2))
		e.mustLinkedCard(t, 100, "P-1")
		e.mustReserve(t, 100, "LB-001")

		// Still the last day of the loan: not delayed.
		e.clock.Advance(reservation.DefaultLoanDays * 24 * time.Hour)
		require.NoError(t, e.ledger.Insert(100, defaultReservation(e, "LB-002")))
	})
}

func TestReservationLedgerUpdatePeriod(t *testing.T) {
	seed := func(t *testing.T) *engine {
		e := newEngine()
		e.mustShelvedBook(t, "LB-001", "978-1", 1)
		e.mustLinkedCard(t, 100, "P-1")
		e.mustReserve(t, 100, "LB-001")
		return e
	}

	t.Run("moves the end date", func(t *testing.T) {
		e := seed(t)
		newTo := baseTime.AddDate(0, 0, 10)
		require.NoError(t, e.ledger.UpdatePeriod(100, "LB-001", newTo))

		all, err := e.ledger.GetAll()
		require.NoError(t, err)
		assert.Equal(t, reservation.DateOf(newTo), all[100][0].Period.To)
	})

	t.Run("end before start is a state violation", func(t *testing.T) {
		e := seed(t)
		err := e.ledger.UpdatePeriod(100, "LB-001", baseTime.AddDate(0, 0, -1))
		requireKind(t, err, registry.KindStateViolation, reservation.ErrInvalidPeriod)
	})

	t.Run("empty ledger", func(t *testing.T) {
		e := newEngine()
		err := e.ledger.UpdatePeriod(100, "LB-001", baseTime)
		requireKind(t, err, registry.KindEmptyStore, registry.ErrEmptyStore)
	})

	t.Run("unlinked card", func(t *testing.T) {
		e := seed(t)
		require.NoError(t, e.links.Delete(100))
		err := e.ledger.UpdatePeriod(100, "LB-001", baseTime.AddDate(0, 0, 10))
		requireKind(t, err, registry.KindStateViolation, registry.ErrCardNotLinked)
	})

	t.Run("missing reservation", func(t *testing.T) {
		e := seed(t)
		err := e.ledger.UpdatePeriod(100, "LB-404", baseTime.AddDate(0, 0, 10))
		requireKind(t, err, registry.KindNotFound, registry.ErrReservationNotFound)
	})
}

func TestReservationLedgerUpdateStatus(t *testing.T) {
	seed := func(t *testing.T) *engine {
		e := newEngine()
		e.mustShelvedBook(t, "LB-001", "978-1", 1)
		e.mustLinkedCard(t, 100, "P-1")
		e.mustReserve(t, 100, "LB-001")
		return e
	}

	t.Run("walks the whole lifecycle", func(t *testing.T) {
		e := seed(t)
		require.NoError(t, e.ledger.UpdateStatus(100, "LB-001", reservation.StatusPicked))
		require.NoError(t, e.ledger.UpdateStatus(100, "LB-001", reservation.StatusReturned))

		all, err := e.ledger.GetAll()
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusReturned, all[100][0].Status)
	})

	t.Run("re-setting the current status is a no-op success", func(t *testing.T) {
		e := seed(t)
		require.NoError(t, e.ledger.UpdateStatus(100, "LB-001", reservation.StatusReturned))
		require.NoError(t, e.ledger.UpdateStatus(100, "LB-001", reservation.StatusReturned))
	})

	t.Run("matches the book code case-insensitively", func(t *testing.T) {
		e := seed(t)
		require.NoError(t, e.ledger.UpdateStatus(100, "lb-001", reservation.StatusPicked))
	})

	t.Run("empty ledger", func(t *testing.T) {
		e := newEngine()
		err := e.ledger.UpdateStatus(100, "LB-001", reservation.StatusPicked)
		requireKind(t, err, registry.KindEmptyStore, registry.ErrEmptyStore)
	})

	t.Run("card with no ledger entry", func(t *testing.T) {
		e := seed(t)
		err := e.ledger.UpdateStatus(200, "LB-001", reservation.StatusPicked)
		requireKind(t, err, registry.KindNotFound, registry.ErrCardNotFound)
	})

	t.Run("missing reservation under the card", func(t *testing.T) {
		e := seed(t)
		err := e.ledger.UpdateStatus(100, "LB-404", reservation.StatusPicked)
		requireKind(t, err, registry.KindNotFound, registry.ErrReservationNotFound)
	})
}

func TestReservationLedgerGetDelayed(t *testing.T) {
	// Card 100 (open) and card 200 (later blocked) each hold one loan
	// that goes overdue when the clock advances.
	seed := func(t *testing.T) *engine {
		e := newEngine()
		e.mustPublication(t, "978-1", nil, nil)
		e.mustBook(t, "LB-001", "978-1", intPtr(1))
		e.mustBook(t, "LB-002", "978-1", intPtr(2))
		e.mustBook(t, "LB-003", "978-1", intPtr(3))
		e.mustLinkedCard(t, 100, "P-1")
		e.mustLinkedCard(t, 200, "P-2")
		e.mustReserve(t, 100, "LB-001")
		e.mustReserve(t, 200, "LB-002")
		e.clock.Advance((reservation.DefaultLoanDays + 1) * 24 * time.Hour)
		e.mustCard(t, 300, false) // never reserves
		require.NoError(t, e.cards.UpdateIsBlocked(200, true))
		return e
	}

	t.Run("nil filter collects every delayed reservation", func(t *testing.T) {
		e := seed(t)
		delayed, err := e.ledger.GetDelayed(nil)
		require.NoError(t, err)
		assert.Len(t, delayed, 2)
	})

	t.Run("filter by blocked state", func(t *testing.T) {
		e := seed(t)
		delayed, err := e.ledger.GetDelayed(boolPtr(true))
		require.NoError(t, err)
		require.Len(t, delayed, 1)
		assert.Equal(t, "LB-002", delayed[0].BookCode)
	})

	t.Run("returned reservations are never delayed", func(t *testing.T) {
		e := seed(t)
		require.NoError(t, e.ledger.UpdateStatus(100, "LB-001", reservation.StatusReturned))

		delayed, err := e.ledger.GetDelayed(boolPtr(false))
		require.NoError(t, err)
		assert.Empty(t, delayed)
	})

	t.Run("empty ledger", func(t *testing.T) {
		e := newEngine()
		_, err := e.ledger.GetDelayed(nil)
		requireKind(t, err, registry.KindEmptyStore, registry.ErrEmptyStore)
	})
}

func TestReservationLedgerGetAll(t *testing.T) {
	t.Run("returns a deep copy", func(t *testing.T) {
		e := newEngine()
		e.mustShelvedBook(t, "LB-001", "978-1", 1)
		e.mustLinkedCard(t, 100, "P-1")
		e.mustReserve(t, 100, "LB-001")

		all, err := e.ledger.GetAll()
		require.NoError(t, err)
		all[100][0].Status = reservation.StatusReturned
		delete(all, 100)

		again, err := e.ledger.GetAll()
		require.NoError(t, err)
		require.Len(t, again[100], 1)
		assert.Equal(t, reservation.StatusReserved, again[100][0].Status)
	})

	t.Run("empty ledger", func(t *testing.T) {
		e := newEngine()
		_, err := e.ledger.GetAll()
		requireKind(t, err, registry.KindEmptyStore, registry.ErrEmptyStore)
	})
}
