package request

import (
	"time"

	"library-lending/internal/domain/reservation"
)

// CreateReservationRequest opens a loan for a book copy. With no
// explicit period the loan starts today and spans the configured
// default number of days.
type CreateReservationRequest struct {
	BookCode string     `json:"book_code" binding:"required"`
	DateFrom *time.Time `json:"date_from,omitempty"`
	DateTo   *time.Time `json:"date_to,omitempty"`
}

func (r CreateReservationRequest) ToDomain(now time.Time, loanDays int) (reservation.Reservation, error) {
	from := now
	if r.DateFrom != nil {
		from = *r.DateFrom
	}

	var (
		period reservation.Period
		err    error
	)
	if r.DateTo != nil {
		period, err = reservation.NewPeriod(from, *r.DateTo)
		if err != nil {
			return reservation.Reservation{}, err
		}
	} else {
		period = reservation.PeriodFrom(from, loanDays)
	}

	return reservation.New(r.BookCode, period), nil
}

type UpdatePeriodRequest struct {
	DateTo time.Time `json:"date_to" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
