package response

import (
	"strconv"
	"time"

	"library-lending/internal/domain/reservation"
)

type ReservationResponse struct {
	BookCode string    `json:"book_code"`
	DateFrom time.Time `json:"date_from"`
	DateTo   time.Time `json:"date_to"`
	Status   string    `json:"status"`
}

func FromReservation(r reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		BookCode: r.BookCode,
		DateFrom: r.Period.From,
		DateTo:   r.Period.To,
		Status:   r.Status.String(),
	}
}

func FromReservations(list []reservation.Reservation) []ReservationResponse {
	result := make([]ReservationResponse, len(list))
	for i, r := range list {
		result[i] = FromReservation(r)
	}
	return result
}

// FromLedger keys the payload by card number; JSON object keys must be
// strings.
func FromLedger(ledger map[int][]reservation.Reservation) map[string][]ReservationResponse {
	result := make(map[string][]ReservationResponse, len(ledger))
	for cardNumber, list := range ledger {
		result[strconv.Itoa(cardNumber)] = FromReservations(list)
	}
	return result
}
