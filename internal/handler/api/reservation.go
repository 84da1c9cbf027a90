package api

import (
	"net/http"
	"strconv"

	"library-lending/internal/domain/reservation"
	reqdto "library-lending/internal/handler/dto/request"
	resdto "library-lending/internal/handler/dto/response"
	"library-lending/internal/pkg/clock"
	"library-lending/internal/pkg/config"
	"library-lending/internal/registry"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	ledger *registry.ReservationLedger
	clock  clock.Clock
	cfg    config.LendingConfig
}

func NewReservationHandler(ledger *registry.ReservationLedger, clk clock.Clock, cfg config.LendingConfig) *ReservationHandler {
	return &ReservationHandler{ledger: ledger, clock: clk, cfg: cfg}
}

// Insert opens a loan on a card. With no period in the payload the
// loan starts today and runs for the configured number of days.
//
// @Summary Reserve book copy
// @Tags reservations
// @Accept json
// @Produce json
// @Param cardNumber path int true "Card number"
// @Param request body reqdto.CreateReservationRequest true "Reservation"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{cardNumber} [post]
func (h *ReservationHandler) Insert(c *gin.Context) {
	number, ok := paramInt(c, "cardNumber")
	if !ok {
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	res, err := req.ToDomain(h.clock.Now(), h.cfg.LoanPeriodDays)
	if err != nil {
		badRequest(c, err, "Invalid reservation period")
		return
	}
	if err := h.ledger.Insert(number, res); err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservation(res))
}

// @Summary List reservations per card
// @Tags reservations
// @Produce json
// @Success 200 {object} map[string][]resdto.ReservationResponse
// @Success 204
// @Router /reservations [get]
func (h *ReservationHandler) GetAll(c *gin.Context) {
	ledger, err := h.ledger.GetAll()
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLedger(ledger))
}

// GetDelayed lists overdue reservations, optionally narrowed to cards
// in a given blocked state.
//
// @Summary List delayed reservations
// @Tags reservations
// @Produce json
// @Param blocked query bool false "Filter by card blocked state"
// @Success 200 {array} resdto.ReservationResponse
// @Success 204
// @Failure 400 {object} httperr.Response
// @Router /reservations/delayed [get]
func (h *ReservationHandler) GetDelayed(c *gin.Context) {
	var isBlocked *bool
	if raw, ok := c.GetQuery("blocked"); ok {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			badRequest(c, err, "Blocked must be a boolean")
			return
		}
		isBlocked = &value
	}
	delayed, err := h.ledger.GetDelayed(isBlocked)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservations(delayed))
}

// @Summary Extend reservation
// @Tags reservations
// @Accept json
// @Param cardNumber path int true "Card number"
// @Param bookCode path string true "Book copy code"
// @Param request body reqdto.UpdatePeriodRequest true "New end date"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{cardNumber}/{bookCode}/period [patch]
func (h *ReservationHandler) UpdatePeriod(c *gin.Context) {
	number, ok := paramInt(c, "cardNumber")
	if !ok {
		return
	}
	var req reqdto.UpdatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}
	if err := h.ledger.UpdatePeriod(number, c.Param("bookCode"), req.DateTo); err != nil {
		respondEngineError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Change reservation status
// @Tags reservations
// @Accept json
// @Param cardNumber path int true "Card number"
// @Param bookCode path string true "Book copy code"
// @Param request body reqdto.UpdateStatusRequest true "New status (reserved, picked or returned)"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{cardNumber}/{bookCode}/status [patch]
func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	number, ok := paramInt(c, "cardNumber")
	if !ok {
		return
	}
	var req reqdto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}
	status, err := reservation.ParseStatus(req.Status)
	if err != nil {
		badRequest(c, err, "Unknown reservation status")
		return
	}
	if err := h.ledger.UpdateStatus(number, c.Param("bookCode"), status); err != nil {
		respondEngineError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
