package api

import (
	"net/http"
	"strconv"

	reqdto "library-lending/internal/handler/dto/request"
	resdto "library-lending/internal/handler/dto/response"
	"library-lending/internal/registry"

	"github.com/gin-gonic/gin"
)

type CardHandler struct {
	cards  *registry.CardRegistry
	ledger *registry.ReservationLedger
	links  *registry.CardPatronLink
}

func NewCardHandler(cards *registry.CardRegistry, ledger *registry.ReservationLedger, links *registry.CardPatronLink) *CardHandler {
	return &CardHandler{cards: cards, ledger: ledger, links: links}
}

// @Summary Register library card
// @Tags cards
// @Accept json
// @Produce json
// @Param request body reqdto.InsertCardRequest true "Card"
// @Success 201 {object} resdto.CardResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /cards [post]
func (h *CardHandler) Insert(c *gin.Context) {
	var req reqdto.InsertCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	crd := req.ToDomain()
	if err := h.cards.Insert(crd); err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCard(crd))
}

// @Summary List library cards
// @Tags cards
// @Produce json
// @Success 200 {array} resdto.CardResponse
// @Router /cards [get]
func (h *CardHandler) GetAll(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromCards(h.cards.GetAll()))
}

// @Summary Get library card
// @Tags cards
// @Produce json
// @Param number path int true "Card number"
// @Success 200 {object} resdto.CardResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /cards/{number} [get]
func (h *CardHandler) Get(c *gin.Context) {
	number, ok := paramInt(c, "number")
	if !ok {
		return
	}
	crd, err := h.cards.Get(number)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCard(crd))
}

// @Summary Filter cards by blocked state
// @Tags cards
// @Produce json
// @Param blocked query bool true "Blocked state"
// @Success 200 {array} resdto.CardResponse
// @Success 204
// @Failure 400 {object} httperr.Response
// @Router /cards/by-blocked [get]
func (h *CardHandler) GetIsBlocked(c *gin.Context) {
	blocked, err := strconv.ParseBool(c.Query("blocked"))
	if err != nil {
		badRequest(c, err, "Blocked must be a boolean")
		return
	}
	cards, err := h.cards.GetIsBlocked(blocked)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCards(cards))
}

// @Summary Count library cards
// @Tags cards
// @Produce json
// @Success 200 {object} resdto.CardCountResponse
// @Router /cards/count [get]
func (h *CardHandler) Count(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.CardCountResponse{Count: h.cards.Count()})
}

// @Summary Block or unblock card
// @Tags cards
// @Accept json
// @Param number path int true "Card number"
// @Param request body reqdto.UpdateBlockedRequest true "New blocked state"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /cards/{number}/blocked [patch]
func (h *CardHandler) UpdateIsBlocked(c *gin.Context) {
	number, ok := paramInt(c, "number")
	if !ok {
		return
	}
	var req reqdto.UpdateBlockedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}
	if err := h.cards.UpdateIsBlocked(number, *req.Blocked); err != nil {
		respondEngineError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete refuses while the card still has reservations on the ledger
// or a patron linked to it.
//
// @Summary Delete library card
// @Tags cards
// @Param number path int true "Card number"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /cards/{number} [delete]
func (h *CardHandler) Delete(c *gin.Context) {
	number, ok := paramInt(c, "number")
	if !ok {
		return
	}
	if err := h.cards.Delete(number, h.ledger, h.links); err != nil {
		respondEngineError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// paramInt parses an integer path param, aborting with 400 on garbage.
func paramInt(c *gin.Context, key string) (int, bool) {
	value, err := strconv.Atoi(c.Param(key))
	if err != nil {
		badRequest(c, err, "Path parameter "+key+" must be an integer")
		return 0, false
	}
	return value, true
}
