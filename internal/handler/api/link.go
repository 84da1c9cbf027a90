package api

import (
	"net/http"

	reqdto "library-lending/internal/handler/dto/request"
	resdto "library-lending/internal/handler/dto/response"
	"library-lending/internal/registry"

	"github.com/gin-gonic/gin"
)

type LinkHandler struct {
	links *registry.CardPatronLink
}

func NewLinkHandler(links *registry.CardPatronLink) *LinkHandler {
	return &LinkHandler{links: links}
}

// @Summary Link card to patron
// @Tags links
// @Accept json
// @Produce json
// @Param request body reqdto.InsertLinkRequest true "Link"
// @Success 201 {object} resdto.LinkResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /links [post]
func (h *LinkHandler) Insert(c *gin.Context) {
	var req reqdto.InsertLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}
	if err := h.links.Insert(*req.CardNumber, req.PatronID); err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.LinkResponse{CardNumber: *req.CardNumber, PatronID: req.PatronID})
}

// @Summary List card-patron links
// @Tags links
// @Produce json
// @Success 200 {array} resdto.LinkResponse
// @Router /links [get]
func (h *LinkHandler) GetAll(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromLinks(h.links.GetAll()))
}

// @Summary Unlink card
// @Tags links
// @Param cardNumber path int true "Card number"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /links/{cardNumber} [delete]
func (h *LinkHandler) Delete(c *gin.Context) {
	number, ok := paramInt(c, "cardNumber")
	if !ok {
		return
	}
	if err := h.links.Delete(number); err != nil {
		respondEngineError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
