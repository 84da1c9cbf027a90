package api

import (
	"net/http"

	reqdto "library-lending/internal/handler/dto/request"
	resdto "library-lending/internal/handler/dto/response"
	"library-lending/internal/registry"

	"github.com/gin-gonic/gin"
)

type PatronHandler struct {
	patrons *registry.PatronRegistry
}

func NewPatronHandler(patrons *registry.PatronRegistry) *PatronHandler {
	return &PatronHandler{patrons: patrons}
}

// @Summary Register patron
// @Tags patrons
// @Accept json
// @Produce json
// @Param request body reqdto.InsertPatronRequest true "Patron"
// @Success 201 {object} resdto.PatronResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /patrons [post]
func (h *PatronHandler) Insert(c *gin.Context) {
	var req reqdto.InsertPatronRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	pat := req.ToDomain()
	if err := h.patrons.Insert(pat); err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPatron(pat))
}

// @Summary List patrons
// @Tags patrons
// @Produce json
// @Success 200 {array} resdto.PatronResponse
// @Success 204
// @Router /patrons [get]
func (h *PatronHandler) GetAll(c *gin.Context) {
	patrons, err := h.patrons.GetAll()
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPatrons(patrons))
}

// @Summary Get patron
// @Tags patrons
// @Produce json
// @Param id path string true "Patron ID"
// @Success 200 {object} resdto.PatronResponse
// @Failure 404 {object} httperr.Response
// @Router /patrons/{id} [get]
func (h *PatronHandler) Get(c *gin.Context) {
	pat, err := h.patrons.Get(c.Param("id"))
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPatron(pat))
}

// @Summary Update patron address
// @Tags patrons
// @Accept json
// @Param id path string true "Patron ID"
// @Param request body reqdto.UpdateAddressRequest true "New address"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /patrons/{id}/address [patch]
func (h *PatronHandler) UpdateAddress(c *gin.Context) {
	var req reqdto.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}
	if err := h.patrons.UpdateAddress(c.Param("id"), req.ToDomain()); err != nil {
		respondEngineError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete all patrons
// @Tags patrons
// @Success 204
// @Router /patrons [delete]
func (h *PatronHandler) DeleteAll(c *gin.Context) {
	h.patrons.DeleteAll()
	c.Status(http.StatusNoContent)
}
