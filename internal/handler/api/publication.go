package api

import (
	"net/http"

	"library-lending/internal/domain/catalog"
	reqdto "library-lending/internal/handler/dto/request"
	resdto "library-lending/internal/handler/dto/response"
	"library-lending/internal/registry"

	"github.com/gin-gonic/gin"
)

type PublicationHandler struct {
	catalog *registry.PublicationCatalog
}

func NewPublicationHandler(cat *registry.PublicationCatalog) *PublicationHandler {
	return &PublicationHandler{catalog: cat}
}

// @Summary Register publication
// @Tags publications
// @Accept json
// @Produce json
// @Param request body reqdto.InsertPublicationRequest true "Publication"
// @Success 201 {object} resdto.PublicationResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /publications [post]
func (h *PublicationHandler) Insert(c *gin.Context) {
	var req reqdto.InsertPublicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	pub := req.ToDomain()
	if err := h.catalog.Insert(pub); err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPublication(pub))
}

// @Summary List publications
// @Tags publications
// @Produce json
// @Success 200 {array} resdto.PublicationResponse
// @Success 204
// @Router /publications [get]
func (h *PublicationHandler) GetAll(c *gin.Context) {
	pubs, err := h.catalog.GetAll()
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPublications(pubs))
}

// @Summary Get publication
// @Tags publications
// @Produce json
// @Param isbn path string true "ISBN"
// @Success 200 {object} resdto.PublicationResponse
// @Failure 404 {object} httperr.Response
// @Router /publications/{isbn} [get]
func (h *PublicationHandler) Get(c *gin.Context) {
	pub, err := h.catalog.Get(c.Param("isbn"))
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPublication(pub))
}

// GetByTitle filters on the title query param. An absent param selects
// publications whose title was never set, not every publication.
//
// @Summary Find publications by title
// @Tags publications
// @Produce json
// @Param title query string false "Title; omit to find publications without one"
// @Success 200 {array} resdto.PublicationResponse
// @Success 204
// @Router /publications/by-title [get]
func (h *PublicationHandler) GetByTitle(c *gin.Context) {
	pubs, err := h.catalog.GetByTitle(optionalQuery(c, "title"))
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPublications(pubs))
}

// @Summary Find publications by author
// @Tags publications
// @Produce json
// @Param author query string false "Author; omit to find publications without one"
// @Success 200 {array} resdto.PublicationResponse
// @Success 204
// @Router /publications/by-author [get]
func (h *PublicationHandler) GetByAuthor(c *gin.Context) {
	pubs, err := h.catalog.GetByAuthor(optionalQuery(c, "author"))
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPublications(pubs))
}

// @Summary Find publications by genre
// @Tags publications
// @Produce json
// @Param genre query string false "Genre; omit to find publications without one"
// @Success 200 {array} resdto.PublicationResponse
// @Success 204
// @Router /publications/by-genre [get]
func (h *PublicationHandler) GetByGenre(c *gin.Context) {
	var genre *catalog.Genre
	if raw, ok := c.GetQuery("genre"); ok {
		g := catalog.Genre(raw)
		genre = &g
	}
	pubs, err := h.catalog.GetByGenre(genre)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPublications(pubs))
}

// @Summary Update publication title
// @Tags publications
// @Accept json
// @Param isbn path string true "ISBN"
// @Param request body reqdto.UpdateTitleRequest true "New title (null clears it)"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /publications/{isbn}/title [patch]
func (h *PublicationHandler) UpdateTitle(c *gin.Context) {
	var req reqdto.UpdateTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}
	if err := h.catalog.UpdateTitle(c.Param("isbn"), req.Title); err != nil {
		respondEngineError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Update publication authors
// @Tags publications
// @Accept json
// @Param isbn path string true "ISBN"
// @Param request body reqdto.UpdateAuthorsRequest true "New author list (null clears it)"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /publications/{isbn}/authors [patch]
func (h *PublicationHandler) UpdateAuthors(c *gin.Context) {
	var req reqdto.UpdateAuthorsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}
	if err := h.catalog.UpdateAuthors(c.Param("isbn"), req.Authors); err != nil {
		respondEngineError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Update publication genres
// @Tags publications
// @Accept json
// @Param isbn path string true "ISBN"
// @Param request body reqdto.UpdateGenresRequest true "New genre list (null clears it)"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /publications/{isbn}/genres [patch]
func (h *PublicationHandler) UpdateGenres(c *gin.Context) {
	var req reqdto.UpdateGenresRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}
	if err := h.catalog.UpdateGenres(c.Param("isbn"), reqdto.ToGenres(req.Genres)); err != nil {
		respondEngineError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete publication
// @Tags publications
// @Param isbn path string true "ISBN"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /publications/{isbn} [delete]
func (h *PublicationHandler) Delete(c *gin.Context) {
	if err := h.catalog.Delete(c.Param("isbn")); err != nil {
		respondEngineError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// optionalQuery distinguishes an absent query param (nil, meaning "the
// field is unset") from an empty one.
func optionalQuery(c *gin.Context, key string) *string {
	if raw, ok := c.GetQuery(key); ok {
		return &raw
	}
	return nil
}
