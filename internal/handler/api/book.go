package api

import (
	"net/http"
	"strconv"

	"library-lending/internal/domain/book"
	"library-lending/internal/domain/catalog"
	reqdto "library-lending/internal/handler/dto/request"
	resdto "library-lending/internal/handler/dto/response"
	"library-lending/internal/registry"

	"github.com/gin-gonic/gin"
)

type BookHandler struct {
	books *registry.BookRegistry
}

func NewBookHandler(books *registry.BookRegistry) *BookHandler {
	return &BookHandler{books: books}
}

// @Summary Register book copy
// @Tags books
// @Accept json
// @Produce json
// @Param request body reqdto.InsertBookCopyRequest true "Book copy"
// @Success 201 {object} resdto.BookCopyResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /books [post]
func (h *BookHandler) Insert(c *gin.Context) {
	var req reqdto.InsertBookCopyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	copy := req.ToDomain()
	if err := h.books.Insert(copy); err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookCopy(copy))
}

// @Summary List book copies
// @Tags books
// @Produce json
// @Success 200 {array} resdto.BookCopyResponse
// @Success 204
// @Router /books [get]
func (h *BookHandler) GetAll(c *gin.Context) {
	copies, err := h.books.GetAll()
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookCopies(copies))
}

// @Summary Get book copy
// @Tags books
// @Produce json
// @Param code path string true "Copy code"
// @Success 200 {object} resdto.BookCopyResponse
// @Failure 404 {object} httperr.Response
// @Router /books/{code} [get]
func (h *BookHandler) GetByCode(c *gin.Context) {
	copy, err := h.books.GetByCode(c.Param("code"))
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookCopy(copy))
}

// @Summary Find copies by shelf position
// @Tags books
// @Produce json
// @Param position query int false "Position; omit to find uncatalogued copies"
// @Success 200 {array} resdto.BookCopyResponse
// @Success 204
// @Failure 400 {object} httperr.Response
// @Router /books/by-position [get]
func (h *BookHandler) GetByPosition(c *gin.Context) {
	var position *int
	if raw, ok := c.GetQuery("position"); ok {
		value, err := strconv.Atoi(raw)
		if err != nil {
			badRequest(c, err, "Position must be an integer")
			return
		}
		position = &value
	}
	copies, err := h.books.GetByPosition(position)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookCopies(copies))
}

// @Summary Find copies by publication title
// @Tags books
// @Produce json
// @Param title query string false "Title; omit to match untitled publications"
// @Success 200 {array} resdto.BookCopyResponse
// @Success 204
// @Router /books/by-title [get]
func (h *BookHandler) GetByTitle(c *gin.Context) {
	copies, err := h.books.GetByTitle(optionalQuery(c, "title"))
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookCopies(copies))
}

// @Summary Find copies by author
// @Tags books
// @Produce json
// @Param author query string false "Author; omit to match authorless publications"
// @Success 200 {array} resdto.BookCopyResponse
// @Success 204
// @Router /books/by-author [get]
func (h *BookHandler) GetByAuthor(c *gin.Context) {
	copies, err := h.books.GetByAuthor(optionalQuery(c, "author"))
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookCopies(copies))
}

// @Summary Find copies by genre
// @Tags books
// @Produce json
// @Param genre query string false "Genre; omit to match genreless publications"
// @Success 200 {array} resdto.BookCopyResponse
// @Success 204
// @Router /books/by-genre [get]
func (h *BookHandler) GetByGenre(c *gin.Context) {
	var genre *catalog.Genre
	if raw, ok := c.GetQuery("genre"); ok {
		g := catalog.Genre(raw)
		genre = &g
	}
	copies, err := h.books.GetByGenre(genre)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookCopies(copies))
}

// Search runs the combined lookup. The first provided field of the
// payload decides the search mode; the rest are ignored.
//
// @Summary Combined copy search
// @Tags books
// @Accept json
// @Produce json
// @Param request body reqdto.SearchBooksRequest true "Search definition"
// @Success 200 {array} resdto.BookCopyResponse
// @Success 204
// @Failure 400 {object} httperr.Response
// @Router /books/search [post]
func (h *BookHandler) Search(c *gin.Context) {
	var req reqdto.SearchBooksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}
	copies, err := h.books.GetByDefinition(req.ToSpec())
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookCopies(copies))
}

// @Summary Move book copy
// @Tags books
// @Accept json
// @Param code path string true "Copy code"
// @Param request body reqdto.UpdatePositionRequest true "New position (null takes the copy off the shelf)"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /books/{code}/position [patch]
func (h *BookHandler) UpdatePosition(c *gin.Context) {
	var req reqdto.UpdatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}
	if err := h.books.UpdatePosition(book.Copy{Code: c.Param("code"), Position: req.Position}); err != nil {
		respondEngineError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete book copy
// @Tags books
// @Param code path string true "Copy code"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /books/{code} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	if err := h.books.DeleteByCode(c.Param("code")); err != nil {
		respondEngineError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete all book copies
// @Tags books
// @Success 204
// @Router /books [delete]
func (h *BookHandler) DeleteAll(c *gin.Context) {
	if err := h.books.DeleteAll(); err != nil {
		respondEngineError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
