package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"library-lending/internal/handler/api"
	"library-lending/internal/handler/middleware"
	"library-lending/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	publicationHandler *api.PublicationHandler,
	bookHandler *api.BookHandler,
	cardHandler *api.CardHandler,
	patronHandler *api.PatronHandler,
	linkHandler *api.LinkHandler,
	reservationHandler *api.ReservationHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, publicationHandler, bookHandler, cardHandler, patronHandler, linkHandler, reservationHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	publicationHandler *api.PublicationHandler,
	bookHandler *api.BookHandler,
	cardHandler *api.CardHandler,
	patronHandler *api.PatronHandler,
	linkHandler *api.LinkHandler,
	reservationHandler *api.ReservationHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		publications := apiGroup.Group("/publications")
		addRoutes(publications, []route{
			{Method: http.MethodPost, Path: "", Handler: publicationHandler.Insert},
			{Method: http.MethodGet, Path: "", Handler: publicationHandler.GetAll},
			{Method: http.MethodGet, Path: "/by-title", Handler: publicationHandler.GetByTitle},
			{Method: http.MethodGet, Path: "/by-author", Handler: publicationHandler.GetByAuthor},
			{Method: http.MethodGet, Path: "/by-genre", Handler: publicationHandler.GetByGenre},
			{Method: http.MethodGet, Path: "/:isbn", Handler: publicationHandler.Get},
			{Method: http.MethodPatch, Path: "/:isbn/title", Handler: publicationHandler.UpdateTitle},
			{Method: http.MethodPatch, Path: "/:isbn/authors", Handler: publicationHandler.UpdateAuthors},
			{Method: http.MethodPatch, Path: "/:isbn/genres", Handler: publicationHandler.UpdateGenres},
			{Method: http.MethodDelete, Path: "/:isbn", Handler: publicationHandler.Delete},
		})

		books := apiGroup.Group("/books")
		addRoutes(books, []route{
			{Method: http.MethodPost, Path: "", Handler: bookHandler.Insert},
			{Method: http.MethodPost, Path: "/search", Handler: bookHandler.Search},
			{Method: http.MethodGet, Path: "", Handler: bookHandler.GetAll},
			{Method: http.MethodGet, Path: "/by-position", Handler: bookHandler.GetByPosition},
			{Method: http.MethodGet, Path: "/by-title", Handler: bookHandler.GetByTitle},
			{Method: http.MethodGet, Path: "/by-author", Handler: bookHandler.GetByAuthor},
			{Method: http.MethodGet, Path: "/by-genre", Handler: bookHandler.GetByGenre},
			{Method: http.MethodGet, Path: "/:code", Handler: bookHandler.GetByCode},
			{Method: http.MethodPatch, Path: "/:code/position", Handler: bookHandler.UpdatePosition},
			{Method: http.MethodDelete, Path: "/:code", Handler: bookHandler.Delete},
			{Method: http.MethodDelete, Path: "", Handler: bookHandler.DeleteAll},
		})

		cards := apiGroup.Group("/cards")
		addRoutes(cards, []route{
			{Method: http.MethodPost, Path: "", Handler: cardHandler.Insert},
			{Method: http.MethodGet, Path: "", Handler: cardHandler.GetAll},
			{Method: http.MethodGet, Path: "/count", Handler: cardHandler.Count},
			{Method: http.MethodGet, Path: "/by-blocked", Handler: cardHandler.GetIsBlocked},
			{Method: http.MethodGet, Path: "/:number", Handler: cardHandler.Get},
			{Method: http.MethodPatch, Path: "/:number/blocked", Handler: cardHandler.UpdateIsBlocked},
			{Method: http.MethodDelete, Path: "/:number", Handler: cardHandler.Delete},
		})

		patrons := apiGroup.Group("/patrons")
		addRoutes(patrons, []route{
			{Method: http.MethodPost, Path: "", Handler: patronHandler.Insert},
			{Method: http.MethodGet, Path: "", Handler: patronHandler.GetAll},
			{Method: http.MethodGet, Path: "/:id", Handler: patronHandler.Get},
			{Method: http.MethodPatch, Path: "/:id/address", Handler: patronHandler.UpdateAddress},
			{Method: http.MethodDelete, Path: "", Handler: patronHandler.DeleteAll},
		})

		links := apiGroup.Group("/links")
		addRoutes(links, []route{
			{Method: http.MethodPost, Path: "", Handler: linkHandler.Insert},
			{Method: http.MethodGet, Path: "", Handler: linkHandler.GetAll},
			{Method: http.MethodDelete, Path: "/:cardNumber", Handler: linkHandler.Delete},
		})

		reservations := apiGroup.Group("/reservations")
		addRoutes(reservations, []route{
			{Method: http.MethodPost, Path: "/:cardNumber", Handler: reservationHandler.Insert},
			{Method: http.MethodGet, Path: "", Handler: reservationHandler.GetAll},
			{Method: http.MethodGet, Path: "/delayed", Handler: reservationHandler.GetDelayed},
			{Method: http.MethodPatch, Path: "/:cardNumber/:bookCode/period", Handler: reservationHandler.UpdatePeriod},
			{Method: http.MethodPatch, Path: "/:cardNumber/:bookCode/status", Handler: reservationHandler.UpdateStatus},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
