//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"library-lending/internal/handler"
	"library-lending/internal/handler/api"
	"library-lending/internal/pkg/clock"
	"library-lending/internal/pkg/config"
	"library-lending/internal/registry"
	"library-lending/tests/common/helper"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

// HandlerTestSuite drives the full router over a real engine; no
// repository mocks, the registries are the store.
type HandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	clock   *clock.MockClock
	catalog *registry.PublicationCatalog
	books   *registry.BookRegistry
	cards   *registry.CardRegistry
	ledger  *registry.ReservationLedger
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	cfg := config.NewTestConfig()
	s.clock = clock.NewMockClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	s.catalog = registry.NewPublicationCatalog()
	s.books = registry.NewBookRegistry(s.catalog)
	s.cards = registry.NewCardRegistry()
	patrons := registry.NewPatronRegistry()
	links := registry.NewCardPatronLink(s.cards, patrons)
	s.ledger = registry.NewReservationLedger(s.books, s.cards, links, s.clock, cfg.Lending)

	handler.NewRouter(
		s.router,
		cfg,
		api.NewPublicationHandler(s.catalog),
		api.NewBookHandler(s.books),
		api.NewCardHandler(s.cards, s.ledger, links),
		api.NewPatronHandler(patrons),
		api.NewLinkHandler(links),
		api.NewReservationHandler(s.ledger, s.clock, cfg.Lending),
	)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) perform(method, path string, body any) int {
	w := helper.PerformRequest(s.T(), s.router, method, path, body)
	return w.Code
}

func (s *HandlerTestSuite) seedPublication(isbn string) {
	s.Require().Equal(http.StatusCreated, s.perform(http.MethodPost, "/api/publications", map[string]any{
		"isbn": isbn, "title": "Dune", "authors": []string{"Frank Herbert"}, "genres": []string{"scifi"},
	}))
}

func (s *HandlerTestSuite) seedBook(code, isbn string, position int) {
	s.Require().Equal(http.StatusCreated, s.perform(http.MethodPost, "/api/books", map[string]any{
		"code": code, "isbn": isbn, "position": position,
	}))
}

func (s *HandlerTestSuite) seedLinkedCard(number int, patronID string) {
	s.Require().Equal(http.StatusCreated, s.perform(http.MethodPost, "/api/cards", map[string]any{"number": number}))
	s.Require().Equal(http.StatusCreated, s.perform(http.MethodPost, "/api/patrons", map[string]any{"id": patronID}))
	s.Require().Equal(http.StatusCreated, s.perform(http.MethodPost, "/api/links", map[string]any{
		"card_number": number, "patron_id": patronID,
	}))
}

func (s *HandlerTestSuite) TestPublicationEndpoints() {
	s.Run("empty catalog answers 204", func() {
		s.Equal(http.StatusNoContent, s.perform(http.MethodGet, "/api/publications", nil))
	})

	s.Run("insert then read back", func() {
		s.seedPublication("978-1")
		s.Equal(http.StatusOK, s.perform(http.MethodGet, "/api/publications", nil))
		s.Equal(http.StatusOK, s.perform(http.MethodGet, "/api/publications/978-1", nil))
	})

	s.Run("duplicate isbn answers 409", func() {
		s.Equal(http.StatusConflict, s.perform(http.MethodPost, "/api/publications", map[string]any{"isbn": "978-1"}))
	})

	s.Run("missing isbn answers 404", func() {
		s.Equal(http.StatusNotFound, s.perform(http.MethodGet, "/api/publications/978-404", nil))
	})

	s.Run("malformed body answers 400", func() {
		s.Equal(http.StatusBadRequest, s.perform(http.MethodPost, "/api/publications", map[string]any{"title": "no isbn"}))
	})

	s.Run("filter without match answers 204", func() {
		s.Equal(http.StatusNoContent, s.perform(http.MethodGet, "/api/publications/by-title?title=Neuromancer", nil))
	})

	s.Run("absent query param means field-unset filter", func() {
		// Every seeded publication has a title, so this matches nothing.
		s.Equal(http.StatusNoContent, s.perform(http.MethodGet, "/api/publications/by-title", nil))
	})
}

func (s *HandlerTestSuite) TestBookEndpoints() {
	s.seedPublication("978-1")

	s.Run("insert against unknown isbn answers 404", func() {
		s.Equal(http.StatusNotFound, s.perform(http.MethodPost, "/api/books", map[string]any{
			"code": "LB-001", "isbn": "978-404",
		}))
	})

	s.Run("insert and move", func() {
		s.seedBook("LB-001", "978-1", 3)
		s.Equal(http.StatusNoContent, s.perform(http.MethodPatch, "/api/books/LB-001/position", map[string]any{"position": 7}))
	})

	s.Run("occupied position answers 422", func() {
		s.Equal(http.StatusUnprocessableEntity, s.perform(http.MethodPost, "/api/books", map[string]any{
			"code": "LB-002", "isbn": "978-1", "position": 7,
		}))
	})

	s.Run("combined search uses the first provided field", func() {
		s.Equal(http.StatusOK, s.perform(http.MethodPost, "/api/books/search", map[string]any{
			"code": "LB-001", "author": "Nobody",
		}))
	})

	s.Run("empty search answers 204", func() {
		s.Equal(http.StatusNoContent, s.perform(http.MethodPost, "/api/books/search", map[string]any{}))
	})
}

func (s *HandlerTestSuite) TestCardEndpoints() {
	s.Run("listing cards never 204s", func() {
		s.Equal(http.StatusOK, s.perform(http.MethodGet, "/api/cards", nil))
	})

	s.Run("insert, block, count", func() {
		s.Equal(http.StatusCreated, s.perform(http.MethodPost, "/api/cards", map[string]any{"number": 100}))
		s.Equal(http.StatusNoContent, s.perform(http.MethodPatch, "/api/cards/100/blocked", map[string]any{"blocked": true}))
		s.Equal(http.StatusOK, s.perform(http.MethodGet, "/api/cards/count", nil))
		s.Equal(http.StatusOK, s.perform(http.MethodGet, "/api/cards/by-blocked?blocked=true", nil))
	})

	s.Run("missing number field answers 400", func() {
		s.Equal(http.StatusBadRequest, s.perform(http.MethodPost, "/api/cards", map[string]any{}))
	})

	s.Run("non-numeric path param answers 400", func() {
		s.Equal(http.StatusBadRequest, s.perform(http.MethodGet, "/api/cards/abc", nil))
	})

	s.Run("delete is guarded by the link", func() {
		s.seedLinkedCard(200, "P-1")
		s.Equal(http.StatusUnprocessableEntity, s.perform(http.MethodDelete, "/api/cards/200", nil))

		s.Equal(http.StatusNoContent, s.perform(http.MethodDelete, "/api/links/200", nil))
		s.Equal(http.StatusNoContent, s.perform(http.MethodDelete, "/api/cards/200", nil))
	})
}

func (s *HandlerTestSuite) TestLinkEndpoints() {
	s.Run("link against missing card answers 404", func() {
		s.Equal(http.StatusNotFound, s.perform(http.MethodPost, "/api/links", map[string]any{
			"card_number": 1, "patron_id": "P-404",
		}))
	})

	s.Run("second link for the same card answers 409", func() {
		s.seedLinkedCard(1, "P-1")
		s.Require().Equal(http.StatusCreated, s.perform(http.MethodPost, "/api/patrons", map[string]any{"id": "P-2"}))
		s.Equal(http.StatusConflict, s.perform(http.MethodPost, "/api/links", map[string]any{
			"card_number": 1, "patron_id": "P-2",
		}))
	})
}

func (s *HandlerTestSuite) TestReservationEndpoints() {
	s.seedPublication("978-1")
	s.seedBook("LB-001", "978-1", 1)
	s.seedBook("LB-002", "978-1", 2)
	s.seedLinkedCard(100, "P-1")

	s.Run("empty ledger answers 204", func() {
		s.Equal(http.StatusNoContent, s.perform(http.MethodGet, "/api/reservations", nil))
	})

	s.Run("reserve with the default period", func() {
		s.Equal(http.StatusCreated, s.perform(http.MethodPost, "/api/reservations/100", map[string]any{
			"book_code": "LB-001",
		}))
		s.Equal(http.StatusOK, s.perform(http.MethodGet, "/api/reservations", nil))
	})

	s.Run("double reservation of a copy answers 409", func() {
		s.Equal(http.StatusConflict, s.perform(http.MethodPost, "/api/reservations/100", map[string]any{
			"book_code": "lb-001",
		}))
	})

	s.Run("unknown status answers 400", func() {
		s.Equal(http.StatusBadRequest, s.perform(http.MethodPatch, "/api/reservations/100/LB-001/status", map[string]any{
			"status": "lost",
		}))
	})

	s.Run("delay gate answers 422", func() {
		s.clock.Advance(10 * 24 * time.Hour)
		s.Equal(http.StatusUnprocessableEntity, s.perform(http.MethodPost, "/api/reservations/100", map[string]any{
			"book_code": "LB-002",
		}))
		s.Equal(http.StatusOK, s.perform(http.MethodGet, "/api/reservations/delayed?blocked=false", nil))
	})

	s.Run("returning clears the gate", func() {
		s.Equal(http.StatusNoContent, s.perform(http.MethodPatch, "/api/reservations/100/LB-001/status", map[string]any{
			"status": "returned",
		}))
		s.Equal(http.StatusCreated, s.perform(http.MethodPost, "/api/reservations/100", map[string]any{
			"book_code": "LB-002",
		}))
	})
}
