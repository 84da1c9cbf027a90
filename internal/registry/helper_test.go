//go:build unit

package registry_test

import (
	"testing"
	"time"

	"library-lending/internal/domain/book"
	"library-lending/internal/domain/card"
	"library-lending/internal/domain/catalog"
	"library-lending/internal/domain/patron"
	"library-lending/internal/domain/reservation"
	"library-lending/internal/pkg/clock"
	"library-lending/internal/pkg/config"
	"library-lending/internal/registry"

	"github.com/stretchr/testify/require"
)

// baseTime is the deterministic "now" every engine starts at.
var baseTime = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

// engine wires a full set of registries over a mock clock, the way the
// bootstrap layer does in production.
type engine struct {
	catalog *registry.PublicationCatalog
	books   *registry.BookRegistry
	cards   *registry.CardRegistry
	patrons *registry.PatronRegistry
	links   *registry.CardPatronLink
	ledger  *registry.ReservationLedger
	clock   *clock.MockClock
}

func newEngine() *engine {
	clk := clock.NewMockClock(baseTime)
	cfg := config.NewTestConfig().Lending

	cat := registry.NewPublicationCatalog()
	books := registry.NewBookRegistry(cat)
	cards := registry.NewCardRegistry()
	patrons := registry.NewPatronRegistry()
	links := registry.NewCardPatronLink(cards, patrons)
	ledger := registry.NewReservationLedger(books, cards, links, clk, cfg)

	return &engine{
		catalog: cat,
		books:   books,
		cards:   cards,
		patrons: patrons,
		links:   links,
		ledger:  ledger,
		clock:   clk,
	}
}

func (e *engine) mustPublication(t *testing.T, isbn string, title *string, authors []string, genres ...catalog.Genre) {
	t.Helper()
	pub := catalog.Publication{ISBN: isbn, Title: title, Authors: authors}
	if len(genres) > 0 {
		pub.Genres = genres
	}
	require.NoError(t, e.catalog.Insert(pub))
}

func (e *engine) mustBook(t *testing.T, code, isbn string, position *int) {
	t.Helper()
	require.NoError(t, e.books.Insert(book.Copy{Code: code, ISBN: isbn, Position: position}))
}

func (e *engine) mustCard(t *testing.T, number int, blocked bool) {
	t.Helper()
	require.NoError(t, e.cards.Insert(card.Card{Number: number, IsBlocked: blocked}))
}

func (e *engine) mustPatron(t *testing.T, id string) {
	t.Helper()
	require.NoError(t, e.patrons.Insert(patron.Patron{ID: id}))
}

// mustLinkedCard registers a card with a patron linked to it, ready to
// reserve books.
func (e *engine) mustLinkedCard(t *testing.T, number int, patronID string) {
	t.Helper()
	e.mustCard(t, number, false)
	e.mustPatron(t, patronID)
	require.NoError(t, e.links.Insert(number, patronID))
}

// mustShelvedBook registers a publication and one catalogued copy of it.
func (e *engine) mustShelvedBook(t *testing.T, code, isbn string, position int) {
	t.Helper()
	e.mustPublication(t, isbn, nil, nil)
	e.mustBook(t, code, isbn, &position)
}

func (e *engine) mustReserve(t *testing.T, cardNumber int, bookCode string) {
	t.Helper()
	res := reservation.New(bookCode, reservation.PeriodFrom(e.clock.Now(), reservation.DefaultLoanDays))
	require.NoError(t, e.ledger.Insert(cardNumber, res))
}

func strPtr(s string) *string                 { return &s }
func intPtr(i int) *int                       { return &i }
func boolPtr(b bool) *bool                    { return &b }
func genrePtr(g catalog.Genre) *catalog.Genre { return &g }

// requireKind asserts the engine failed with the given kind and
// sentinel.
func requireKind(t *testing.T, err error, kind registry.ErrorKind, sentinel error) {
	t.Helper()
	require.Error(t, err)
	require.True(t, registry.IsKind(err, kind), "want kind %s, got %v", kind, err)
	require.ErrorIs(t, err, sentinel)
}
