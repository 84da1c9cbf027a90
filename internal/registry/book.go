package registry

import (
	"strings"
	"sync"

	"library-lending/internal/domain/book"
	"library-lending/internal/domain/catalog"
)

// BookRegistry holds the physical copies, keyed by copy code. Metadata
// searches resolve each copy's publication through the catalog; a copy
// carries only its ISBN and shelf position.
type BookRegistry struct {
	mu      sync.Mutex
	catalog *PublicationCatalog
	items   map[string]book.Copy
}

func NewBookRegistry(cat *PublicationCatalog) *BookRegistry {
	return &BookRegistry{
		catalog: cat,
		items:   make(map[string]book.Copy),
	}
}

// Insert registers a copy. The copy's publication must already exist in
// the catalog; the registry never creates publications implicitly.
func (b *BookRegistry) Insert(c book.Copy) error {
	b.catalog.mu.Lock()
	defer b.catalog.mu.Unlock()
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.catalog.containsLocked(c.ISBN) {
		return failf(KindNotFound, ErrPublicationNotFound, "isbn %q", c.ISBN)
	}
	if c.Position != nil && b.positionTakenLocked(*c.Position, "") {
		return failf(KindStateViolation, ErrPositionOccupied, "position %d", *c.Position)
	}
	if _, ok := b.items[c.Code]; ok {
		return failf(KindDuplicateKey, ErrDuplicateCode, "code %q", c.Code)
	}
	b.items[c.Code] = clone(c)
	return nil
}

// UpdatePosition moves the copy to c.Position. The copy may re-occupy
// its own current position; any other occupant is a collision.
func (b *BookRegistry) UpdatePosition(c book.Copy) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.items) == 0 {
		return fail(KindEmptyStore, ErrEmptyStore)
	}
	if c.Position != nil && b.positionTakenLocked(*c.Position, c.Code) {
		return failf(KindStateViolation, ErrPositionOccupied, "position %d", *c.Position)
	}
	stored, ok := b.items[c.Code]
	if !ok {
		return failf(KindNotFound, ErrBookNotFound, "code %q", c.Code)
	}
	stored.Position = clone(c).Position
	b.items[c.Code] = stored
	return nil
}

func (b *BookRegistry) GetByCode(code string) (book.Copy, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.items) == 0 {
		return book.Copy{}, fail(KindEmptyStore, ErrEmptyStore)
	}
	c, ok := b.items[code]
	if !ok {
		return book.Copy{}, failf(KindNotFound, ErrBookNotFound, "code %q", code)
	}
	return clone(c), nil
}

func (b *BookRegistry) GetAll() ([]book.Copy, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.items) == 0 {
		return nil, fail(KindEmptyStore, ErrEmptyStore)
	}
	result := make([]book.Copy, 0, len(b.items))
	for _, c := range b.items {
		result = append(result, clone(c))
	}
	return result, nil
}

// GetByPosition returns the copies at the given position. A nil
// position selects the uncatalogued copies and is the only case where
// several copies can share a "position".
func (b *BookRegistry) GetByPosition(position *int) ([]book.Copy, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.filterLocked(func(c book.Copy, _ catalog.Publication) bool {
		if position == nil {
			return c.Position == nil
		}
		return c.Position != nil && *c.Position == *position
	}, false)
}

// GetByTitle returns copies whose publication carries the given title;
// nil selects copies of publications with no title set.
func (b *BookRegistry) GetByTitle(title *string) ([]book.Copy, error) {
	b.catalog.mu.Lock()
	defer b.catalog.mu.Unlock()
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.filterLocked(func(_ book.Copy, pub catalog.Publication) bool {
		if title == nil {
			return pub.Title == nil
		}
		return pub.Title != nil && strings.EqualFold(strings.TrimSpace(*pub.Title), strings.TrimSpace(*title))
	}, true)
}

// GetByAuthor follows the same nil-means-unset semantics as GetByTitle.
func (b *BookRegistry) GetByAuthor(author *string) ([]book.Copy, error) {
	b.catalog.mu.Lock()
	defer b.catalog.mu.Unlock()
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.filterLocked(func(_ book.Copy, pub catalog.Publication) bool {
		if author == nil {
			return len(pub.Authors) == 0
		}
		return pub.HasAuthor(*author)
	}, true)
}

// GetByGenre follows the same nil-means-unset semantics as GetByTitle.
func (b *BookRegistry) GetByGenre(genre *catalog.Genre) ([]book.Copy, error) {
	b.catalog.mu.Lock()
	defer b.catalog.mu.Unlock()
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.filterLocked(func(_ book.Copy, pub catalog.Publication) bool {
		if genre == nil {
			return len(pub.Genres) == 0
		}
		return pub.HasGenre(*genre)
	}, true)
}

// GetByDefinition runs a combined search: the first provided field,
// checked in the order code, position, author, title, genre, decides
// the whole query and the remaining fields are ignored. Callers
// wanting conjunction must intersect results themselves.
func (b *BookRegistry) GetByDefinition(spec book.SearchSpec) ([]book.Copy, error) {
	switch {
	case spec.Code != nil:
		c, err := b.GetByCode(*spec.Code)
		if err != nil {
			return nil, err
		}
		return []book.Copy{c}, nil
	case spec.Position != nil:
		return b.GetByPosition(spec.Position)
	case spec.Author != nil:
		return b.GetByAuthor(spec.Author)
	case spec.Title != nil:
		return b.GetByTitle(spec.Title)
	case spec.Genre != nil:
		return b.GetByGenre(spec.Genre)
	default:
		return nil, fail(KindEmptyResult, ErrEmptyResult)
	}
}

func (b *BookRegistry) DeleteByCode(code string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.items) == 0 {
		return fail(KindEmptyStore, ErrEmptyStore)
	}
	if _, ok := b.items[code]; !ok {
		return failf(KindNotFound, ErrBookNotFound, "code %q", code)
	}
	delete(b.items, code)
	return nil
}

func (b *BookRegistry) DeleteAll() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.items) == 0 {
		return fail(KindEmptyStore, ErrEmptyStore)
	}
	b.items = make(map[string]book.Copy)
	return nil
}

// Contains is the existence probe used by the reservation ledger.
func (b *BookRegistry) Contains(code string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.containsLocked(code)
}

// filterLocked scans the registry under held locks. When withPub is
// true the caller must also hold the catalog lock; copies whose
// publication has vanished from the catalog are skipped.
func (b *BookRegistry) filterLocked(match func(book.Copy, catalog.Publication) bool, withPub bool) ([]book.Copy, error) {
	if len(b.items) == 0 {
		return nil, fail(KindEmptyStore, ErrEmptyStore)
	}
	var result []book.Copy
	for _, c := range b.items {
		var pub catalog.Publication
		if withPub {
			var ok bool
			pub, ok = b.catalog.getLocked(c.ISBN)
			if !ok {
				continue
			}
		}
		if match(c, pub) {
			result = append(result, clone(c))
		}
	}
	if len(result) == 0 {
		return nil, fail(KindEmptyResult, ErrEmptyResult)
	}
	return result, nil
}

func (b *BookRegistry) positionTakenLocked(position int, exceptCode string) bool {
	for code, c := range b.items {
		if code == exceptCode {
			continue
		}
		if c.Position != nil && *c.Position == position {
			return true
		}
	}
	return false
}

func (b *BookRegistry) containsLocked(code string) bool {
	_, ok := b.items[code]
	return ok
}

func (b *BookRegistry) getLocked(code string) (book.Copy, bool) {
	c, ok := b.items[code]
	return c, ok
}
