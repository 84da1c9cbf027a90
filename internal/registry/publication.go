package registry

import (
	"strings"
	"sync"

	"library-lending/internal/domain/catalog"
)

// PublicationCatalog holds the canonical metadata for every title,
// keyed by ISBN.
type PublicationCatalog struct {
	mu    sync.Mutex
	items map[string]catalog.Publication
}

func NewPublicationCatalog() *PublicationCatalog {
	return &PublicationCatalog{items: make(map[string]catalog.Publication)}
}

func (p *PublicationCatalog) Insert(pub catalog.Publication) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.items[pub.ISBN]; ok {
		return failf(KindDuplicateKey, ErrDuplicateISBN, "isbn %q", pub.ISBN)
	}
	p.items[pub.ISBN] = clone(pub)
	return nil
}

func (p *PublicationCatalog) Get(isbn string) (catalog.Publication, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.items) == 0 {
		return catalog.Publication{}, fail(KindEmptyStore, ErrEmptyStore)
	}
	pub, ok := p.items[isbn]
	if !ok {
		return catalog.Publication{}, failf(KindNotFound, ErrPublicationNotFound, "isbn %q", isbn)
	}
	return clone(pub), nil
}

func (p *PublicationCatalog) GetAll() ([]catalog.Publication, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.items) == 0 {
		return nil, fail(KindEmptyStore, ErrEmptyStore)
	}
	result := make([]catalog.Publication, 0, len(p.items))
	for _, pub := range p.items {
		result = append(result, clone(pub))
	}
	return result, nil
}

// GetByTitle returns publications with the given title, compared
// trimmed and case-insensitively. A nil title selects publications
// whose title was never set; it is not a wildcard.
func (p *PublicationCatalog) GetByTitle(title *string) ([]catalog.Publication, error) {
	return p.filter(func(pub catalog.Publication) bool {
		if title == nil {
			return pub.Title == nil
		}
		return pub.Title != nil && strings.EqualFold(strings.TrimSpace(*pub.Title), strings.TrimSpace(*title))
	})
}

// GetByAuthor follows the same nil-means-unset semantics as GetByTitle.
func (p *PublicationCatalog) GetByAuthor(author *string) ([]catalog.Publication, error) {
	return p.filter(func(pub catalog.Publication) bool {
		if author == nil {
			return len(pub.Authors) == 0
		}
		return pub.HasAuthor(*author)
	})
}

// GetByGenre follows the same nil-means-unset semantics as GetByTitle.
func (p *PublicationCatalog) GetByGenre(genre *catalog.Genre) ([]catalog.Publication, error) {
	return p.filter(func(pub catalog.Publication) bool {
		if genre == nil {
			return len(pub.Genres) == 0
		}
		return pub.HasGenre(*genre)
	})
}

func (p *PublicationCatalog) UpdateTitle(isbn string, title *string) error {
	return p.update(isbn, func(pub *catalog.Publication) {
		pub.Title = title
	})
}

func (p *PublicationCatalog) UpdateAuthors(isbn string, authors []string) error {
	return p.update(isbn, func(pub *catalog.Publication) {
		pub.Authors = authors
	})
}

func (p *PublicationCatalog) UpdateGenres(isbn string, genres []catalog.Genre) error {
	return p.update(isbn, func(pub *catalog.Publication) {
		pub.Genres = genres
	})
}

func (p *PublicationCatalog) Delete(isbn string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.items) == 0 {
		return fail(KindEmptyStore, ErrEmptyStore)
	}
	if _, ok := p.items[isbn]; !ok {
		return failf(KindNotFound, ErrPublicationNotFound, "isbn %q", isbn)
	}
	delete(p.items, isbn)
	return nil
}

// Contains is the existence probe used by the book copy registry.
func (p *PublicationCatalog) Contains(isbn string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.containsLocked(isbn)
}

func (p *PublicationCatalog) filter(match func(catalog.Publication) bool) ([]catalog.Publication, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.items) == 0 {
		return nil, fail(KindEmptyStore, ErrEmptyStore)
	}
	var result []catalog.Publication
	for _, pub := range p.items {
		if match(pub) {
			result = append(result, clone(pub))
		}
	}
	if len(result) == 0 {
		return nil, fail(KindEmptyResult, ErrEmptyResult)
	}
	return result, nil
}

func (p *PublicationCatalog) update(isbn string, apply func(*catalog.Publication)) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.items) == 0 {
		return fail(KindEmptyStore, ErrEmptyStore)
	}
	pub, ok := p.items[isbn]
	if !ok {
		return failf(KindNotFound, ErrPublicationNotFound, "isbn %q", isbn)
	}
	apply(&pub)
	p.items[isbn] = pub
	return nil
}

func (p *PublicationCatalog) containsLocked(isbn string) bool {
	_, ok := p.items[isbn]
	return ok
}

func (p *PublicationCatalog) getLocked(isbn string) (catalog.Publication, bool) {
	pub, ok := p.items[isbn]
	return pub, ok
}
