package registry

import (
	"sync"

	"library-lending/internal/domain/patron"
)

// PatronRegistry holds the registered persons, keyed by id code.
type PatronRegistry struct {
	mu    sync.Mutex
	items map[string]patron.Patron
}

func NewPatronRegistry() *PatronRegistry {
	return &PatronRegistry{items: make(map[string]patron.Patron)}
}

func (r *PatronRegistry) Insert(p patron.Patron) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[p.ID]; ok {
		return failf(KindDuplicateKey, ErrDuplicatePatronID, "patron %q", p.ID)
	}
	r.items[p.ID] = clone(p)
	return nil
}

func (r *PatronRegistry) Get(id string) (patron.Patron, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.items) == 0 {
		return patron.Patron{}, fail(KindEmptyStore, ErrEmptyStore)
	}
	p, ok := r.items[id]
	if !ok {
		return patron.Patron{}, failf(KindNotFound, ErrPatronNotFound, "patron %q", id)
	}
	return clone(p), nil
}

func (r *PatronRegistry) GetAll() ([]patron.Patron, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.items) == 0 {
		return nil, fail(KindEmptyStore, ErrEmptyStore)
	}
	result := make([]patron.Patron, 0, len(r.items))
	for _, p := range r.items {
		result = append(result, clone(p))
	}
	return result, nil
}

func (r *PatronRegistry) UpdateAddress(id string, address patron.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.items) == 0 {
		return fail(KindEmptyStore, ErrEmptyStore)
	}
	p, ok := r.items[id]
	if !ok {
		return failf(KindNotFound, ErrPatronNotFound, "patron %q", id)
	}
	p.Address = &address
	r.items[id] = p
	return nil
}

// Contains is the existence probe used by the card-patron link.
func (r *PatronRegistry) Contains(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.containsLocked(id)
}

// DeleteAll clears the registry unconditionally.
func (r *PatronRegistry) DeleteAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = make(map[string]patron.Patron)
}

func (r *PatronRegistry) containsLocked(id string) bool {
	_, ok := r.items[id]
	return ok
}
