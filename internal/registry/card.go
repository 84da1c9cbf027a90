package registry

import (
	"sync"

	"library-lending/internal/domain/card"
)

// CardRegistry holds the library cards, keyed by card number.
type CardRegistry struct {
	mu    sync.Mutex
	items map[int]card.Card
}

func NewCardRegistry() *CardRegistry {
	return &CardRegistry{items: make(map[int]card.Card)}
}

func (r *CardRegistry) Insert(c card.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[c.Number]; ok {
		return failf(KindDuplicateKey, ErrDuplicateCardNumber, "card %d", c.Number)
	}
	r.items[c.Number] = c
	return nil
}

// Get returns a copy of the card, never a live reference. State changes
// go through UpdateIsBlocked only.
func (r *CardRegistry) Get(number int) (card.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.items) == 0 {
		return card.Card{}, fail(KindEmptyStore, ErrEmptyStore)
	}
	c, ok := r.items[number]
	if !ok {
		return card.Card{}, failf(KindNotFound, ErrCardNotFound, "card %d", number)
	}
	return c, nil
}

func (r *CardRegistry) GetAll() []card.Card {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]card.Card, 0, len(r.items))
	for _, c := range r.items {
		result = append(result, c)
	}
	return result
}

// GetIsBlocked returns every card whose blocked flag matches.
func (r *CardRegistry) GetIsBlocked(blocked bool) ([]card.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.items) == 0 {
		return nil, fail(KindEmptyStore, ErrEmptyStore)
	}
	var result []card.Card
	for _, c := range r.items {
		if c.IsBlocked == blocked {
			result = append(result, c)
		}
	}
	if len(result) == 0 {
		return nil, fail(KindEmptyResult, ErrEmptyResult)
	}
	return result, nil
}

func (r *CardRegistry) UpdateIsBlocked(number int, blocked bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.items) == 0 {
		return fail(KindEmptyStore, ErrEmptyStore)
	}
	c, ok := r.items[number]
	if !ok {
		return failf(KindNotFound, ErrCardNotFound, "card %d", number)
	}
	c.IsBlocked = blocked
	r.items[number] = c
	return nil
}

// Delete removes a card, but only once nothing else refers to it: the
// ledger must hold no reservation for the card (whatever its status)
// and the card must not be linked to a patron. Reservations are checked
// before the link so a card can never be orphaned from its history.
func (r *CardRegistry) Delete(number int, ledger *ReservationLedger, links *CardPatronLink) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	links.mu.Lock()
	defer links.mu.Unlock()
	ledger.mu.Lock()
	defer ledger.mu.Unlock()

	if len(r.items) == 0 {
		return fail(KindEmptyStore, ErrEmptyStore)
	}
	if _, ok := r.items[number]; !ok {
		return failf(KindNotFound, ErrCardNotFound, "card %d", number)
	}
	if ledger.containsCardLocked(number) {
		return failf(KindStateViolation, ErrReservationsOpen, "card %d", number)
	}
	if links.containsLocked(number) {
		return failf(KindStateViolation, ErrPatronLinked, "card %d", number)
	}
	delete(r.items, number)
	return nil
}

func (r *CardRegistry) Contains(number int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.containsLocked(number)
}

func (r *CardRegistry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

func (r *CardRegistry) containsLocked(number int) bool {
	_, ok := r.items[number]
	return ok
}

func (r *CardRegistry) getLocked(number int) (card.Card, bool) {
	c, ok := r.items[number]
	return c, ok
}
