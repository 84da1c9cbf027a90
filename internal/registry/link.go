package registry

import "sync"

// CardPatronLink is the strict one-to-one binding between a card number
// and a patron id. A card appears at most once as a key and a patron at
// most once as a value; the value side is enforced by scanning, there
// is no reverse index (datasets are small).
type CardPatronLink struct {
	mu      sync.Mutex
	cards   *CardRegistry
	patrons *PatronRegistry
	items   map[int]string
}

func NewCardPatronLink(cards *CardRegistry, patrons *PatronRegistry) *CardPatronLink {
	return &CardPatronLink{
		cards:   cards,
		patrons: patrons,
		items:   make(map[int]string),
	}
}

// Insert binds a card to a patron. Both must already exist in their
// registries; neither may already be part of another link.
func (l *CardPatronLink) Insert(cardNumber int, patronID string) error {
	l.cards.mu.Lock()
	defer l.cards.mu.Unlock()
	l.patrons.mu.Lock()
	defer l.patrons.mu.Unlock()
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.cards.containsLocked(cardNumber) {
		return failf(KindNotFound, ErrCardNotFound, "card %d", cardNumber)
	}
	if !l.patrons.containsLocked(patronID) {
		return failf(KindNotFound, ErrPatronNotFound, "patron %q", patronID)
	}
	if _, ok := l.items[cardNumber]; ok {
		return failf(KindDuplicateKey, ErrCardAlreadyLinked, "card %d", cardNumber)
	}
	for _, id := range l.items {
		if id == patronID {
			return failf(KindDuplicateKey, ErrPatronAlreadyLinked, "patron %q", patronID)
		}
	}
	l.items[cardNumber] = patronID
	return nil
}

func (l *CardPatronLink) Delete(cardNumber int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.items) == 0 {
		return fail(KindEmptyStore, ErrEmptyStore)
	}
	if _, ok := l.items[cardNumber]; !ok {
		return failf(KindNotFound, ErrLinkNotFound, "card %d", cardNumber)
	}
	delete(l.items, cardNumber)
	return nil
}

// Contains is the probe used by the reservation ledger and by card
// deletion.
func (l *CardPatronLink) Contains(cardNumber int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.containsLocked(cardNumber)
}

func (l *CardPatronLink) GetAll() map[int]string {
	l.mu.Lock()
	defer l.mu.Unlock()

	result := make(map[int]string, len(l.items))
	for number, id := range l.items {
		result[number] = id
	}
	return result
}

func (l *CardPatronLink) containsLocked(cardNumber int) bool {
	_, ok := l.items[cardNumber]
	return ok
}
