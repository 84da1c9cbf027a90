package card

// Card is a library card. Number is the identity. A blocked card cannot
// take out new reservations until it is unblocked.
type Card struct {
	Number    int
	IsBlocked bool
}

func NewCard(number int) Card {
	return Card{Number: number}
}
