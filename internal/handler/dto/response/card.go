package response

import "library-lending/internal/domain/card"

type CardResponse struct {
	Number    int  `json:"number"`
	IsBlocked bool `json:"is_blocked"`
}

type CardCountResponse struct {
	Count int `json:"count"`
}

func FromCard(c card.Card) CardResponse {
	return CardResponse{
		Number:    c.Number,
		IsBlocked: c.IsBlocked,
	}
}

func FromCards(cards []card.Card) []CardResponse {
	result := make([]CardResponse, len(cards))
	for i, c := range cards {
		result[i] = FromCard(c)
	}
	return result
}
