package request

import "library-lending/internal/domain/card"

type InsertCardRequest struct {
	Number    *int `json:"number" binding:"required"`
	IsBlocked bool `json:"is_blocked"`
}

func (r InsertCardRequest) ToDomain() card.Card {
	return card.Card{
		Number:    *r.Number,
		IsBlocked: r.IsBlocked,
	}
}

type UpdateBlockedRequest struct {
	Blocked *bool `json:"blocked" binding:"required"`
}
