package request

type InsertLinkRequest struct {
	CardNumber *int   `json:"card_number" binding:"required"`
	PatronID   string `json:"patron_id" binding:"required"`
}
