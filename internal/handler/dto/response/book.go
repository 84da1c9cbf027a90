package response

import "library-lending/internal/domain/book"

type BookCopyResponse struct {
	Code     string `json:"code"`
	ISBN     string `json:"isbn"`
	Position *int   `json:"position,omitempty"`
}

func FromBookCopy(c book.Copy) BookCopyResponse {
	return BookCopyResponse{
		Code:     c.Code,
		ISBN:     c.ISBN,
		Position: c.Position,
	}
}

func FromBookCopies(copies []book.Copy) []BookCopyResponse {
	result := make([]BookCopyResponse, len(copies))
	for i, c := range copies {
		result[i] = FromBookCopy(c)
	}
	return result
}
