package request

import (
	"library-lending/internal/domain/book"
	"library-lending/internal/domain/catalog"
)

type InsertBookCopyRequest struct {
	Code     string `json:"code" binding:"required"`
	ISBN     string `json:"isbn" binding:"required"`
	Position *int   `json:"position,omitempty"`
}

func (r InsertBookCopyRequest) ToDomain() book.Copy {
	return book.Copy{
		Code:     r.Code,
		ISBN:     r.ISBN,
		Position: r.Position,
	}
}

// UpdatePositionRequest moves a copy; a null position takes the copy
// off the shelf (uncatalogued).
type UpdatePositionRequest struct {
	Position *int `json:"position"`
}

// SearchBooksRequest is the combined-search payload. Only the first
// provided field is honored (code, position, author, title, genre, in
// that order).
type SearchBooksRequest struct {
	Code     *string `json:"code,omitempty"`
	Position *int    `json:"position,omitempty"`
	Author   *string `json:"author,omitempty"`
	Title    *string `json:"title,omitempty"`
	Genre    *string `json:"genre,omitempty"`
}

func (r SearchBooksRequest) ToSpec() book.SearchSpec {
	spec := book.SearchSpec{
		Code:     r.Code,
		Position: r.Position,
		Author:   r.Author,
		Title:    r.Title,
	}
	if r.Genre != nil {
		g := catalog.Genre(*r.Genre)
		spec.Genre = &g
	}
	return spec
}
