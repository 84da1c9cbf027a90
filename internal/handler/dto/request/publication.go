package request

import (
	"library-lending/internal/domain/catalog"
)

type InsertPublicationRequest struct {
	ISBN    string   `json:"isbn" binding:"required"`
	Title   *string  `json:"title,omitempty"`
	Authors []string `json:"authors,omitempty"`
	Genres  []string `json:"genres,omitempty"`
}

func (r InsertPublicationRequest) ToDomain() catalog.Publication {
	return catalog.Publication{
		ISBN:    r.ISBN,
		Title:   r.Title,
		Authors: r.Authors,
		Genres:  ToGenres(r.Genres),
	}
}

type UpdateTitleRequest struct {
	Title *string `json:"title"`
}

type UpdateAuthorsRequest struct {
	Authors []string `json:"authors"`
}

type UpdateGenresRequest struct {
	Genres []string `json:"genres"`
}

func ToGenres(names []string) []catalog.Genre {
	if names == nil {
		return nil
	}
	genres := make([]catalog.Genre, len(names))
	for i, name := range names {
		genres[i] = catalog.Genre(name)
	}
	return genres
}
