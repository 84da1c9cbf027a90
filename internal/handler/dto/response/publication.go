package response

import "library-lending/internal/domain/catalog"

type PublicationResponse struct {
	ISBN    string   `json:"isbn"`
	Title   *string  `json:"title,omitempty"`
	Authors []string `json:"authors,omitempty"`
	Genres  []string `json:"genres,omitempty"`
}

func FromPublication(pub catalog.Publication) PublicationResponse {
	return PublicationResponse{
		ISBN:    pub.ISBN,
		Title:   pub.Title,
		Authors: pub.Authors,
		Genres:  fromGenres(pub.Genres),
	}
}

func FromPublications(pubs []catalog.Publication) []PublicationResponse {
	result := make([]PublicationResponse, len(pubs))
	for i, pub := range pubs {
		result[i] = FromPublication(pub)
	}
	return result
}

func fromGenres(genres []catalog.Genre) []string {
	if genres == nil {
		return nil
	}
	names := make([]string, len(genres))
	for i, g := range genres {
		names[i] = string(g)
	}
	return names
}
