package catalog

// Genre classifies a publication. A publication can carry several genres.
type Genre string

const (
	GenreCrime    Genre = "crime"
	GenreFantasy  Genre = "fantasy"
	GenreHorror   Genre = "horror"
	GenreRomance  Genre = "romance"
	GenreSciFi    Genre = "scifi"
	GenreThriller Genre = "thriller"
)

// Publication is the canonical metadata for a title. The ISBN is the
// identity and never changes; everything else is optional and mutable.
// A nil Title, Authors, or Genres means the field was never set, which
// is a queryable state of its own (see the registry filter semantics).
type Publication struct {
	ISBN    string
	Title   *string
	Authors []string
	Genres  []Genre
}

func NewPublication(isbn string) Publication {
	return Publication{ISBN: isbn}
}

func (p Publication) HasAuthor(author string) bool {
	for _, a := range p.Authors {
		if a == author {
			return true
		}
	}
	return false
}

func (p Publication) HasGenre(genre Genre) bool {
	for _, g := range p.Genres {
		if g == genre {
			return true
		}
	}
	return false
}
