package book

import "library-lending/internal/domain/catalog"

// Copy is one physical copy of a publication. Code is the identity and
// is assigned by the caller (e.g. "LB-001"). A nil Position means the
// copy is not catalogued on a shelf and therefore cannot be reserved.
type Copy struct {
	Code     string
	ISBN     string
	Position *int
}

func NewCopy(code, isbn string) Copy {
	return Copy{Code: code, ISBN: isbn}
}

// IsCatalogued reports whether the copy occupies a shelf position.
func (c Copy) IsCatalogued() bool {
	return c.Position != nil
}

// SearchSpec is a partial description of a copy used for combined
// search. Only the first provided (non-nil) field is evaluated, in the
// order Code, Position, Author, Title, Genre; the remaining fields are
// ignored. This weak-match policy is deliberate.
type SearchSpec struct {
	Code     *string
	Position *int
	Author   *string
	Title    *string
	Genre    *catalog.Genre
}
