package patron

// Patron is a person registered with the library. ID is the identity
// code; name, surname and address are optional.
type Patron struct {
	ID      string
	Name    *string
	Surname *string
	Address *Address
}

type Address struct {
	Street   string
	Number   string
	PostCode string
}

func NewPatron(id string) Patron {
	return Patron{ID: id}
}
