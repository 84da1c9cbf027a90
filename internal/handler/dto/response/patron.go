package response

import "library-lending/internal/domain/patron"

type PatronResponse struct {
	ID      string           `json:"id"`
	Name    *string          `json:"name,omitempty"`
	Surname *string          `json:"surname,omitempty"`
	Address *AddressResponse `json:"address,omitempty"`
}

type AddressResponse struct {
	Street   string `json:"street"`
	Number   string `json:"number"`
	PostCode string `json:"post_code"`
}

func FromPatron(p patron.Patron) PatronResponse {
	resp := PatronResponse{
		ID:      p.ID,
		Name:    p.Name,
		Surname: p.Surname,
	}
	if p.Address != nil {
		resp.Address = &AddressResponse{
			Street:   p.Address.Street,
			Number:   p.Address.Number,
			PostCode: p.Address.PostCode,
		}
	}
	return resp
}

func FromPatrons(patrons []patron.Patron) []PatronResponse {
	result := make([]PatronResponse, len(patrons))
	for i, p := range patrons {
		result[i] = FromPatron(p)
	}
	return result
}
