package request

import "library-lending/internal/domain/patron"

type InsertPatronRequest struct {
	ID      string          `json:"id" binding:"required"`
	Name    *string         `json:"name,omitempty"`
	Surname *string         `json:"surname,omitempty"`
	Address *AddressPayload `json:"address,omitempty"`
}

type AddressPayload struct {
	Street   string `json:"street"`
	Number   string `json:"number"`
	PostCode string `json:"post_code"`
}

func (r InsertPatronRequest) ToDomain() patron.Patron {
	p := patron.Patron{
		ID:      r.ID,
		Name:    r.Name,
		Surname: r.Surname,
	}
	if r.Address != nil {
		p.Address = &patron.Address{
			Street:   r.Address.Street,
			Number:   r.Address.Number,
			PostCode: r.Address.PostCode,
		}
	}
	return p
}

type UpdateAddressRequest struct {
	Street   string `json:"street" binding:"required"`
	Number   string `json:"number" binding:"required"`
	PostCode string `json:"post_code" binding:"required"`
}

func (r UpdateAddressRequest) ToDomain() patron.Address {
	return patron.Address{
		Street:   r.Street,
		Number:   r.Number,
		PostCode: r.PostCode,
	}
}
