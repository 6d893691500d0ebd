package models

type Barber struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Specialty string `json:"specialty,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
	Active    bool   `json:"status"`
}

func (b Barber) key() int64    { return b.ID }
func (b Barber) enabled() bool { return b.Active }

type CreateBarberRequest struct {
	Name   string `json:"name" validate:"required"`
	Phone  string `json:"phone" validate:"required"`
	Active bool   `json:"status"`
}
