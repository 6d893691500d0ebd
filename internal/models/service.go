package models

// Service is something a barbershop sells. Duration is in minutes.
type Service struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
	Active   bool    `json:"status"`
}

func (s Service) key() int64    { return s.ID }
func (s Service) enabled() bool { return s.Active }

type CreateServiceRequest struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Duration int     `json:"duration" validate:"gt=0"`
}
