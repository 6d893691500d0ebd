package models

type Barbershop struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Email       string    `json:"email,omitempty"`
	OpeningTime string    `json:"openingTime,omitempty"`
	ClosingTime string    `json:"closingTime,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Active      bool      `json:"status"`
	Services    []Service `json:"services,omitempty"`
	Barbers     []Barber  `json:"barbers,omitempty"`
}

// Displayable returns a copy with services and barbers de-duplicated by id
// and reduced to active entries, first occurrence wins.
func (b Barbershop) Displayable() Barbershop {
	out := b
	out.Services = filterActive(uniqueByID(b.Services))
	out.Barbers = filterActive(uniqueByID(b.Barbers))
	return out
}

type identified interface {
	Service | Barber
	key() int64
	enabled() bool
}

func uniqueByID[T identified](items []T) []T {
	seen := make(map[int64]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.key()]; ok {
			continue
		}
		seen[it.key()] = struct{}{}
		out = append(out, it)
	}
	return out
}

func filterActive[T identified](items []T) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it.enabled() {
			out = append(out, it)
		}
	}
	return out
}
