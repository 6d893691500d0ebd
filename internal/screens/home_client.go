package screens

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Kaleth2216/FadeApp/internal/models"
)

const (
	DefaultCity   = "Neiva"
	AlternateCity = "Bogotá"
)

type CityLister interface {
	ListByCity(ctx context.Context, city string) []models.Barbershop
}

// HomeClient lists the barbershops of the selected city.
type HomeClient struct {
	api CityLister
	log zerolog.Logger

	mu               sync.Mutex
	city             string
	search           string
	shops            []models.Barbershop
	loading          bool
	openAppointments bool
}

func NewHomeClient(api CityLister, log zerolog.Logger) *HomeClient {
	return &HomeClient{api: api, city: DefaultCity, log: log.With().Str("screen", "home_client").Logger()}
}

func (h *HomeClient) City() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.city
}

// Load fetches the current city. An unreachable server leaves an empty list.
func (h *HomeClient) Load(ctx context.Context) []models.Barbershop {
	h.mu.Lock()
	city := h.city
	h.loading = true
	h.mu.Unlock()

	shops := h.api.ListByCity(ctx, city)
	h.log.Debug().Str("city", city).Int("count", len(shops)).Msg("barbershops loaded")

	h.mu.Lock()
	defer h.mu.Unlock()
	h.loading = false
	// A city change while loading wins over this result.
	if h.city == city {
		h.shops = shops
	}
	return h.filtered()
}

// ToggleCity switches between the two supported cities and reloads.
func (h *HomeClient) ToggleCity(ctx context.Context) []models.Barbershop {
	h.mu.Lock()
	if h.city == DefaultCity {
		h.city = AlternateCity
	} else {
		h.city = DefaultCity
	}
	h.mu.Unlock()
	return h.Load(ctx)
}

// SetSearch filters the loaded list by name, case-insensitively, without a request.
func (h *HomeClient) SetSearch(q string) []models.Barbershop {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.search = q
	return h.filtered()
}

func (h *HomeClient) Visible() []models.Barbershop {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.filtered()
}

func (h *HomeClient) Loading() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.loading
}

func (h *HomeClient) filtered() []models.Barbershop {
	q := strings.ToLower(strings.TrimSpace(h.search))
	out := make([]models.Barbershop, 0, len(h.shops))
	for _, s := range h.shops {
		if q == "" || strings.Contains(strings.ToLower(s.Name), q) {
			out = append(out, s)
		}
	}
	return out
}

// RequestAppointments asks the screen to open "my appointments" next time.
func (h *HomeClient) RequestAppointments() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.openAppointments = true
}

// TakeOpenAppointments reports and clears the request.
func (h *HomeClient) TakeOpenAppointments() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	v := h.openAppointments
	h.openAppointments = false
	return v
}
