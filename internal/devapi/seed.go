package devapi

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/Kaleth2216/FadeApp/internal/models"
)

const (
	SeedPassword    = "fade123"
	SeedClientEmail = "cliente@fadeapp.co"
	SeedOwnerEmail  = "barberia@fadeapp.co"
	SeedBarberEmail = "barbero@fadeapp.co"
)

// Seeded holds the ids Seed created.
type Seeded struct {
	ClientID    int64
	ShopID      int64
	OtherShopID int64
	BarberID    int64
	ServiceID   int64
}

// Seed loads a demo catalog: two barbershops in Neiva and one in Bogotá,
// one account per role, all sharing SeedPassword.
func Seed(s *Store) (Seeded, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.MinCost)
	if err != nil {
		return Seeded{}, err
	}

	var out Seeded

	shop, err := s.CreateBarbershop(models.Barbershop{
		Name:        "Fade Central",
		Address:     "Cra 5 # 10-20",
		City:        "Neiva",
		Email:       SeedOwnerEmail,
		OpeningTime: "09:00:00",
		ClosingTime: "19:00:00",
	}, hash)
	if err != nil {
		return out, err
	}
	out.ShopID = shop.ID

	corte, _ := s.AddService(shop.ID, models.Service{Name: "Corte clásico", Price: 25000, Duration: 30})
	out.ServiceID = corte.ID
	_, _ = s.AddService(shop.ID, models.Service{Name: "Barba", Price: 15000, Duration: 20})

	barber, err := s.AddBarberAccount(shop.ID, models.Barber{
		Name:      "Andrés",
		Email:     SeedBarberEmail,
		Phone:     "3001234567",
		Specialty: "Fade",
		Active:    true,
	}, hash)
	if err != nil {
		return out, err
	}
	out.BarberID = barber.ID
	_, _ = s.AddBarber(shop.ID, models.Barber{Name: "Julián", Phone: "3007654321", Active: false})

	_, _ = s.AddSchedule(barber.ID, models.Schedule{Day: "MONDAY", StartTime: "09:00:00", EndTime: "13:00:00", Available: true})
	_, _ = s.AddSchedule(barber.ID, models.Schedule{Day: "TUESDAY", StartTime: "14:00:00", EndTime: "19:00:00", Available: true})

	other, err := s.CreateBarbershop(models.Barbershop{
		Name:    "Barbería del Huila",
		Address: "Calle 8 # 4-15",
		City:    "Neiva",
		Email:   "huila@fadeapp.co",
	}, hash)
	if err != nil {
		return out, err
	}
	out.OtherShopID = other.ID

	if _, err := s.CreateBarbershop(models.Barbershop{
		Name:    "Bogotá Cuts",
		Address: "Av 19 # 100-10",
		City:    "Bogotá",
		Email:   "bogota@fadeapp.co",
	}, hash); err != nil {
		return out, err
	}

	client, err := s.CreateClient(models.Client{
		FirstName: "Laura",
		LastName:  "Gómez",
		Email:     SeedClientEmail,
		Phone:     "3110000000",
		City:      "Neiva",
	}, hash)
	if err != nil {
		return out, err
	}
	out.ClientID = client.ID

	return out, nil
}
