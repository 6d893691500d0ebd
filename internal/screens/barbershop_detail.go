package screens

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Kaleth2216/FadeApp/internal/booking"
	"github.com/Kaleth2216/FadeApp/internal/httperr"
	"github.com/Kaleth2216/FadeApp/internal/models"
)

const LoadShopFailedMsg = "No se pudo cargar la barbería."

var ErrChooseServiceAndBarber = httperr.ErrValidation("incomplete_selection", "Elige un servicio y un barbero.")

type BarbershopGetter interface {
	Get(ctx context.Context, id int64) (*models.Barbershop, error)
}

// BarbershopDetail shows one barbershop with its active services and barbers.
type BarbershopDetail struct {
	api BarbershopGetter
	ui  UI
	log zerolog.Logger

	mu        sync.Mutex
	shop      *models.Barbershop
	serviceID int64
	barberID  int64
}

func NewBarbershopDetail(api BarbershopGetter, ui UI, log zerolog.Logger) *BarbershopDetail {
	return &BarbershopDetail{api: api, ui: ui, log: log.With().Str("screen", "barbershop_detail").Logger()}
}

func (d *BarbershopDetail) Load(ctx context.Context, id int64) (*models.Barbershop, error) {
	raw, err := d.api.Get(ctx, id)
	if err != nil {
		alertErr(d.ui, TitleError, err, LoadShopFailedMsg)
		return nil, err
	}
	shop := raw.Displayable()

	d.mu.Lock()
	defer d.mu.Unlock()
	d.shop = &shop
	d.serviceID, d.barberID = 0, 0
	return &shop, nil
}

func (d *BarbershopDetail) Shop() *models.Barbershop {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.shop
}

// Choose picks a service and a barber shown on the screen.
func (d *BarbershopDetail) Choose(serviceID, barberID int64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.shop == nil || !hasService(d.shop.Services, serviceID) || !hasBarber(d.shop.Barbers, barberID) {
		return ErrChooseServiceAndBarber
	}
	d.serviceID, d.barberID = serviceID, barberID
	return nil
}

// Selection is what the booking screen starts from. Ids that were not chosen
// stay zero and the draft will report them.
func (d *BarbershopDetail) Selection() booking.Selection {
	d.mu.Lock()
	defer d.mu.Unlock()
	var sel booking.Selection
	if d.shop != nil {
		sel.BarbershopID = d.shop.ID
	}
	sel.ServiceID, sel.BarberID = d.serviceID, d.barberID
	return sel
}

func hasService(list []models.Service, id int64) bool {
	for _, s := range list {
		if s.ID == id {
			return true
		}
	}
	return false
}

func hasBarber(list []models.Barber, id int64) bool {
	for _, b := range list {
		if b.ID == id {
			return true
		}
	}
	return false
}
