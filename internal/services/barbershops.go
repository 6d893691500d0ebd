package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Kaleth2216/FadeApp/internal/apiclient"
	"github.com/Kaleth2216/FadeApp/internal/httpresp"
	"github.com/Kaleth2216/FadeApp/internal/models"
	"github.com/Kaleth2216/FadeApp/internal/validators"
)

const barbershopsPath = "/barbershops"

type Barbershops struct {
	c   *apiclient.Client
	log zerolog.Logger
}

// NormalizeCity turns "Neiva - Huila" into "Neiva".
func NormalizeCity(city string) string {
	city = strings.TrimSpace(city)
	if i := strings.Index(city, " - "); i >= 0 {
		return strings.TrimSpace(city[:i])
	}
	return city
}

func (b *Barbershops) list(ctx context.Context, path string, q url.Values) ([]models.Barbershop, error) {
	var raw []byte
	if err := b.c.Get(ctx, path, q, &raw); err != nil {
		return nil, err
	}
	return httpresp.DecodeList[models.Barbershop](raw), nil
}

// List never fails: an unreachable server yields no barbershops.
func (b *Barbershops) List(ctx context.Context) []models.Barbershop {
	shops, err := b.list(ctx, barbershopsPath, nil)
	if err != nil {
		b.log.Warn().Err(err).Msg("error fetching barbershops")
		return []models.Barbershop{}
	}
	return shops
}

// ListByCity omits the city parameter entirely when it is blank.
func (b *Barbershops) ListByCity(ctx context.Context, city string) []models.Barbershop {
	q := url.Values{}
	if c := NormalizeCity(city); c != "" {
		q.Set("city", c)
	}

	shops, err := b.list(ctx, barbershopsPath, q)
	if err != nil {
		b.log.Warn().Err(err).Str("city", q.Get("city")).Msg("error fetching barbershops by city")
		return []models.Barbershop{}
	}
	b.log.Debug().Int("count", len(shops)).Str("city", q.Get("city")).Msg("barbershops found")
	return shops
}

// Search prefers /barbershops/search and falls back to the plain listing.
func (b *Barbershops) Search(ctx context.Context, query, city string) []models.Barbershop {
	q := url.Values{}
	if s := strings.TrimSpace(query); s != "" {
		q.Set("q", s)
	}
	if c := NormalizeCity(city); c != "" {
		q.Set("city", c)
	}

	var raw []byte
	_, err := b.c.FirstSuccessful(ctx, []apiclient.Request{
		{Method: http.MethodGet, Path: barbershopsPath + "/search", Query: q},
		{Method: http.MethodGet, Path: barbershopsPath, Query: q},
	}, &raw)
	if err != nil {
		b.log.Warn().Err(err).Msg("barbershop search failed")
		return []models.Barbershop{}
	}
	return httpresp.DecodeList[models.Barbershop](raw)
}

func (b *Barbershops) Get(ctx context.Context, id int64) (*models.Barbershop, error) {
	var out models.Barbershop
	if err := b.c.Get(ctx, shopPath(id), nil, &out); err != nil {
		return nil, fail(b.log, "get_barbershop", err, "Error al obtener la barbería")
	}
	return &out, nil
}

func (b *Barbershops) Create(ctx context.Context, shop models.Barbershop) (*models.Barbershop, error) {
	var out models.Barbershop
	if err := b.c.Do(ctx, apiclient.Request{Method: http.MethodPost, Path: barbershopsPath, Body: shop, Auth: true}, &out); err != nil {
		return nil, fail(b.log, "create_barbershop", err, "Error al crear la barbería")
	}
	return &out, nil
}

func (b *Barbershops) Update(ctx context.Context, id int64, patch map[string]any) (*models.Barbershop, error) {
	var out models.Barbershop
	if err := b.c.Do(ctx, apiclient.Request{Method: http.MethodPut, Path: shopPath(id), Body: patch, Auth: true}, &out); err != nil {
		return nil, fail(b.log, "update_barbershop", err, "Error al actualizar la barbería")
	}
	return &out, nil
}

func (b *Barbershops) Delete(ctx context.Context, id int64) error {
	if err := b.c.Do(ctx, apiclient.Request{Method: http.MethodDelete, Path: shopPath(id), Auth: true}, nil); err != nil {
		return fail(b.log, "delete_barbershop", err, "Error al eliminar la barbería")
	}
	return nil
}

// ------------------------------
// Owner-scoped resources
// ------------------------------

func (b *Barbershops) ListServices(ctx context.Context, shopID int64) ([]models.Service, error) {
	var raw []byte
	req := apiclient.Request{Method: http.MethodGet, Path: shopPath(shopID) + "/services/all", Auth: true}
	if err := b.c.Do(ctx, req, &raw); err != nil {
		return nil, fail(b.log, "list_services", err, "Error al obtener los servicios")
	}
	return httpresp.DecodeList[models.Service](raw), nil
}

func (b *Barbershops) AddService(ctx context.Context, shopID int64, in models.CreateServiceRequest) (*models.Service, error) {
	if err := validators.Struct(in); err != nil {
		return nil, err
	}
	var out models.Service
	req := apiclient.Request{Method: http.MethodPost, Path: shopPath(shopID) + "/services", Body: in, Auth: true}
	if err := b.c.Do(ctx, req, &out); err != nil {
		return nil, fail(b.log, "add_service", err, "Error al crear el servicio")
	}
	return &out, nil
}

func (b *Barbershops) DeleteService(ctx context.Context, serviceID int64) error {
	req := apiclient.Request{Method: http.MethodDelete, Path: barbershopsPath + "/services/" + strconv.FormatInt(serviceID, 10), Auth: true}
	if err := b.c.Do(ctx, req, nil); err != nil {
		return fail(b.log, "delete_service", err, "No se pudo eliminar el servicio.")
	}
	return nil
}

func (b *Barbershops) ListActiveBarbers(ctx context.Context, shopID int64) ([]models.Barber, error) {
	var raw []byte
	req := apiclient.Request{Method: http.MethodGet, Path: shopPath(shopID) + "/barbers/active", Auth: true}
	if err := b.c.Do(ctx, req, &raw); err != nil {
		return nil, fail(b.log, "list_barbers", err, "Error al obtener los barberos")
	}
	return httpresp.DecodeList[models.Barber](raw), nil
}

func (b *Barbershops) AddBarber(ctx context.Context, shopID int64, in models.CreateBarberRequest) (*models.Barber, error) {
	in.Active = true
	if err := validators.Struct(in); err != nil {
		return nil, err
	}
	var out models.Barber
	req := apiclient.Request{Method: http.MethodPost, Path: shopPath(shopID) + "/barbers", Body: in, Auth: true}
	if err := b.c.Do(ctx, req, &out); err != nil {
		return nil, fail(b.log, "add_barber", err, "No se pudo agregar el barbero.")
	}
	return &out, nil
}

func (b *Barbershops) DeleteBarber(ctx context.Context, barberID int64) error {
	req := apiclient.Request{Method: http.MethodDelete, Path: barbershopsPath + "/barbers/" + strconv.FormatInt(barberID, 10), Auth: true}
	if err := b.c.Do(ctx, req, nil); err != nil {
		return fail(b.log, "delete_barber", err, "No se pudo eliminar el barbero.")
	}
	return nil
}

// PendingCandidates lists the route shapes the pending-appointments query
// has had across server versions, most specific first.
// TODO: collapse to one request once the server settles on a route.
func PendingCandidates(shopID int64) []apiclient.Request {
	id := strconv.FormatInt(shopID, 10)
	return []apiclient.Request{
		{Method: http.MethodGet, Path: shopPath(shopID) + "/appointments", Query: url.Values{"status": {"PENDING"}}, Auth: true},
		{Method: http.MethodGet, Path: "/appointments", Query: url.Values{"barbershopId": {id}, "status": {"PENDING"}}, Auth: true},
		{Method: http.MethodGet, Path: "/appointments/pending", Query: url.Values{"barbershopId": {id}}, Auth: true},
	}
}

func (b *Barbershops) ListPendingAppointments(ctx context.Context, shopID int64) ([]models.Appointment, error) {
	var raw []byte
	idx, err := b.c.FirstSuccessful(ctx, PendingCandidates(shopID), &raw)
	if err != nil {
		return nil, fail(b.log, "list_pending", err, "Error al obtener las citas pendientes")
	}
	b.log.Debug().Int("candidate", idx).Msg("pending appointments route")
	return httpresp.DecodeList[models.Appointment](raw), nil
}

func shopPath(id int64) string {
	return fmt.Sprintf("%s/%d", barbershopsPath, id)
}
