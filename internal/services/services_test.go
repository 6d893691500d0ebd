package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Kaleth2216/FadeApp/internal/apiclient"
	"github.com/Kaleth2216/FadeApp/internal/devapi"
	"github.com/Kaleth2216/FadeApp/internal/httperr"
	"github.com/Kaleth2216/FadeApp/internal/models"
	"github.com/Kaleth2216/FadeApp/internal/sessionstore"
)

type harness struct {
	api   *API
	store *sessionstore.Memory
	ids   devapi.Seeded
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := devapi.NewStore()
	ids, err := devapi.Seed(db)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	srv := httptest.NewServer(devapi.New(db, devapi.Options{JWTSecret: "test"}).Handler())
	t.Cleanup(srv.Close)

	return newHarnessAt(t, srv.URL+"/api", ids)
}

func newHarnessAt(t *testing.T, baseURL string, ids devapi.Seeded) *harness {
	t.Helper()
	store := sessionstore.NewMemory()
	c := apiclient.New(apiclient.Options{BaseURL: baseURL}, store, zerolog.Nop())
	return &harness{api: New(c, zerolog.Nop()), store: store, ids: ids}
}

func (h *harness) loginAs(t *testing.T, email string) *models.LoginResponse {
	t.Helper()
	ctx := context.Background()
	res, err := h.api.Auth.Login(ctx, email, devapi.SeedPassword)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := h.store.Set(ctx, sessionstore.KeyToken, res.Token); err != nil {
		t.Fatalf("Set: %v", err)
	}
	return res
}

func TestNormalizeCity(t *testing.T) {
	tests := map[string]string{
		"Neiva - Huila":  "Neiva",
		"  Bogotá  ":     "Bogotá",
		"":               "",
		"Cali-Valle":     "Cali-Valle",
		"Pitalito - H -": "Pitalito",
	}
	for in, want := range tests {
		if got := NormalizeCity(in); got != want {
			t.Fatalf("NormalizeCity(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAuthLogin(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	res, err := h.api.Auth.Login(ctx, "  CLIENTE@fadeapp.co ", devapi.SeedPassword)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Role != "CLIENT" || res.UserID != h.ids.ClientID || res.Token == "" {
		t.Fatalf("login = %+v", res)
	}

	_, err = h.api.Auth.Login(ctx, devapi.SeedClientEmail, "wrong")
	var ue *httperr.UserError
	if !errors.As(err, &ue) || ue.Message != "Credenciales inválidas." || !httperr.IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("bad password err = %v", err)
	}

	if _, err := h.api.Auth.Login(ctx, "no-es-correo", "x"); !httperr.IsValidation(err, "invalid_email") {
		t.Fatalf("malformed email err = %v", err)
	}
}

func TestAuthRegister(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	client, err := h.api.Auth.RegisterClient(ctx, models.RegisterClientRequest{
		FirstName: "Ana", LastName: "Ruiz", City: "Neiva", Email: "Ana@FadeApp.co", Password: "secreto",
	})
	if err != nil {
		t.Fatalf("RegisterClient: %v", err)
	}
	if client.ID == 0 || client.Email != "ana@fadeapp.co" {
		t.Fatalf("client = %+v", client)
	}

	if _, err := h.api.Auth.RegisterClient(ctx, models.RegisterClientRequest{Email: "x@y.co"}); !httperr.IsValidation(err, "missing_fields") {
		t.Fatalf("incomplete form err = %v", err)
	}

	shop, err := h.api.Auth.RegisterBarbershop(ctx, models.RegisterBarbershopRequest{
		Name: "Nueva", Address: "Calle 1", City: "Neiva", Email: "nueva@fadeapp.co", Password: "secreto",
	})
	if err != nil || shop.ID == 0 {
		t.Fatalf("RegisterBarbershop = %+v, %v", shop, err)
	}
}

func TestBarbershopListing(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	if got := h.api.Barbershops.List(ctx); len(got) != 3 {
		t.Fatalf("List = %d shops", len(got))
	}
	if got := h.api.Barbershops.ListByCity(ctx, "Neiva - Huila"); len(got) != 2 {
		t.Fatalf("ListByCity(Neiva - Huila) = %d shops", len(got))
	}
	if got := h.api.Barbershops.ListByCity(ctx, ""); len(got) != 3 {
		t.Fatalf("ListByCity(\"\") = %d shops", len(got))
	}
	// The dev API has no /search route, so this exercises the fallback.
	if got := h.api.Barbershops.Search(ctx, "fade", "Bogotá"); len(got) != 1 || got[0].City != "Bogotá" {
		t.Fatalf("Search = %+v", got)
	}

	shop, err := h.api.Barbershops.Get(ctx, h.ids.ShopID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(shop.Displayable().Barbers) != 1 {
		t.Fatalf("active barbers = %+v", shop.Displayable().Barbers)
	}

	if _, err := h.api.Barbershops.Get(ctx, 9999); !httperr.IsStatus(err, http.StatusNotFound) {
		t.Fatalf("missing shop err = %v", err)
	}
}

func TestBarbershopListingUnreachable(t *testing.T) {
	h := newHarnessAt(t, "http://127.0.0.1:1/api", devapi.Seeded{})
	ctx := context.Background()

	if got := h.api.Barbershops.ListByCity(ctx, "Neiva"); got == nil || len(got) != 0 {
		t.Fatalf("ListByCity = %#v", got)
	}
	if got := h.api.Barbershops.Search(ctx, "x", ""); got == nil || len(got) != 0 {
		t.Fatalf("Search = %#v", got)
	}
}

func TestOwnerCatalog(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	if _, err := h.api.Barbershops.AddService(ctx, h.ids.ShopID, models.CreateServiceRequest{Name: "Cejas", Price: 8000, Duration: 10}); !httperr.IsValidation(err, apiclient.CodeLoginRequired) {
		t.Fatalf("anonymous AddService err = %v", err)
	}

	h.loginAs(t, devapi.SeedOwnerEmail)

	sv, err := h.api.Barbershops.AddService(ctx, h.ids.ShopID, models.CreateServiceRequest{Name: "Cejas", Price: 8000, Duration: 10})
	if err != nil {
		t.Fatalf("AddService: %v", err)
	}
	services, err := h.api.Barbershops.ListServices(ctx, h.ids.ShopID)
	if err != nil || len(services) != 3 {
		t.Fatalf("ListServices = %d, %v", len(services), err)
	}
	if err := h.api.Barbershops.DeleteService(ctx, sv.ID); err != nil {
		t.Fatalf("DeleteService: %v", err)
	}

	b, err := h.api.Barbershops.AddBarber(ctx, h.ids.ShopID, models.CreateBarberRequest{Name: "Camilo", Phone: "300"})
	if err != nil || !b.Active {
		t.Fatalf("AddBarber = %+v, %v", b, err)
	}
	barbers, err := h.api.Barbershops.ListActiveBarbers(ctx, h.ids.ShopID)
	if err != nil || len(barbers) != 2 {
		t.Fatalf("ListActiveBarbers = %d, %v", len(barbers), err)
	}
	if err := h.api.Barbershops.DeleteBarber(ctx, b.ID); err != nil {
		t.Fatalf("DeleteBarber: %v", err)
	}

	if _, err := h.api.Barbershops.AddBarber(ctx, h.ids.ShopID, models.CreateBarberRequest{Name: "Sin teléfono"}); !httperr.IsValidation(err, "missing_fields") {
		t.Fatalf("incomplete barber err = %v", err)
	}

	_, err = h.api.Barbershops.AddService(ctx, h.ids.OtherShopID, models.CreateServiceRequest{Name: "x", Duration: 5})
	if !httperr.IsStatus(err, http.StatusForbidden) || httperr.Message(err, "") != "No puedes modificar otra barbería." {
		t.Fatalf("foreign shop err = %v", err)
	}
}

func TestPendingAppointmentsFirstCandidate(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.loginAs(t, devapi.SeedClientEmail)
	_, err := h.api.Appointments.Create(ctx, models.CreateAppointmentRequest{
		Date:       "2026-10-20T10:00:00",
		Barber:     models.Ref{ID: h.ids.BarberID},
		Service:    models.Ref{ID: h.ids.ServiceID},
		Barbershop: models.Ref{ID: h.ids.ShopID},
		Client:     models.Ref{ID: h.ids.ClientID},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	h.loginAs(t, devapi.SeedOwnerEmail)
	pending, err := h.api.Barbershops.ListPendingAppointments(ctx, h.ids.ShopID)
	if err != nil {
		t.Fatalf("ListPendingAppointments: %v", err)
	}
	if len(pending) != 1 || pending[0].Status != "PENDING" {
		t.Fatalf("pending = %+v", pending)
	}
}

func TestPendingAppointmentsFallsThroughCandidates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var (
		mu   sync.Mutex
		hits []string
	)
	r.Use(func(c *gin.Context) {
		mu.Lock()
		hits = append(hits, c.Request.URL.Path)
		mu.Unlock()
		c.Next()
	})
	r.GET("/api/appointments/pending", func(c *gin.Context) {
		if c.Query("barbershopId") != "4" {
			c.Status(http.StatusBadRequest)
			return
		}
		c.JSON(http.StatusOK, []gin.H{{"id": 11, "status": "PENDING"}, {"id": 12}})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	h := newHarnessAt(t, srv.URL+"/api", devapi.Seeded{})
	_ = h.store.Set(context.Background(), sessionstore.KeyToken, "tok")

	got, err := h.api.Barbershops.ListPendingAppointments(context.Background(), 4)
	if err != nil {
		t.Fatalf("ListPendingAppointments: %v", err)
	}
	if len(got) != 2 || got[0].ID != 11 {
		t.Fatalf("pending = %+v", got)
	}
	mu.Lock()
	defer mu.Unlock()
	if len(hits) != 3 || hits[0] != "/api/barbershops/4/appointments" || hits[1] != "/api/appointments" {
		t.Fatalf("hits = %v", hits)
	}
}

func TestAppointmentsLifecycle(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	if _, err := h.api.Appointments.Mine(ctx); !httperr.IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("anonymous Mine err = %v", err)
	}

	h.loginAs(t, devapi.SeedClientEmail)

	created, err := h.api.Appointments.Create(ctx, models.CreateAppointmentRequest{
		Date:       "2026-10-21T15:30:00",
		Barber:     models.Ref{ID: h.ids.BarberID},
		Service:    models.Ref{ID: h.ids.ServiceID},
		Barbershop: models.Ref{ID: h.ids.ShopID},
		Client:     models.Ref{ID: h.ids.ClientID},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Status != "PENDING" {
		t.Fatalf("status = %q", created.Status)
	}

	mine, err := h.api.Appointments.Mine(ctx)
	if err != nil || len(mine) != 1 || mine[0].ID != created.ID {
		t.Fatalf("Mine = %+v, %v", mine, err)
	}

	got, err := h.api.Appointments.Get(ctx, created.ID)
	if err != nil || got.Service == nil || got.Service.ID != h.ids.ServiceID {
		t.Fatalf("Get = %+v, %v", got, err)
	}

	if _, err := h.api.Appointments.UpdateStatus(ctx, created.ID, "LISTO"); !httperr.IsValidation(err, "invalid_status") {
		t.Fatalf("unknown status err = %v", err)
	}

	if err := h.api.Appointments.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	err = h.api.Appointments.Delete(ctx, created.ID)
	if !httperr.IsStatus(err, http.StatusNotFound) {
		t.Fatalf("second Delete err = %v", err)
	}
}

func TestAppointmentStatusByBarber(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.loginAs(t, devapi.SeedClientEmail)
	created, err := h.api.Appointments.Create(ctx, models.CreateAppointmentRequest{
		Date:       "2026-10-22T09:00:00",
		Barber:     models.Ref{ID: h.ids.BarberID},
		Service:    models.Ref{ID: h.ids.ServiceID},
		Barbershop: models.Ref{ID: h.ids.ShopID},
		Client:     models.Ref{ID: h.ids.ClientID},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	h.loginAs(t, devapi.SeedBarberEmail)
	updated, err := h.api.Appointments.UpdateStatus(ctx, created.ID, "confirmed")
	if err != nil || updated.Status != "CONFIRMED" {
		t.Fatalf("UpdateStatus = %+v, %v", updated, err)
	}

	schedules, err := h.api.Schedules.ByBarber(ctx, h.ids.BarberID)
	if err != nil || len(schedules) != 2 {
		t.Fatalf("ByBarber = %d, %v", len(schedules), err)
	}
}
