package screens

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Kaleth2216/FadeApp/internal/models"
)

type fakeOwnerAPI struct {
	mu          sync.Mutex
	release     chan struct{}
	servicesErr error
	deleteErr   error
	added       []models.CreateServiceRequest
	deleted     []int64
}

func newFakeOwnerAPI() *fakeOwnerAPI {
	ch := make(chan struct{})
	close(ch)
	return &fakeOwnerAPI{release: ch}
}

func (f *fakeOwnerAPI) wait(ctx context.Context) {
	select {
	case <-f.release:
	case <-ctx.Done():
	}
}

func (f *fakeOwnerAPI) Get(ctx context.Context, id int64) (*models.Barbershop, error) {
	f.wait(ctx)
	return &models.Barbershop{ID: id, Name: "Fade Central"}, nil
}

func (f *fakeOwnerAPI) ListServices(ctx context.Context, _ int64) ([]models.Service, error) {
	f.wait(ctx)
	if f.servicesErr != nil {
		return nil, f.servicesErr
	}
	return []models.Service{{ID: 1, Name: "Corte", Active: true}}, nil
}

func (f *fakeOwnerAPI) ListActiveBarbers(ctx context.Context, _ int64) ([]models.Barber, error) {
	f.wait(ctx)
	return []models.Barber{{ID: 7, Name: "Andrés", Active: true}}, nil
}

func (f *fakeOwnerAPI) ListPendingAppointments(ctx context.Context, _ int64) ([]models.Appointment, error) {
	f.wait(ctx)
	return []models.Appointment{{ID: 1}, {ID: 2}}, nil
}

func (f *fakeOwnerAPI) AddService(_ context.Context, _ int64, in models.CreateServiceRequest) (*models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.added = append(f.added, in)
	return &models.Service{ID: 9, Name: in.Name, Price: in.Price, Duration: in.Duration, Active: true}, nil
}

func (f *fakeOwnerAPI) DeleteService(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeOwnerAPI) AddBarber(_ context.Context, _ int64, in models.CreateBarberRequest) (*models.Barber, error) {
	return &models.Barber{ID: 11, Name: in.Name, Phone: in.Phone, Active: in.Active}, nil
}

func (f *fakeOwnerAPI) DeleteBarber(_ context.Context, id int64) error {
	return f.DeleteService(context.Background(), id)
}

func TestOwnerPanelRefreshIsolatesFailures(t *testing.T) {
	api := newFakeOwnerAPI()
	api.servicesErr = errors.New("boom")
	p := NewOwnerPanel(api, 1, &fakeUI{}, zerolog.Nop())

	st := p.Refresh(context.Background())

	if st.Barbershop == nil || st.Barbershop.Name != "Fade Central" {
		t.Fatalf("profile = %+v", st.Barbershop)
	}
	if st.Services == nil || len(st.Services) != 0 {
		t.Fatalf("services = %#v, want empty", st.Services)
	}
	if len(st.Barbers) != 1 || st.PendingCount() != 2 {
		t.Fatalf("barbers = %d, pending = %d", len(st.Barbers), st.PendingCount())
	}
	if st.Loading.Any() || st.Refreshing {
		t.Fatalf("flags left set: %+v refreshing=%v", st.Loading, st.Refreshing)
	}
}

func TestOwnerPanelStartDroppedAfterClose(t *testing.T) {
	api := newFakeOwnerAPI()
	api.release = make(chan struct{})
	p := NewOwnerPanel(api, 1, &fakeUI{}, zerolog.Nop())

	h := p.Start(context.Background())
	p.Close()
	close(api.release)

	select {
	case <-h.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("startup load did not finish")
	}
	if applied, _ := h.Wait(); applied {
		t.Fatalf("result applied after Close")
	}
	st := p.State()
	if st.Ready || st.Barbershop != nil || len(st.Pending) != 0 {
		t.Fatalf("state written after Close: %+v", st)
	}
}

func TestOwnerPanelStart(t *testing.T) {
	p := NewOwnerPanel(newFakeOwnerAPI(), 1, &fakeUI{}, zerolog.Nop())
	h := p.Start(context.Background())
	if applied, err := h.Wait(); !applied || err != nil {
		t.Fatalf("Wait = %v, %v", applied, err)
	}
	if st := p.State(); !st.Ready || st.PendingCount() != 2 {
		t.Fatalf("state = %+v", st)
	}
}

func TestOwnerPanelAddService(t *testing.T) {
	ctx := context.Background()
	ui := &fakeUI{}
	api := newFakeOwnerAPI()
	p := NewOwnerPanel(api, 1, ui, zerolog.Nop())

	if _, err := p.AddService(ctx, "Corte", "", "30"); !errors.Is(err, ErrIncomplete) || len(api.added) != 0 {
		t.Fatalf("empty price accepted: %v", err)
	}
	if ui.last() != (alert{TitleIncomplete, MsgIncomplete}) {
		t.Fatalf("alert = %+v", ui.last())
	}

	sv, err := p.AddService(ctx, " Barba ", "15000", "20")
	if err != nil {
		t.Fatalf("AddService: %v", err)
	}
	if sv.Name != "Barba" || api.added[0].Price != 15000 || api.added[0].Duration != 20 {
		t.Fatalf("sent = %+v", api.added)
	}
	if got := p.State().Services; len(got) != 1 || got[0].ID != 9 {
		t.Fatalf("services = %+v", got)
	}
	if ui.last().Title != TitleSuccess {
		t.Fatalf("alert = %+v", ui.last())
	}
}

func TestOwnerPanelDeleteConfirms(t *testing.T) {
	ctx := context.Background()
	ui := &fakeUI{}
	api := newFakeOwnerAPI()
	p := NewOwnerPanel(api, 1, ui, zerolog.Nop())
	p.Refresh(ctx)

	if ok, _ := p.DeleteService(ctx, 1); ok || len(api.deleted) != 0 {
		t.Fatalf("deleted without confirmation")
	}
	if len(ui.confirms) != 1 || !strings.Contains(ui.confirms[0].Message, `"Corte"`) {
		t.Fatalf("confirms = %+v", ui.confirms)
	}

	ui.answer = true
	api.deleteErr = errors.New("boom")
	if ok, _ := p.DeleteService(ctx, 1); ok || len(p.State().Services) != 1 {
		t.Fatalf("failed delete changed the list")
	}

	api.deleteErr = nil
	if ok, err := p.DeleteBarber(ctx, 7); !ok || err != nil {
		t.Fatalf("DeleteBarber = %v, %v", ok, err)
	}
	if len(p.State().Barbers) != 0 || ui.last().Title != TitleDeleted {
		t.Fatalf("barbers = %+v, alert = %+v", p.State().Barbers, ui.last())
	}
}
