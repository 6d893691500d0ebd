package screens

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/Kaleth2216/FadeApp/internal/models"
	"github.com/Kaleth2216/FadeApp/internal/task"
)

const (
	TitleConfirmDelete = "Confirmar eliminación"
	TitleDeleted       = "Eliminado"
)

type OwnerAPI interface {
	Get(ctx context.Context, id int64) (*models.Barbershop, error)
	ListServices(ctx context.Context, shopID int64) ([]models.Service, error)
	ListActiveBarbers(ctx context.Context, shopID int64) ([]models.Barber, error)
	ListPendingAppointments(ctx context.Context, shopID int64) ([]models.Appointment, error)
	AddService(ctx context.Context, shopID int64, in models.CreateServiceRequest) (*models.Service, error)
	DeleteService(ctx context.Context, serviceID int64) error
	AddBarber(ctx context.Context, shopID int64, in models.CreateBarberRequest) (*models.Barber, error)
	DeleteBarber(ctx context.Context, barberID int64) error
}

// Loading tells which of the four panel fetches are still running.
type Loading struct {
	Profile  bool
	Services bool
	Barbers  bool
	Pending  bool
}

func (l Loading) Any() bool {
	return l.Profile || l.Services || l.Barbers || l.Pending
}

// OwnerState is a snapshot of what the panel shows.
type OwnerState struct {
	Barbershop *models.Barbershop
	Services   []models.Service
	Barbers    []models.Barber
	Pending    []models.Appointment
	Loading    Loading
	Refreshing bool
	Ready      bool
}

func (s OwnerState) PendingCount() int {
	return len(s.Pending)
}

// OwnerPanel is the barbershop owner's home: profile, services, barbers and
// pending appointments, each fetched and gated on its own.
type OwnerPanel struct {
	api    OwnerAPI
	shopID int64
	ui     UI
	log    zerolog.Logger
	view   *task.View

	mu    sync.Mutex
	state OwnerState
}

func NewOwnerPanel(api OwnerAPI, shopID int64, ui UI, log zerolog.Logger) *OwnerPanel {
	return &OwnerPanel{
		api:    api,
		shopID: shopID,
		ui:     ui,
		log:    log.With().Str("screen", "home_barbershop").Int64("barbershop_id", shopID).Logger(),
		view:   task.NewView(),
		state: OwnerState{
			Services: []models.Service{},
			Barbers:  []models.Barber{},
			Pending:  []models.Appointment{},
		},
	}
}

func (p *OwnerPanel) State() OwnerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := p.state
	s.Services = append(make([]models.Service, 0, len(s.Services)), s.Services...)
	s.Barbers = append(make([]models.Barber, 0, len(s.Barbers)), s.Barbers...)
	s.Pending = append(make([]models.Appointment, 0, len(s.Pending)), s.Pending...)
	return s
}

// Start runs the first load in the background. Its results are applied only
// while the panel is open.
func (p *OwnerPanel) Start(ctx context.Context) *task.Handle {
	return task.Run(ctx, p.view, func(ctx context.Context) (struct{}, error) {
		p.reload(ctx, p.view)
		return struct{}{}, nil
	}, func(struct{}, error) {
		p.mu.Lock()
		p.state.Ready = true
		p.mu.Unlock()
	})
}

// Close tears the panel down. In-flight startup fetches finish but are dropped.
func (p *OwnerPanel) Close() {
	p.view.Close()
}

// Refresh runs all four fetches concurrently and returns once every one has
// settled. A failing fetch only empties its own section.
func (p *OwnerPanel) Refresh(ctx context.Context) OwnerState {
	p.mu.Lock()
	p.state.Refreshing = true
	p.mu.Unlock()

	p.reload(ctx, nil)

	p.mu.Lock()
	p.state.Refreshing = false
	p.mu.Unlock()
	return p.State()
}

// reload applies each result as it arrives. A non-nil view gates the
// writes on it still being active.
func (p *OwnerPanel) reload(ctx context.Context, view *task.View) {
	var g errgroup.Group

	g.Go(func() error {
		p.track(view, func(l *Loading) *bool { return &l.Profile })
		shop, err := p.api.Get(ctx, p.shopID)
		if err != nil {
			p.log.Warn().Err(err).Msg("error loading barbershop")
		}
		p.apply(view, func(s *OwnerState) { s.Barbershop = shop; s.Loading.Profile = false })
		return nil
	})
	g.Go(func() error {
		p.track(view, func(l *Loading) *bool { return &l.Services })
		list, err := p.api.ListServices(ctx, p.shopID)
		if err != nil {
			p.log.Warn().Err(err).Msg("error loading services")
			list = []models.Service{}
		}
		p.apply(view, func(s *OwnerState) { s.Services = list; s.Loading.Services = false })
		return nil
	})
	g.Go(func() error {
		p.track(view, func(l *Loading) *bool { return &l.Barbers })
		list, err := p.api.ListActiveBarbers(ctx, p.shopID)
		if err != nil {
			p.log.Warn().Err(err).Msg("error loading barbers")
			list = []models.Barber{}
		}
		p.apply(view, func(s *OwnerState) { s.Barbers = list; s.Loading.Barbers = false })
		return nil
	})
	g.Go(func() error {
		p.track(view, func(l *Loading) *bool { return &l.Pending })
		list, err := p.api.ListPendingAppointments(ctx, p.shopID)
		if err != nil {
			p.log.Warn().Err(err).Msg("error loading pending appointments")
			list = []models.Appointment{}
		}
		p.apply(view, func(s *OwnerState) { s.Pending = list; s.Loading.Pending = false })
		return nil
	})

	_ = g.Wait()
}

func (p *OwnerPanel) track(view *task.View, flag func(*Loading) *bool) {
	p.apply(view, func(s *OwnerState) { *flag(&s.Loading) = true })
}

func (p *OwnerPanel) apply(view *task.View, fn func(*OwnerState)) {
	if view != nil && !view.Active() {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(&p.state)
}

// ------------------------------
// Catalog edits
// ------------------------------

// AddService takes the raw form fields. All three are required.
func (p *OwnerPanel) AddService(ctx context.Context, name, price, duration string) (*models.Service, error) {
	name, price, duration = strings.TrimSpace(name), strings.TrimSpace(price), strings.TrimSpace(duration)
	if name == "" || price == "" || duration == "" {
		p.ui.Alert(TitleIncomplete, MsgIncomplete)
		return nil, ErrIncomplete
	}
	pr, err1 := strconv.ParseFloat(price, 64)
	du, err2 := strconv.Atoi(duration)
	if err1 != nil || err2 != nil {
		p.ui.Alert(TitleError, "Precio o duración inválidos.")
		return nil, ErrIncomplete
	}

	sv, err := p.api.AddService(ctx, p.shopID, models.CreateServiceRequest{Name: name, Price: pr, Duration: du})
	if err != nil {
		alertErr(p.ui, TitleError, err, "No se pudo agregar el servicio.")
		return nil, err
	}

	p.mu.Lock()
	p.state.Services = append(p.state.Services, *sv)
	p.mu.Unlock()
	p.ui.Alert(TitleSuccess, "Servicio agregado correctamente.")
	return sv, nil
}

func (p *OwnerPanel) AddBarber(ctx context.Context, name, phone string) (*models.Barber, error) {
	name, phone = strings.TrimSpace(name), strings.TrimSpace(phone)
	if name == "" || phone == "" {
		p.ui.Alert(TitleIncomplete, MsgIncomplete)
		return nil, ErrIncomplete
	}

	b, err := p.api.AddBarber(ctx, p.shopID, models.CreateBarberRequest{Name: name, Phone: phone, Active: true})
	if err != nil {
		alertErr(p.ui, TitleError, err, "No se pudo agregar el barbero.")
		return nil, err
	}

	p.mu.Lock()
	p.state.Barbers = append(p.state.Barbers, *b)
	p.mu.Unlock()
	p.ui.Alert(TitleSuccess, "Barbero agregado correctamente.")
	return b, nil
}

// DeleteService asks first and removes the entry locally on success.
func (p *OwnerPanel) DeleteService(ctx context.Context, id int64) (bool, error) {
	name := p.serviceName(id)
	if !p.ui.Confirm(TitleConfirmDelete, fmt.Sprintf("¿Deseas eliminar el servicio %q?", name)) {
		return false, nil
	}
	if err := p.api.DeleteService(ctx, id); err != nil {
		alertErr(p.ui, TitleError, err, "No se pudo eliminar el servicio.")
		return false, err
	}

	p.mu.Lock()
	p.state.Services = removeByID(p.state.Services, id, func(s models.Service) int64 { return s.ID })
	p.mu.Unlock()
	p.ui.Alert(TitleDeleted, fmt.Sprintf("El servicio %q fue eliminado correctamente.", name))
	return true, nil
}

func (p *OwnerPanel) DeleteBarber(ctx context.Context, id int64) (bool, error) {
	name := p.barberName(id)
	if !p.ui.Confirm(TitleConfirmDelete, fmt.Sprintf("¿Deseas eliminar al barbero %q?", name)) {
		return false, nil
	}
	if err := p.api.DeleteBarber(ctx, id); err != nil {
		alertErr(p.ui, TitleError, err, "No se pudo eliminar el barbero.")
		return false, err
	}

	p.mu.Lock()
	p.state.Barbers = removeByID(p.state.Barbers, id, func(b models.Barber) int64 { return b.ID })
	p.mu.Unlock()
	p.ui.Alert(TitleDeleted, fmt.Sprintf("El barbero %q fue eliminado correctamente.", name))
	return true, nil
}

func (p *OwnerPanel) serviceName(id int64) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, s := range p.state.Services {
		if s.ID == id {
			return s.Name
		}
	}
	return fmt.Sprintf("#%d", id)
}

func (p *OwnerPanel) barberName(id int64) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, b := range p.state.Barbers {
		if b.ID == id {
			return b.Name
		}
	}
	return fmt.Sprintf("#%d", id)
}

func removeByID[T any](list []T, id int64, key func(T) int64) []T {
	out := make([]T, 0, len(list))
	for _, it := range list {
		if key(it) != id {
			out = append(out, it)
		}
	}
	return out
}
