package devapi

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/Kaleth2216/FadeApp/internal/domain/appointment"
	"github.com/Kaleth2216/FadeApp/internal/models"
)

var (
	ErrNotFound   = errors.New("devapi: not found")
	ErrEmailInUse = errors.New("devapi: email already registered")
	ErrSlotTaken  = errors.New("devapi: barber already booked at that time")
)

// account is a login identity. UserID points at the client, barber or
// barbershop the role refers to.
type account struct {
	Email  string
	Hash   []byte
	Role   string
	UserID int64
}

type shopService struct {
	ShopID int64
	models.Service
}

type shopBarber struct {
	ShopID int64
	models.Barber
}

// Store keeps every resource in memory. All methods return copies.
type Store struct {
	mu     sync.RWMutex
	nextID int64

	accounts     map[string]*account
	shops        map[int64]models.Barbershop
	services     map[int64]shopService
	barbers      map[int64]shopBarber
	clients      map[int64]models.Client
	appointments map[int64]models.Appointment
	schedules    map[int64]models.Schedule
}

func NewStore() *Store {
	return &Store{
		accounts:     map[string]*account{},
		shops:        map[int64]models.Barbershop{},
		services:     map[int64]shopService{},
		barbers:      map[int64]shopBarber{},
		clients:      map[int64]models.Client{},
		appointments: map[int64]models.Appointment{},
		schedules:    map[int64]models.Schedule{},
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// ------------------------------
// Accounts
// ------------------------------

func (s *Store) account(email string) (account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[strings.ToLower(email)]
	if !ok {
		return account{}, false
	}
	return *a, true
}

func (s *Store) addAccount(a account) error {
	key := strings.ToLower(a.Email)
	if _, ok := s.accounts[key]; ok {
		return ErrEmailInUse
	}
	s.accounts[key] = &a
	return nil
}

func (s *Store) CreateClient(c models.Client, hash []byte) (models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[strings.ToLower(c.Email)]; ok {
		return models.Client{}, ErrEmailInUse
	}
	c.ID = s.id()
	c.Active = true
	s.clients[c.ID] = c
	_ = s.addAccount(account{Email: c.Email, Hash: hash, Role: "CLIENT", UserID: c.ID})
	return c, nil
}

func (s *Store) CreateBarbershop(shop models.Barbershop, hash []byte) (models.Barbershop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[strings.ToLower(shop.Email)]; ok {
		return models.Barbershop{}, ErrEmailInUse
	}
	shop.ID = s.id()
	shop.Active = true
	shop.Services, shop.Barbers = nil, nil
	s.shops[shop.ID] = shop
	_ = s.addAccount(account{Email: shop.Email, Hash: hash, Role: "BARBERSHOP", UserID: shop.ID})
	return shop, nil
}

// ------------------------------
// Barbershops
// ------------------------------

func (s *Store) Barbershops(city string) []models.Barbershop {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Barbershop, 0, len(s.shops))
	for _, shop := range s.shops {
		if city != "" && !strings.EqualFold(shop.City, city) {
			continue
		}
		out = append(out, shop)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Barbershop embeds every service and barber, inactive ones included.
func (s *Store) Barbershop(id int64) (models.Barbershop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	shop, ok := s.shops[id]
	if !ok {
		return models.Barbershop{}, ErrNotFound
	}
	shop.Services = s.servicesOf(id)
	shop.Barbers = s.barbersOf(id, false)
	return shop, nil
}

func (s *Store) Services(shopID int64) []models.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.servicesOf(shopID)
}

func (s *Store) servicesOf(shopID int64) []models.Service {
	out := []models.Service{}
	for _, sv := range s.services {
		if sv.ShopID == shopID {
			out = append(out, sv.Service)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) AddService(shopID int64, sv models.Service) (models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.shops[shopID]; !ok {
		return models.Service{}, ErrNotFound
	}
	sv.ID = s.id()
	sv.Active = true
	s.services[sv.ID] = shopService{ShopID: shopID, Service: sv}
	return sv, nil
}

// DeleteService removes a service owned by shopID.
func (s *Store) DeleteService(shopID, serviceID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sv, ok := s.services[serviceID]
	if !ok || sv.ShopID != shopID {
		return ErrNotFound
	}
	delete(s.services, serviceID)
	return nil
}

func (s *Store) ActiveBarbers(shopID int64) []models.Barber {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.barbersOf(shopID, true)
}

func (s *Store) barbersOf(shopID int64, activeOnly bool) []models.Barber {
	out := []models.Barber{}
	for _, b := range s.barbers {
		if b.ShopID != shopID || (activeOnly && !b.Active) {
			continue
		}
		out = append(out, b.Barber)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) AddBarber(shopID int64, b models.Barber) (models.Barber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.shops[shopID]; !ok {
		return models.Barber{}, ErrNotFound
	}
	b.ID = s.id()
	s.barbers[b.ID] = shopBarber{ShopID: shopID, Barber: b}
	return b, nil
}

// AddBarberAccount registers a barber together with a login.
func (s *Store) AddBarberAccount(shopID int64, b models.Barber, hash []byte) (models.Barber, error) {
	created, err := s.AddBarber(shopID, b)
	if err != nil {
		return created, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.addAccount(account{Email: b.Email, Hash: hash, Role: "BARBER", UserID: created.ID}); err != nil {
		delete(s.barbers, created.ID)
		return models.Barber{}, err
	}
	return created, nil
}

func (s *Store) DeleteBarber(shopID, barberID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.barbers[barberID]
	if !ok || b.ShopID != shopID {
		return ErrNotFound
	}
	delete(s.barbers, barberID)
	return nil
}

// ------------------------------
// Appointments
// ------------------------------

// CreateAppointment resolves every reference and rejects a second booking of
// the same barber at the same instant.
func (s *Store) CreateAppointment(in models.CreateAppointmentRequest) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shop, ok := s.shops[in.Barbershop.ID]
	if !ok {
		return models.Appointment{}, ErrNotFound
	}
	sv, ok := s.services[in.Service.ID]
	if !ok || sv.ShopID != shop.ID {
		return models.Appointment{}, ErrNotFound
	}
	b, ok := s.barbers[in.Barber.ID]
	if !ok || b.ShopID != shop.ID {
		return models.Appointment{}, ErrNotFound
	}
	cl, ok := s.clients[in.Client.ID]
	if !ok {
		return models.Appointment{}, ErrNotFound
	}

	for _, a := range s.appointments {
		if a.Barber.ID == b.ID && a.Date == in.Date && appointment.Status(a.Status) != appointment.StatusCancelled {
			return models.Appointment{}, ErrSlotTaken
		}
	}

	shop.Services, shop.Barbers = nil, nil
	service, barber := sv.Service, b.Barber
	a := models.Appointment{
		ID:         s.id(),
		Date:       in.Date,
		Status:     string(appointment.Normalize(in.Status)),
		Service:    &service,
		Barber:     &barber,
		Client:     &cl,
		Barbershop: &shop,
	}
	s.appointments[a.ID] = a
	return a, nil
}

func (s *Store) Appointment(id int64) (models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.appointments[id]
	if !ok {
		return models.Appointment{}, ErrNotFound
	}
	return a, nil
}

// Appointments returns the entries matching keep, ordered by date.
func (s *Store) Appointments(keep func(models.Appointment) bool) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Appointment{}
	for _, a := range s.appointments {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date == out[j].Date {
			return out[i].ID < out[j].ID
		}
		return out[i].Date < out[j].Date
	})
	return out
}

func (s *Store) DeleteAppointment(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.appointments[id]; !ok {
		return ErrNotFound
	}
	delete(s.appointments, id)
	return nil
}

func (s *Store) SetAppointmentStatus(id int64, next appointment.Status) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.appointments[id]
	if !ok {
		return models.Appointment{}, ErrNotFound
	}
	if err := appointment.CanTransition(appointment.Normalize(a.Status), next); err != nil {
		return models.Appointment{}, err
	}
	a.Status = string(next)
	s.appointments[id] = a
	return a, nil
}

// ------------------------------
// Schedules
// ------------------------------

func (s *Store) AddSchedule(barberID int64, sc models.Schedule) (models.Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.barbers[barberID]
	if !ok {
		return models.Schedule{}, ErrNotFound
	}
	barber := b.Barber
	sc.ID = s.id()
	sc.Barber = &barber
	s.schedules[sc.ID] = sc
	return sc, nil
}

func (s *Store) Schedules(barberID int64) []models.Schedule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Schedule{}
	for _, sc := range s.schedules {
		if sc.Barber != nil && sc.Barber.ID == barberID {
			out = append(out, sc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ShopOf reports which barbershop a barber works at.
func (s *Store) ShopOf(barberID int64) (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.barbers[barberID]
	return b.ShopID, ok
}
