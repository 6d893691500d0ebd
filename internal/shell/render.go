package shell

import (
	"strings"

	"github.com/Kaleth2216/FadeApp/internal/booking"
	"github.com/Kaleth2216/FadeApp/internal/domain/appointment"
	"github.com/Kaleth2216/FadeApp/internal/models"
	"github.com/Kaleth2216/FadeApp/internal/screens"
)

func (s *Shell) printShops(list []models.Barbershop) {
	s.term.printf("Barberías en %s:\n", s.views.home.City())
	if len(list) == 0 {
		s.term.printf("  No hay barberías para mostrar.\n")
		return
	}
	for _, b := range list {
		s.term.printf("  [%d] %s, %s\n", b.ID, b.Name, b.Address)
	}
}

func (s *Shell) printShop(b *models.Barbershop) {
	s.term.printf("%s (%s)\n", b.Name, b.City)
	if b.OpeningTime != "" && b.ClosingTime != "" {
		s.term.printf("Horario: %s a %s\n", hhmm(b.OpeningTime), hhmm(b.ClosingTime))
	}
	s.term.printf("Servicios:\n")
	for _, sv := range b.Services {
		s.term.printf("  [%d] %s, %s, %d min\n", sv.ID, sv.Name, booking.Money(sv.Price), sv.Duration)
	}
	s.term.printf("Barberos:\n")
	for _, br := range b.Barbers {
		s.term.printf("  [%d] %s\n", br.ID, br.Name)
	}
}

func (s *Shell) printSlots() {
	s.term.printf("Fechas:")
	for _, d := range s.views.create.Dates() {
		s.term.printf(" %s(%s %s)", d.Key, d.Top, d.Bottom)
	}
	s.term.printf("\nHoras: %s\n", strings.Join(s.views.create.Times(), " "))
}

func (s *Shell) printAppointments(list []models.Appointment) {
	if len(list) == 0 {
		s.term.printf("  No tienes citas.\n")
		return
	}
	loc := s.deps.Clock.Now().Location()
	for _, a := range list {
		when := a.Date
		if t, err := a.Time(loc); err == nil {
			when = t.Format("2006-01-02 15:04")
		}
		s.term.printf("  [%d] %s %s", a.ID, when, appointment.Normalize(a.Status).Label())
		if a.Service != nil {
			s.term.printf(", %s", a.Service.Name)
		}
		if a.Barbershop != nil {
			s.term.printf(", %s", a.Barbershop.Name)
		}
		if a.Client != nil {
			s.term.printf(", %s", a.Client.FullName())
		}
		s.term.printf("\n")
	}
}

func (s *Shell) printSchedules(list []models.Schedule) {
	if len(list) == 0 {
		s.term.printf("  No hay horarios registrados.\n")
		return
	}
	for _, sc := range list {
		state := "disponible"
		if !sc.Available {
			state = "no disponible"
		}
		s.term.printf("  %s %s a %s, %s\n", sc.Day, hhmm(sc.StartTime), hhmm(sc.EndTime), state)
	}
}

func (s *Shell) printPanel(st screens.OwnerState) {
	if st.Barbershop != nil {
		s.term.printf("%s, %s (%s)\n", st.Barbershop.Name, st.Barbershop.Address, st.Barbershop.City)
	}
	s.term.printf("Servicios:\n")
	for _, sv := range st.Services {
		s.term.printf("  [%d] %s, %s\n", sv.ID, sv.Name, booking.Money(sv.Price))
	}
	s.term.printf("Barberos activos:\n")
	for _, b := range st.Barbers {
		s.term.printf("  [%d] %s\n", b.ID, b.Name)
	}
	s.term.printf("Citas pendientes: %d\n", st.PendingCount())
}

// hhmm trims the seconds off "HH:MM:SS".
func hhmm(v string) string {
	if len(v) >= 5 {
		return v[:5]
	}
	return v
}
