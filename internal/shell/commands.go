package shell

import (
	"strconv"
	"strings"

	"github.com/Kaleth2216/FadeApp/internal/httperr"
	"github.com/Kaleth2216/FadeApp/internal/models"
	"github.com/Kaleth2216/FadeApp/internal/router"
	"github.com/Kaleth2216/FadeApp/internal/screens"
)

type command struct {
	name  string
	usage string
	help  string
	args  int
	run   func(s *Shell, args []string) error
}

var sessionCommands = []command{
	{name: "profile", usage: "profile", help: "Muestra tu perfil", run: (*Shell).profile},
	{name: "logout", usage: "logout", help: "Cierra la sesión", run: (*Shell).logout},
}

var commands = map[router.Kind][]command{
	router.KindGuest: {
		{name: "login", usage: "login [correo] [contraseña]", help: "Inicia sesión", run: (*Shell).login},
		{name: "register-client", usage: "register-client", help: "Crea una cuenta de cliente", run: (*Shell).registerClient},
		{name: "register-barbershop", usage: "register-barbershop", help: "Registra una barbería", run: (*Shell).registerBarbershop},
	},
	router.KindClient: append([]command{
		{name: "city", usage: "city", help: "Cambia entre Neiva y Bogotá", run: (*Shell).toggleCity},
		{name: "search", usage: "search [texto]", help: "Filtra las barberías por nombre", run: (*Shell).search},
		{name: "open", usage: "open <id>", help: "Abre una barbería", args: 1, run: (*Shell).open},
		{name: "book", usage: "book <servicio> <barbero>", help: "Empieza una reserva", args: 2, run: (*Shell).book},
		{name: "date", usage: "date <AAAA-MM-DD>", help: "Elige la fecha", args: 1, run: (*Shell).pickDate},
		{name: "time", usage: "time <HH:MM>", help: "Elige la hora", args: 1, run: (*Shell).pickTime},
		{name: "submit", usage: "submit", help: "Agenda la cita", run: (*Shell).submit},
		{name: "appointments", usage: "appointments", help: "Muestra tus citas", run: (*Shell).clientAppointments},
		{name: "cancel", usage: "cancel <id>", help: "Cancela una cita", args: 1, run: (*Shell).cancel},
		{name: "back", usage: "back", help: "Vuelve a la pantalla anterior", run: (*Shell).back},
	}, sessionCommands...),
	router.KindBarber: append([]command{
		{name: "schedules", usage: "schedules", help: "Muestra tus horarios", run: (*Shell).schedules},
		{name: "appointments", usage: "appointments", help: "Muestra tus citas asignadas", run: (*Shell).barberAppointments},
		{name: "status", usage: "status <id> <estado>", help: "Cambia el estado de una cita", args: 2, run: (*Shell).status},
		{name: "back", usage: "back", help: "Vuelve a la pantalla anterior", run: (*Shell).back},
	}, sessionCommands...),
	router.KindOwner: append([]command{
		{name: "refresh", usage: "refresh", help: "Recarga el panel", run: (*Shell).refresh},
		{name: "add-service", usage: "add-service", help: "Agrega un servicio", run: (*Shell).addService},
		{name: "add-barber", usage: "add-barber", help: "Agrega un barbero", run: (*Shell).addBarber},
		{name: "rm-service", usage: "rm-service <id>", help: "Elimina un servicio", args: 1, run: (*Shell).removeService},
		{name: "rm-barber", usage: "rm-barber <id>", help: "Elimina un barbero", args: 1, run: (*Shell).removeBarber},
		{name: "pending", usage: "pending", help: "Muestra las citas pendientes", run: (*Shell).pending},
	}, sessionCommands...),
}

func lookup(kind router.Kind, name string) (command, bool) {
	for _, c := range commands[kind] {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, usageError("Id inválido: " + raw)
	}
	return id, nil
}

// ------------------------------
// Guest
// ------------------------------

func (s *Shell) login(args []string) error {
	email, password := "", ""
	if len(args) > 0 {
		email = args[0]
	} else {
		email, _ = s.term.prompt("Correo")
	}
	if len(args) > 1 {
		password = args[1]
	} else {
		password, _ = s.term.prompt("Contraseña")
	}
	// The screen alerts; a successful login remounts through onState.
	_ = s.views.login.Submit(s.ctx, email, password)
	return nil
}

// fields prompts for each label in order and stops early on end of input.
func (s *Shell) fields(labels ...string) ([]string, bool) {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		v, ok := s.term.prompt(l)
		if !ok {
			return nil, false
		}
		out = append(out, v)
	}
	return out, true
}

func (s *Shell) registerClient([]string) error {
	f, ok := s.fields("Nombre", "Apellido", "Ciudad", "Correo", "Teléfono (opcional)", "Contraseña")
	if !ok {
		return nil
	}
	_ = s.views.register.Client(s.ctx, models.RegisterClientRequest{
		FirstName: f[0], LastName: f[1], City: f[2], Email: f[3], Phone: f[4], Password: f[5],
	})
	return nil
}

func (s *Shell) registerBarbershop([]string) error {
	f, ok := s.fields("Nombre de la barbería", "Dirección", "Ciudad", "Correo", "Contraseña")
	if !ok {
		return nil
	}
	_ = s.views.register.Barbershop(s.ctx, models.RegisterBarbershopRequest{
		Name: f[0], Address: f[1], City: f[2], Email: f[3], Password: f[4],
	})
	return nil
}

// ------------------------------
// Client
// ------------------------------

func (s *Shell) toggleCity([]string) error {
	s.printShops(s.views.home.ToggleCity(s.ctx))
	return nil
}

func (s *Shell) search(args []string) error {
	s.printShops(s.views.home.SetSearch(strings.Join(args, " ")))
	return nil
}

func (s *Shell) open(args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	shop, err := s.views.detail.Load(s.ctx, id)
	if err != nil {
		return nil
	}
	s.goTo(router.ScreenBarbershopDetail)
	s.printShop(shop)
	return nil
}

func (s *Shell) book(args []string) error {
	serviceID, err := parseID(args[0])
	if err != nil {
		return err
	}
	barberID, err := parseID(args[1])
	if err != nil {
		return err
	}
	if err := s.views.detail.Choose(serviceID, barberID); err != nil {
		s.term.Alert(screens.TitleError, httperr.Message(err, ""))
		return nil
	}
	s.views.create.Begin(s.views.detail.Selection())
	s.goTo(router.ScreenAppointmentCreate)
	s.printSlots()
	return nil
}

func (s *Shell) pickDate(args []string) error {
	_ = s.views.create.SelectDate(args[0])
	return nil
}

func (s *Shell) pickTime(args []string) error {
	_ = s.views.create.SelectTime(args[0])
	return nil
}

func (s *Shell) submit([]string) error {
	if _, err := s.views.create.Submit(s.ctx); err != nil {
		return nil
	}
	s.goHome()
	if s.views.home.TakeOpenAppointments() {
		return s.clientAppointments(nil)
	}
	return nil
}

func (s *Shell) clientAppointments([]string) error {
	list, err := s.views.appointments.Load(s.ctx)
	if err != nil {
		return nil
	}
	s.goTo(router.ScreenAppointments)
	s.printAppointments(list)
	return nil
}

func (s *Shell) cancel(args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if ok, _ := s.views.appointments.Cancel(s.ctx, id); ok {
		s.printAppointments(s.views.appointments.List())
	}
	return nil
}

// ------------------------------
// Barber
// ------------------------------

func (s *Shell) schedules([]string) error {
	s.goTo(router.ScreenSchedules)
	s.printSchedules(s.views.barber.Schedules(s.ctx))
	return nil
}

func (s *Shell) barberAppointments([]string) error {
	list, err := s.views.barber.Appointments(s.ctx)
	if err != nil {
		return nil
	}
	s.goTo(router.ScreenAppointments)
	s.printAppointments(list)
	return nil
}

func (s *Shell) status(args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	a, err := s.views.barber.SetStatus(s.ctx, id, args[1])
	if err != nil {
		return nil
	}
	s.printAppointments([]models.Appointment{*a})
	return nil
}

// ------------------------------
// Owner
// ------------------------------

func (s *Shell) refresh([]string) error {
	s.printPanel(s.views.owner.Refresh(s.ctx))
	return nil
}

func (s *Shell) addService([]string) error {
	f, ok := s.fields("Nombre", "Precio", "Duración (min)")
	if !ok {
		return nil
	}
	_, _ = s.views.owner.AddService(s.ctx, f[0], f[1], f[2])
	return nil
}

func (s *Shell) addBarber([]string) error {
	f, ok := s.fields("Nombre", "Teléfono")
	if !ok {
		return nil
	}
	_, _ = s.views.owner.AddBarber(s.ctx, f[0], f[1])
	return nil
}

func (s *Shell) removeService(args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	_, _ = s.views.owner.DeleteService(s.ctx, id)
	return nil
}

func (s *Shell) removeBarber(args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	_, _ = s.views.owner.DeleteBarber(s.ctx, id)
	return nil
}

func (s *Shell) pending([]string) error {
	st := s.views.owner.State()
	s.term.printf("Citas pendientes: %d\n", st.PendingCount())
	s.printAppointments(st.Pending)
	return nil
}

// ------------------------------
// Shared
// ------------------------------

func (s *Shell) profile([]string) error {
	s.goTo(router.ScreenProfile)
	for _, l := range s.views.profile.Lines() {
		s.term.printf("%s\n", l)
	}
	return nil
}

func (s *Shell) logout([]string) error {
	// Remounts the guest stack through onState.
	s.views.profile.Logout(s.ctx)
	return nil
}

func (s *Shell) back([]string) error {
	if _, ok := s.nav.Pop(); ok {
		s.show()
	}
	return nil
}

// goTo pushes sc unless it is already on top.
func (s *Shell) goTo(sc router.Screen) {
	if s.nav.Current() != sc {
		s.nav.Push(sc)
	}
}

// goHome pops back to the root screen of the stack.
func (s *Shell) goHome() {
	for {
		if _, ok := s.nav.Pop(); !ok {
			break
		}
	}
	s.show()
}
