// Package shell is the interactive terminal front end. It mounts the screen
// controllers of the stack the router picks and exposes them as commands.
package shell

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Kaleth2216/FadeApp/internal/booking"
	"github.com/Kaleth2216/FadeApp/internal/router"
	"github.com/Kaleth2216/FadeApp/internal/screens"
	"github.com/Kaleth2216/FadeApp/internal/services"
	"github.com/Kaleth2216/FadeApp/internal/session"
	"github.com/Kaleth2216/FadeApp/internal/timezone"
)

var errQuit = errors.New("shell: quit")

// usageError is printed to the user as-is.
type usageError string

func (e usageError) Error() string { return string(e) }

type Deps struct {
	API     *services.API
	Session *session.Manager
	Clock   timezone.Clock
	Log     zerolog.Logger
}

// views are the controllers of the mounted stack. They are rebuilt on every
// remount so no state survives a login or logout.
type views struct {
	login        *screens.Login
	register     *screens.Register
	home         *screens.HomeClient
	detail       *screens.BarbershopDetail
	create       *screens.AppointmentCreate
	appointments *screens.Appointments
	barber       *screens.HomeBarber
	owner        *screens.OwnerPanel
	profile      *screens.Profile
}

type Shell struct {
	deps Deps
	term *terminal
	nav  *router.Navigator
	log  zerolog.Logger
	ctx  context.Context

	views views
}

func New(deps Deps, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		deps: deps,
		term: newTerminal(in, out),
		nav:  router.NewNavigator(),
		log:  deps.Log.With().Str("component", "shell").Logger(),
	}
}

// Run reads commands until quit or end of input.
func (s *Shell) Run(ctx context.Context) error {
	s.ctx = ctx
	unsubscribe := s.deps.Session.Subscribe(s.onState)
	defer unsubscribe()
	defer s.unmount()

	// Hydrate is a no-op when the caller already ran it; the explicit sync
	// covers that case.
	s.deps.Session.Hydrate(ctx)
	s.onState(s.deps.Session.State())

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.term.printf("%s> ", s.nav.Current())
		line, ok := s.term.readLine()
		if !ok {
			s.term.printf("\n")
			return s.term.err()
		}
		if line == "" {
			continue
		}
		err := s.dispatch(line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			s.term.printf("%s\n", err)
		}
	}
}

func (s *Shell) dispatch(line string) error {
	fields := strings.Fields(line)
	name, args := fields[0], fields[1:]

	switch name {
	case "quit", "exit":
		return errQuit
	case "help":
		s.help()
		return nil
	}

	cmd, ok := lookup(s.nav.Mount().Stack.Kind, name)
	if !ok {
		return usageError("Comando desconocido. Escribe help para ver las opciones.")
	}
	if len(args) < cmd.args {
		return usageError("Uso: " + cmd.usage)
	}
	return cmd.run(s, args)
}

// onState runs synchronously inside the session transition.
func (s *Shell) onState(st session.State) {
	if st.Phase == session.PhaseHydrating {
		return
	}
	m, remounted, err := s.nav.Sync(st.Session)
	if err != nil {
		s.log.Error().Err(err).Str("role", st.Session.Role.String()).Msg("session has no stack")
		s.term.Alert(screens.TitleConfig, "Rol de usuario no soportado.")
		return
	}
	if !remounted {
		return
	}
	s.log.Debug().Str("root", m.Root).Uint64("generation", m.Generation).Str("stack", m.Stack.Kind.String()).Msg("remounted")
	s.mount(m.Stack)
	s.show()
}

func (s *Shell) mount(stack router.Stack) {
	s.unmount()

	api, log, ui := s.deps.API, s.deps.Log, s.term
	sess := s.deps.Session
	var v views

	switch stack.Kind {
	case router.KindGuest:
		v.login = screens.NewLogin(api.Auth, sess, ui, log)
		v.register = screens.NewRegister(api.Auth, ui, log)
	case router.KindClient:
		v.home = screens.NewHomeClient(api.Barbershops, log)
		v.detail = screens.NewBarbershopDetail(api.Barbershops, ui, log)
		wf := booking.NewWorkflow(api.Appointments, sess, s.deps.Clock, log)
		v.create = screens.NewAppointmentCreate(wf, ui, v.home)
		v.appointments = screens.NewAppointments(api.Appointments, sess, ui, log)
		v.profile = screens.NewProfile(sess)
	case router.KindBarber:
		v.barber = screens.NewHomeBarber(api.Schedules, api.Appointments, sess.Session().UserID, ui, log)
		v.profile = screens.NewProfile(sess)
	case router.KindOwner:
		v.owner = screens.NewOwnerPanel(api.Barbershops, stack.BarbershopID, ui, log)
		v.profile = screens.NewProfile(sess)
		v.owner.Start(s.ctx)
	}
	s.views = v
}

func (s *Shell) unmount() {
	if s.views.owner != nil {
		s.views.owner.Close()
	}
	s.views = views{}
}

// show prints the screen on top of the history.
func (s *Shell) show() {
	switch s.nav.Current() {
	case router.ScreenLogin:
		s.term.printf("FadeApp. Escribe login para iniciar sesión o help para ver las opciones.\n")
	case router.ScreenHomeClient:
		s.printShops(s.views.home.Load(s.ctx))
	case router.ScreenHomeBarber:
		s.printSchedules(s.views.barber.Schedules(s.ctx))
	case router.ScreenHomeBarbershop:
		s.term.printf("Panel de barbería. Escribe refresh para cargar los datos.\n")
	}
}

func (s *Shell) help() {
	kind := s.nav.Mount().Stack.Kind
	s.term.printf("Comandos (%s):\n", kind)
	for _, c := range commands[kind] {
		s.term.printf("  %-28s %s\n", c.usage, c.help)
	}
	s.term.printf("  %-28s %s\n", "help", "Muestra esta ayuda")
	s.term.printf("  %-28s %s\n", "quit", "Sale de la aplicación")
}
