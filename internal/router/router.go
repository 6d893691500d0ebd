// Package router derives the navigation stack from the session.
package router

import (
	"errors"
	"fmt"

	"github.com/Kaleth2216/FadeApp/internal/session"
)

var ErrUnroutableRole = errors.New("router: role has no stack")

type Kind int

const (
	KindGuest Kind = iota
	KindClient
	KindBarber
	KindOwner
)

func (k Kind) String() string {
	switch k {
	case KindGuest:
		return "guest"
	case KindClient:
		return "client"
	case KindBarber:
		return "barber"
	case KindOwner:
		return "barbershop"
	}
	return "unknown"
}

type Screen string

const (
	ScreenLogin             Screen = "login"
	ScreenRegister          Screen = "register"
	ScreenHomeClient        Screen = "home_client"
	ScreenBarbershopDetail  Screen = "barbershop_detail"
	ScreenAppointmentCreate Screen = "appointment_create"
	ScreenAppointments      Screen = "appointments"
	ScreenProfile           Screen = "profile"
	ScreenHomeBarber        Screen = "home_barber"
	ScreenSchedules         Screen = "schedules"
	ScreenHomeBarbershop    Screen = "home_barbershop"
)

var screens = map[Kind][]Screen{
	KindGuest:  {ScreenLogin, ScreenRegister},
	KindClient: {ScreenHomeClient, ScreenBarbershopDetail, ScreenAppointmentCreate, ScreenAppointments, ScreenProfile},
	KindBarber: {ScreenHomeBarber, ScreenAppointments, ScreenSchedules, ScreenProfile},
	KindOwner:  {ScreenHomeBarbershop, ScreenProfile},
}

// Stack is the set of screens reachable for one session.
type Stack struct {
	Kind Kind
	// BarbershopID is set on the owner stack only: the owner's user id is
	// the id of the barbershop they own.
	BarbershopID int64
}

func (s Stack) Screens() []Screen {
	return append([]Screen(nil), screens[s.Kind]...)
}

func (s Stack) Initial() Screen {
	return screens[s.Kind][0]
}

func (s Stack) Has(sc Screen) bool {
	for _, x := range screens[s.Kind] {
		if x == sc {
			return true
		}
	}
	return false
}

// Route is a pure function of the session. A partial session routes as
// absent. A complete one whose role is outside the known set is a
// configuration error, never a silent fallback.
func Route(s session.Session) (Stack, error) {
	if !s.Present() {
		return Stack{Kind: KindGuest}, nil
	}

	switch s.Role {
	case session.RoleClient:
		return Stack{Kind: KindClient}, nil
	case session.RoleBarber:
		return Stack{Kind: KindBarber}, nil
	case session.RoleBarbershop:
		return Stack{Kind: KindOwner, BarbershopID: s.UserID}, nil
	}
	return Stack{}, fmt.Errorf("%w: %q", ErrUnroutableRole, s.Role)
}
