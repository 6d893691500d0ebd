package router

import (
	"errors"
	"testing"

	"github.com/Kaleth2216/FadeApp/internal/session"
)

func TestRouteEveryDeclaredRole(t *testing.T) {
	want := map[session.Role]Kind{
		session.RoleClient:     KindClient,
		session.RoleBarber:     KindBarber,
		session.RoleBarbershop: KindOwner,
	}

	for _, role := range session.Roles() {
		kind, ok := want[role]
		if !ok {
			t.Fatalf("role %s has no expected stack", role)
		}
		st, err := Route(session.Session{Token: "t", Role: role, UserID: 9})
		if err != nil {
			t.Fatalf("Route(%s): %v", role, err)
		}
		if st.Kind != kind {
			t.Fatalf("Route(%s) = %s, want %s", role, st.Kind, kind)
		}
	}
}

func TestRouteGuestForAbsentOrPartialSession(t *testing.T) {
	for _, s := range []session.Session{
		{},
		{Role: session.RoleClient, UserID: 3},
		{Token: "x"},
		{Token: "x", Role: session.RoleClient},
		{Token: "x", UserID: 3},
	} {
		st, err := Route(s)
		if err != nil || st.Kind != KindGuest {
			t.Fatalf("Route(%+v) = %+v, %v", s, st, err)
		}
	}
}

func TestRouteOwnerCarriesBarbershopID(t *testing.T) {
	st, err := Route(session.Session{Token: "t", Role: session.RoleBarbershop, UserID: 42})
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if st.BarbershopID != 42 || st.Initial() != ScreenHomeBarbershop {
		t.Fatalf("stack = %+v", st)
	}

	client, _ := Route(session.Session{Token: "t", Role: session.RoleClient, UserID: 42})
	if client.BarbershopID != 0 {
		t.Fatalf("client stack carries barbershop id %d", client.BarbershopID)
	}
}

func TestRouteUnknownRole(t *testing.T) {
	_, err := Route(session.Session{Token: "t", Role: session.Role("ADMIN"), UserID: 1})
	if !errors.Is(err, ErrUnroutableRole) {
		t.Fatalf("err = %v", err)
	}
}

func TestStackScreens(t *testing.T) {
	tests := []struct {
		kind    Kind
		initial Screen
		count   int
	}{
		{KindGuest, ScreenLogin, 2},
		{KindClient, ScreenHomeClient, 5},
		{KindBarber, ScreenHomeBarber, 4},
		{KindOwner, ScreenHomeBarbershop, 2},
	}
	for _, tt := range tests {
		st := Stack{Kind: tt.kind}
		if st.Initial() != tt.initial || len(st.Screens()) != tt.count {
			t.Fatalf("%s: initial %s, %d screens", tt.kind, st.Initial(), len(st.Screens()))
		}
	}
}

func TestNavigatorRemountsOnTokenPresenceOnly(t *testing.T) {
	n := NewNavigator()

	m, remounted, err := n.Sync(session.Session{})
	if err != nil || !remounted || m.Root != RootGuest || m.Generation != 1 {
		t.Fatalf("first sync = %+v, %v, %v", m, remounted, err)
	}
	if n.Current() != ScreenLogin {
		t.Fatalf("current = %s", n.Current())
	}
	n.Push(ScreenRegister)

	// Unrelated re-sync keeps the guest history.
	if _, remounted, _ := n.Sync(session.Session{}); remounted || n.Current() != ScreenRegister {
		t.Fatalf("guest re-sync remounted=%v current=%s", remounted, n.Current())
	}

	client := session.Session{Token: "a", Role: session.RoleClient, UserID: 5}
	m, remounted, _ = n.Sync(client)
	if !remounted || m.Root != RootAuth || m.Generation != 2 || n.Current() != ScreenHomeClient {
		t.Fatalf("login sync = %+v, %v, current %s", m, remounted, n.Current())
	}

	n.Push(ScreenBarbershopDetail)
	n.Push(ScreenAppointmentCreate)

	client.Token = "b"
	if _, remounted, _ := n.Sync(client); remounted {
		t.Fatalf("token value change remounted")
	}
	if got := n.History(); len(got) != 3 {
		t.Fatalf("history = %v", got)
	}

	m, remounted, _ = n.Sync(session.Session{})
	if !remounted || m.Root != RootGuest || m.Generation != 3 || len(n.History()) != 1 {
		t.Fatalf("logout sync = %+v, %v, history %v", m, remounted, n.History())
	}
}

func TestNavigatorPartialSessionStaysGuest(t *testing.T) {
	n := NewNavigator()
	_, _, _ = n.Sync(session.Session{})

	m, remounted, err := n.Sync(session.Session{Token: "x", Role: session.RoleClient})
	if err != nil || remounted || m.Root != RootGuest || n.Current() != ScreenLogin {
		t.Fatalf("Sync = %+v, %v, %v, current %s", m, remounted, err, n.Current())
	}
}

func TestNavigatorPushPop(t *testing.T) {
	n := NewNavigator()
	if n.Push(ScreenLogin) {
		t.Fatalf("push before sync accepted")
	}

	_, _, _ = n.Sync(session.Session{Token: "t", Role: session.RoleBarber, UserID: 2})
	if n.Push(ScreenHomeClient) {
		t.Fatalf("push of foreign screen accepted")
	}
	if !n.Push(ScreenSchedules) {
		t.Fatalf("push rejected")
	}

	if sc, ok := n.Pop(); !ok || sc != ScreenHomeBarber {
		t.Fatalf("Pop = %s, %v", sc, ok)
	}
	if sc, ok := n.Pop(); ok || sc != ScreenHomeBarber {
		t.Fatalf("Pop at root = %s, %v", sc, ok)
	}
}

func TestNavigatorSyncUnknownRoleKeepsMount(t *testing.T) {
	n := NewNavigator()
	before, _, _ := n.Sync(session.Session{})

	after, remounted, err := n.Sync(session.Session{Token: "t", Role: "ADMIN", UserID: 1})
	if !errors.Is(err, ErrUnroutableRole) || remounted || after != before {
		t.Fatalf("Sync = %+v, %v, %v", after, remounted, err)
	}
}
