package screens

import (
	"context"
	"sync"

	"github.com/Kaleth2216/FadeApp/internal/models"
	"github.com/Kaleth2216/FadeApp/internal/session"
)

type alert struct {
	Title   string
	Message string
}

type fakeUI struct {
	mu       sync.Mutex
	alerts   []alert
	confirms []alert
	answer   bool
}

func (u *fakeUI) Alert(title, message string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.alerts = append(u.alerts, alert{title, message})
}

func (u *fakeUI) Confirm(title, message string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.confirms = append(u.confirms, alert{title, message})
	return u.answer
}

func (u *fakeUI) last() alert {
	u.mu.Lock()
	defer u.mu.Unlock()
	if len(u.alerts) == 0 {
		return alert{}
	}
	return u.alerts[len(u.alerts)-1]
}

func (u *fakeUI) count() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.alerts)
}

type fakeAuth struct {
	loginFn func(email, password string) (*models.LoginResponse, error)
	calls   int
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (*models.LoginResponse, error) {
	f.calls++
	return f.loginFn(email, password)
}

type fakeSessionLogin struct {
	err   error
	calls []session.Session
}

func (f *fakeSessionLogin) Login(_ context.Context, token string, role session.Role, userID int64) error {
	f.calls = append(f.calls, session.Session{Token: token, Role: role, UserID: userID})
	return f.err
}

type staticSession struct {
	s       session.Session
	logouts int
}

func (f *staticSession) Session() session.Session { return f.s }

func (f *staticSession) Logout(context.Context) {
	f.logouts++
	f.s = session.Session{}
}
