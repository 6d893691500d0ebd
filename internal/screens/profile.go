package screens

import (
	"context"
	"fmt"

	"github.com/Kaleth2216/FadeApp/internal/session"
)

type ProfileSession interface {
	Session() session.Session
	Logout(ctx context.Context)
}

type Profile struct {
	sess ProfileSession
}

func NewProfile(sess ProfileSession) *Profile {
	return &Profile{sess: sess}
}

func (p *Profile) Lines() []string {
	s := p.sess.Session()
	return []string{
		fmt.Sprintf("Rol: %s", s.Role),
		fmt.Sprintf("ID de usuario: %d", s.UserID),
	}
}

func (p *Profile) Logout(ctx context.Context) {
	p.sess.Logout(ctx)
}
