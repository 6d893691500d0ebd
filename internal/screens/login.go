package screens

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Kaleth2216/FadeApp/internal/models"
	"github.com/Kaleth2216/FadeApp/internal/session"
)

const (
	LoginFailedMsg   = "Credenciales inválidas o servidor no disponible"
	TitleConfig      = "Error de configuración"
	TitleSessionOpen = "Sesión activa"
)

type Authenticator interface {
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
}

type SessionLogin interface {
	Login(ctx context.Context, token string, role session.Role, userID int64) error
}

type Login struct {
	auth Authenticator
	sess SessionLogin
	ui   UI
	log  zerolog.Logger
}

func NewLogin(auth Authenticator, sess SessionLogin, ui UI, log zerolog.Logger) *Login {
	return &Login{auth: auth, sess: sess, ui: ui, log: log.With().Str("screen", "login").Logger()}
}

// Submit authenticates and, on success, hands the session to the manager.
// A role the app cannot route is a server configuration problem: it is
// shown and the user stays logged out.
func (l *Login) Submit(ctx context.Context, email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		l.ui.Alert(TitleIncomplete, MsgIncomplete)
		return ErrIncomplete
	}

	res, err := l.auth.Login(ctx, email, password)
	if err != nil {
		l.ui.Alert(TitleError, LoginFailedMsg)
		return err
	}

	role, err := session.ParseRole(res.Role)
	if err != nil {
		l.log.Error().Err(err).Int64("user_id", res.UserID).Msg("login returned a role with no stack")
		l.ui.Alert(TitleConfig, fmt.Sprintf("Rol de usuario no soportado: %q.", res.Role))
		return err
	}

	if err := l.sess.Login(ctx, res.Token, role, res.UserID); err != nil {
		if errors.Is(err, session.ErrAlreadyAuthenticated) {
			l.ui.Alert(TitleSessionOpen, "Cierra la sesión actual antes de iniciar otra.")
		} else {
			alertErr(l.ui, TitleError, err, LoginFailedMsg)
		}
		return err
	}
	return nil
}
