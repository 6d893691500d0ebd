package screens

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Kaleth2216/FadeApp/internal/httperr"
	"github.com/Kaleth2216/FadeApp/internal/models"
	"github.com/Kaleth2216/FadeApp/internal/validators"
)

const (
	TitleRequired     = "Campos requeridos"
	MsgRequired       = "Completa todos los campos obligatorios."
	TitleInvalidEmail = "Correo inválido"
	TitleRegistered   = "Registro exitoso"
	MsgRegistered     = "Ya puedes iniciar sesión."
	RegisterFailedMsg = "Ocurrió un error durante el registro."
)

type Registrar interface {
	RegisterClient(ctx context.Context, req models.RegisterClientRequest) (*models.Client, error)
	RegisterBarbershop(ctx context.Context, req models.RegisterBarbershopRequest) (*models.Barbershop, error)
}

type Register struct {
	auth Registrar
	ui   UI
	log  zerolog.Logger
}

func NewRegister(auth Registrar, ui UI, log zerolog.Logger) *Register {
	return &Register{auth: auth, ui: ui, log: log.With().Str("screen", "register").Logger()}
}

func (r *Register) Client(ctx context.Context, req models.RegisterClientRequest) error {
	req.Email = validators.NormalizeEmail(req.Email)
	if err := r.check(req); err != nil {
		return err
	}
	_, err := r.auth.RegisterClient(ctx, req)
	return r.done(err)
}

func (r *Register) Barbershop(ctx context.Context, req models.RegisterBarbershopRequest) error {
	req.Email = validators.NormalizeEmail(req.Email)
	if err := r.check(req); err != nil {
		return err
	}
	_, err := r.auth.RegisterBarbershop(ctx, req)
	return r.done(err)
}

func (r *Register) check(req any) error {
	err := validators.Struct(req)
	switch {
	case err == nil:
		return nil
	case httperr.IsValidation(err, validators.CodeMissingFields):
		r.ui.Alert(TitleRequired, MsgRequired)
	case httperr.IsValidation(err, validators.CodeInvalidEmail):
		alertErr(r.ui, TitleInvalidEmail, err, RegisterFailedMsg)
	default:
		alertErr(r.ui, TitleError, err, RegisterFailedMsg)
	}
	return err
}

func (r *Register) done(err error) error {
	if err != nil {
		r.log.Warn().Err(err).Msg("registration failed")
		alertErr(r.ui, TitleError, err, RegisterFailedMsg)
		return err
	}
	r.ui.Alert(TitleRegistered, MsgRegistered)
	return nil
}
