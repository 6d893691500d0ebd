package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Kaleth2216/FadeApp/internal/apiclient"
	"github.com/Kaleth2216/FadeApp/internal/models"
	"github.com/Kaleth2216/FadeApp/internal/validators"
)

type Auth struct {
	c   *apiclient.Client
	log zerolog.Logger
}

func (a *Auth) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	req := models.LoginRequest{Email: validators.NormalizeEmail(email), Password: password}
	if err := validators.Struct(req); err != nil {
		return nil, err
	}

	var out models.LoginResponse
	if err := a.c.Post(ctx, "/auth/login", req, &out); err != nil {
		return nil, fail(a.log, "login", err, "Credenciales inválidas o servidor no disponible")
	}
	return &out, nil
}

// RegisterClient follows the server's Client model (firstName/lastName).
func (a *Auth) RegisterClient(ctx context.Context, req models.RegisterClientRequest) (*models.Client, error) {
	req.Email = validators.NormalizeEmail(req.Email)
	if err := validators.Struct(req); err != nil {
		return nil, err
	}

	var out models.Client
	if err := a.c.Post(ctx, "/auth/register/client", req, &out); err != nil {
		return nil, fail(a.log, "register_client", err, "Ocurrió un error durante el registro.")
	}
	return &out, nil
}

func (a *Auth) RegisterBarbershop(ctx context.Context, req models.RegisterBarbershopRequest) (*models.Barbershop, error) {
	req.Email = validators.NormalizeEmail(req.Email)
	if err := validators.Struct(req); err != nil {
		return nil, err
	}

	var out models.Barbershop
	if err := a.c.Post(ctx, "/auth/register/barbershop", req, &out); err != nil {
		return nil, fail(a.log, "register_barbershop", err, "Ocurrió un error durante el registro.")
	}
	return &out, nil
}
