// Package services wraps each remote resource. Every function returns an
// error whose message is fit for display; failures are logged here.
package services

import (
	"github.com/rs/zerolog"

	"github.com/Kaleth2216/FadeApp/internal/apiclient"
	"github.com/Kaleth2216/FadeApp/internal/httperr"
)

type API struct {
	Auth         *Auth
	Barbershops  *Barbershops
	Appointments *Appointments
	Schedules    *Schedules
	Clients      *Clients
	Barbers      *Barbers
}

func New(c *apiclient.Client, log zerolog.Logger) *API {
	log = log.With().Str("component", "services").Logger()
	return &API{
		Auth:         &Auth{c: c, log: log},
		Barbershops:  &Barbershops{c: c, log: log},
		Appointments: &Appointments{c: c, log: log},
		Schedules:    &Schedules{c: c, log: log},
		Clients:      &Clients{c: c, log: log},
		Barbers:      &Barbers{c: c, log: log},
	}
}

// fail logs err under op and converts it into a display-ready error.
func fail(log zerolog.Logger, op string, err error, fallback string) error {
	msg := httperr.Message(err, fallback)
	log.Warn().Err(err).Str("op", op).Str("message", msg).Msg("request failed")
	return httperr.User(msg, err)
}
