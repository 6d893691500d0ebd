package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Kaleth2216/FadeApp/internal/apiclient"
	"github.com/Kaleth2216/FadeApp/internal/httpresp"
	"github.com/Kaleth2216/FadeApp/internal/models"
)

const schedulesPath = "/schedules"

type Schedules struct {
	c   *apiclient.Client
	log zerolog.Logger
}

func (s *Schedules) ByBarber(ctx context.Context, barberID int64) ([]models.Schedule, error) {
	var raw []byte
	if err := s.c.Get(ctx, fmt.Sprintf("%s/barber/%d", schedulesPath, barberID), nil, &raw); err != nil {
		return nil, fail(s.log, "schedules_by_barber", err, "Error al obtener los horarios")
	}
	return httpresp.DecodeList[models.Schedule](raw), nil
}

func (s *Schedules) Create(ctx context.Context, in models.Schedule) (*models.Schedule, error) {
	var out models.Schedule
	if err := s.c.Post(ctx, schedulesPath, in, &out); err != nil {
		return nil, fail(s.log, "create_schedule", err, "Error al crear el horario")
	}
	return &out, nil
}

func (s *Schedules) Update(ctx context.Context, id int64, in models.Schedule) (*models.Schedule, error) {
	var out models.Schedule
	if err := s.c.Put(ctx, fmt.Sprintf("%s/%d", schedulesPath, id), in, &out); err != nil {
		return nil, fail(s.log, "update_schedule", err, "Error al actualizar el horario")
	}
	return &out, nil
}

func (s *Schedules) Delete(ctx context.Context, id int64) error {
	if err := s.c.Delete(ctx, fmt.Sprintf("%s/%d", schedulesPath, id)); err != nil {
		return fail(s.log, "delete_schedule", err, "Error al eliminar el horario")
	}
	return nil
}
