package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Kaleth2216/FadeApp/internal/apiclient"
	"github.com/Kaleth2216/FadeApp/internal/httpresp"
	"github.com/Kaleth2216/FadeApp/internal/models"
)

const barbersPath = "/barbers"

type Barbers struct {
	c   *apiclient.Client
	log zerolog.Logger
}

func (b *Barbers) List(ctx context.Context) ([]models.Barber, error) {
	return b.list(ctx, barbersPath, "list_barbers")
}

func (b *Barbers) ByBarbershop(ctx context.Context, shopID int64) ([]models.Barber, error) {
	return b.list(ctx, fmt.Sprintf("%s/barbershop/%d", barbersPath, shopID), "barbers_by_barbershop")
}

func (b *Barbers) list(ctx context.Context, path, op string) ([]models.Barber, error) {
	var raw []byte
	if err := b.c.Get(ctx, path, nil, &raw); err != nil {
		return nil, fail(b.log, op, err, "Error al obtener los barberos")
	}
	return httpresp.DecodeList[models.Barber](raw), nil
}

func (b *Barbers) Get(ctx context.Context, id int64) (*models.Barber, error) {
	var out models.Barber
	if err := b.c.Get(ctx, fmt.Sprintf("%s/%d", barbersPath, id), nil, &out); err != nil {
		return nil, fail(b.log, "get_barber", err, "Error al obtener el barbero")
	}
	return &out, nil
}

func (b *Barbers) Create(ctx context.Context, in models.Barber) (*models.Barber, error) {
	var out models.Barber
	if err := b.c.Post(ctx, barbersPath, in, &out); err != nil {
		return nil, fail(b.log, "create_barber", err, "Error al crear el barbero")
	}
	return &out, nil
}

func (b *Barbers) Update(ctx context.Context, id int64, in models.Barber) (*models.Barber, error) {
	var out models.Barber
	if err := b.c.Put(ctx, fmt.Sprintf("%s/%d", barbersPath, id), in, &out); err != nil {
		return nil, fail(b.log, "update_barber", err, "Error al actualizar el barbero")
	}
	return &out, nil
}

func (b *Barbers) Delete(ctx context.Context, id int64) error {
	if err := b.c.Delete(ctx, fmt.Sprintf("%s/%d", barbersPath, id)); err != nil {
		return fail(b.log, "delete_barber", err, "Error al eliminar el barbero")
	}
	return nil
}
