package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Kaleth2216/FadeApp/internal/apiclient"
	"github.com/Kaleth2216/FadeApp/internal/httpresp"
	"github.com/Kaleth2216/FadeApp/internal/models"
)

const clientsPath = "/clients"

type Clients struct {
	c   *apiclient.Client
	log zerolog.Logger
}

func (c *Clients) List(ctx context.Context) ([]models.Client, error) {
	var raw []byte
	if err := c.c.Get(ctx, clientsPath, nil, &raw); err != nil {
		return nil, fail(c.log, "list_clients", err, "Error al obtener los clientes")
	}
	return httpresp.DecodeList[models.Client](raw), nil
}

func (c *Clients) Get(ctx context.Context, id int64) (*models.Client, error) {
	var out models.Client
	if err := c.c.Get(ctx, fmt.Sprintf("%s/%d", clientsPath, id), nil, &out); err != nil {
		return nil, fail(c.log, "get_client", err, "Error al obtener el cliente")
	}
	return &out, nil
}

func (c *Clients) Update(ctx context.Context, id int64, in models.Client) (*models.Client, error) {
	var out models.Client
	if err := c.c.Put(ctx, fmt.Sprintf("%s/%d", clientsPath, id), in, &out); err != nil {
		return nil, fail(c.log, "update_client", err, "Error al actualizar el cliente")
	}
	return &out, nil
}

func (c *Clients) Delete(ctx context.Context, id int64) error {
	if err := c.c.Delete(ctx, fmt.Sprintf("%s/%d", clientsPath, id)); err != nil {
		return fail(c.log, "delete_client", err, "Error al eliminar el cliente")
	}
	return nil
}
