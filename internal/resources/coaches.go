package resources

import (
	"context"

	"github.com/google/uuid"

	"github.com/luantnk/SmartQuitIoT-sub002/internal/api"
	"github.com/luantnk/SmartQuitIoT-sub002/internal/models"
)

type Coaches struct {
	client *api.Client
}

func NewCoaches(client *api.Client) *Coaches {
	return &Coaches{client: client}
}

func (c *Coaches) List(ctx context.Context, req api.PageRequest) (api.PageResult[models.Coach], error) {
	return api.FetchPage[models.Coach](ctx, c.client, "/coaches", req)
}

func (c *Coaches) Get(ctx context.Context, id uuid.UUID) (models.Coach, error) {
	var coach models.Coach
	err := c.client.GetJSON(ctx, "/coaches/"+id.String(), nil, &coach)
	return coach, err
}
