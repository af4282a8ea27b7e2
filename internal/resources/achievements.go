package resources

import (
	"context"

	"github.com/luantnk/SmartQuitIoT-sub002/internal/api"
	"github.com/luantnk/SmartQuitIoT-sub002/internal/models"
)

type Achievements struct {
	client *api.Client
}

func NewAchievements(client *api.Client) *Achievements {
	return &Achievements{client: client}
}

func (a *Achievements) List(ctx context.Context, req api.PageRequest) (api.PageResult[models.Achievement], error) {
	return api.FetchPage[models.Achievement](ctx, a.client, "/achievements", req)
}
