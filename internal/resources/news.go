package resources

import (
	"context"

	"github.com/google/uuid"

	"github.com/luantnk/SmartQuitIoT-sub002/internal/api"
	"github.com/luantnk/SmartQuitIoT-sub002/internal/models"
)

type News struct {
	client *api.Client
}

func NewNews(client *api.Client) *News {
	return &News{client: client}
}

func (n *News) List(ctx context.Context, req api.PageRequest) (api.PageResult[models.News], error) {
	return api.FetchPage[models.News](ctx, n.client, "/news", req)
}

func (n *News) Get(ctx context.Context, id uuid.UUID) (models.News, error) {
	var item models.News
	err := n.client.GetJSON(ctx, "/news/"+id.String(), nil, &item)
	return item, err
}

type NewsDraft struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// Publish creates a news item visible to all members.
func (n *News) Publish(ctx context.Context, draft NewsDraft) (models.News, error) {
	var item models.News
	err := n.client.PostJSON(ctx, "/news", draft, &item)
	return item, err
}

func (n *News) Delete(ctx context.Context, id uuid.UUID) error {
	return n.client.DeleteJSON(ctx, "/news/"+id.String())
}
