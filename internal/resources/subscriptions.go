package resources

import (
	"context"

	"github.com/google/uuid"

	"github.com/luantnk/SmartQuitIoT-sub002/internal/api"
	"github.com/luantnk/SmartQuitIoT-sub002/internal/models"
)

type Subscriptions struct {
	client *api.Client
}

func NewSubscriptions(client *api.Client) *Subscriptions {
	return &Subscriptions{client: client}
}

func (s *Subscriptions) List(ctx context.Context, req api.PageRequest) (api.PageResult[models.Subscription], error) {
	return api.FetchPage[models.Subscription](ctx, s.client, "/subscriptions", req)
}

func (s *Subscriptions) Get(ctx context.Context, id uuid.UUID) (models.Subscription, error) {
	var sub models.Subscription
	err := s.client.GetJSON(ctx, "/subscriptions/"+id.String(), nil, &sub)
	return sub, err
}

// Cancel stops a subscription at the end of its current period.
func (s *Subscriptions) Cancel(ctx context.Context, id uuid.UUID) error {
	return s.client.PutJSON(ctx, "/subscriptions/"+id.String()+"/cancel", nil, nil)
}
