package resources

import (
	"context"

	"github.com/google/uuid"

	"github.com/luantnk/SmartQuitIoT-sub002/internal/api"
	"github.com/luantnk/SmartQuitIoT-sub002/internal/models"
)

type Members struct {
	client *api.Client
}

func NewMembers(client *api.Client) *Members {
	return &Members{client: client}
}

func (m *Members) List(ctx context.Context, req api.PageRequest) (api.PageResult[models.Member], error) {
	return api.FetchPage[models.Member](ctx, m.client, "/members", req)
}

func (m *Members) Get(ctx context.Context, id uuid.UUID) (models.Member, error) {
	var member models.Member
	err := m.client.GetJSON(ctx, "/members/"+id.String(), nil, &member)
	return member, err
}

// Deactivate suspends a member account.
func (m *Members) Deactivate(ctx context.Context, id uuid.UUID) error {
	return m.client.PutJSON(ctx, "/members/"+id.String()+"/deactivate", nil, nil)
}
