package resources

import (
	"context"

	"github.com/google/uuid"

	"github.com/luantnk/SmartQuitIoT-sub002/internal/api"
	"github.com/luantnk/SmartQuitIoT-sub002/internal/models"
)

type Payments struct {
	client *api.Client
}

func NewPayments(client *api.Client) *Payments {
	return &Payments{client: client}
}

func (p *Payments) List(ctx context.Context, req api.PageRequest) (api.PageResult[models.Payment], error) {
	return api.FetchPage[models.Payment](ctx, p.client, "/payments", req)
}

// ListByStatus narrows the payment list to one settlement status.
func (p *Payments) ListByStatus(ctx context.Context, status string, req api.PageRequest) (api.PageResult[models.Payment], error) {
	if req.Filters == nil {
		req.Filters = map[string]string{}
	}
	req.Filters["status"] = status
	return p.List(ctx, req)
}

func (p *Payments) Get(ctx context.Context, id uuid.UUID) (models.Payment, error) {
	var payment models.Payment
	err := p.client.GetJSON(ctx, "/payments/"+id.String(), nil, &payment)
	return payment, err
}
