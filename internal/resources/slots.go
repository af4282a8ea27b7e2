package resources

import (
	"context"

	"github.com/google/uuid"

	"github.com/luantnk/SmartQuitIoT-sub002/internal/api"
	"github.com/luantnk/SmartQuitIoT-sub002/internal/models"
)

type Slots struct {
	client *api.Client
}

func NewSlots(client *api.Client) *Slots {
	return &Slots{client: client}
}

func (s *Slots) List(ctx context.Context, req api.PageRequest) (api.PageResult[models.Slot], error) {
	return api.FetchPage[models.Slot](ctx, s.client, "/slots", req)
}

// ListByCoach narrows the slot list to one coach's calendar.
func (s *Slots) ListByCoach(ctx context.Context, coachID uuid.UUID, req api.PageRequest) (api.PageResult[models.Slot], error) {
	if req.Filters == nil {
		req.Filters = map[string]string{}
	}
	req.Filters["coachId"] = coachID.String()
	return s.List(ctx, req)
}
