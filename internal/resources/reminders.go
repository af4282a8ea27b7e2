package resources

import (
	"context"

	"github.com/google/uuid"

	"github.com/luantnk/SmartQuitIoT-sub002/internal/api"
	"github.com/luantnk/SmartQuitIoT-sub002/internal/models"
)

type Reminders struct {
	client *api.Client
}

func NewReminders(client *api.Client) *Reminders {
	return &Reminders{client: client}
}

func (r *Reminders) List(ctx context.Context, req api.PageRequest) (api.PageResult[models.Reminder], error) {
	return api.FetchPage[models.Reminder](ctx, r.client, "/reminders", req)
}

// SetEnabled toggles a reminder without touching its schedule.
func (r *Reminders) SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) error {
	in := map[string]bool{"enabled": enabled}
	return r.client.PutJSON(ctx, "/reminders/"+id.String(), in, nil)
}
