package resources

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/luantnk/SmartQuitIoT-sub002/internal/api"
	"github.com/luantnk/SmartQuitIoT-sub002/internal/apperrors"
	"github.com/luantnk/SmartQuitIoT-sub002/internal/models"
)

type Appointments struct {
	client *api.Client
}

func NewAppointments(client *api.Client) *Appointments {
	return &Appointments{client: client}
}

func (a *Appointments) List(ctx context.Context, req api.PageRequest) (api.PageResult[models.Appointment], error) {
	return api.FetchPage[models.Appointment](ctx, a.client, "/appointments", req)
}

type BookingRequest struct {
	SlotID   uuid.UUID `json:"slotId"`
	MemberID uuid.UUID `json:"memberId"`
	Note     string    `json:"note,omitempty"`
}

// Book schedules a member into a slot. A conflict means the slot was taken
// between listing and booking.
func (a *Appointments) Book(ctx context.Context, req BookingRequest) (models.Appointment, error) {
	var appointment models.Appointment

	err := a.client.PostJSON(ctx, "/appointments", req, &appointment)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusConflict {
			return appointment, fmt.Errorf("%w: slot %s", apperrors.ErrSlotNotAvailable, req.SlotID)
		}
		return appointment, err
	}

	return appointment, nil
}

func (a *Appointments) Cancel(ctx context.Context, id uuid.UUID) error {
	return a.client.PutJSON(ctx, "/appointments/"+id.String()+"/cancel", nil, nil)
}
