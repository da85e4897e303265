package domain

import (
	"context"

	"github.com/unipoint-lab/appcore/internal/model"
	"github.com/unipoint-lab/appcore/internal/service"
	"github.com/unipoint-lab/appcore/pkg/errorx"
)

// CheckIn records event attendance keyed by the student's phone number, the
// one identifier a staffer can ask for at the door.
type CheckIn struct {
	svc service.EventService
}

func NewCheckIn(svc service.EventService) *CheckIn {
	return &CheckIn{svc: svc}
}

// Record validates and normalizes the phone before the call; an invalid
// number never reaches the backend.
func (c *CheckIn) Record(ctx context.Context, eventID, phone string) (model.CheckInResult, error) {
	normalized := model.NormalizePhone(phone)
	if !model.ValidPhone(normalized) {
		return model.CheckInResult{}, errorx.New(errorx.InvalidPhone, "Invalid phone number")
	}

	return c.svc.CheckIn(ctx, eventID, normalized)
}

// Attendees pages through the recorded attendance of one event.
func (c *CheckIn) Attendees(ctx context.Context, eventID string, page int) (model.AttendeePage, error) {
	return c.svc.GetAttendees(ctx, eventID, page)
}
