package model

import (
	"time"

	"github.com/unipoint-lab/appcore/internal/entity"
)

// ListEventsFilter mirrors the query parameters of GET /events. A nil Status
// means "all statuses", which the backend cannot express in one call.
type ListEventsFilter struct {
	Page       int
	Search     string
	Status     *entity.EventStatus
	CategoryID string
}

func (f ListEventsFilter) WithStatus(status entity.EventStatus) ListEventsFilter {
	f.Status = &status
	return f
}

type EventPage struct {
	Events     []entity.Event
	Total      int
	TotalPages int
}

type UpsertEventForm struct {
	Title               string    `structs:"title" validate:"required"`
	Description         string    `structs:"description"`
	CategoryID          string    `structs:"categoryId" validate:"required"`
	Location            string    `structs:"location"`
	StartTime           time.Time `structs:"startTime,omitnested" validate:"required"`
	EndTime             time.Time `structs:"endTime,omitnested" validate:"required,gtfield=StartTime"`
	PointCostToRegister int64     `structs:"pointCostToRegister" validate:"gte=0"`
	TotalRewardPoints   int64     `structs:"totalRewardPoints" validate:"gte=0"`
	TotalBudgetCoin     int64     `structs:"totalBudgetCoin" validate:"gte=0"`
}

type FeedbackForm struct {
	Rating  int    `structs:"rating" validate:"required,min=1,max=5"`
	Comment string `structs:"comment"`
}

type AttendeePage struct {
	Attendees  []entity.EventAttendee
	Total      int
	TotalPages int
}

type CheckInResult struct {
	EventID       string    `mapstructure:"eventId"`
	StudentID     string    `mapstructure:"studentId"`
	AwardedPoints int64     `mapstructure:"awardedPoints"`
	CheckedInAt   time.Time `mapstructure:"checkedInAt"`
}
