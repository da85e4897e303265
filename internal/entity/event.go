package entity

import (
	"time"

	"github.com/unipoint-lab/appcore/pkg/enum"
)

type EventStatus string

var (
	EventDraft     = enum.New(EventStatus("DRAFT"))
	EventActive    = enum.New(EventStatus("ACTIVE"))
	EventFinished  = enum.New(EventStatus("FINISHED"))
	EventCancelled = enum.New(EventStatus("CANCELLED"))
	EventFinalized = enum.New(EventStatus("FINALIZED"))
)

type EventCategory struct {
	ID   string `mapstructure:"id" structs:"id"`
	Name string `mapstructure:"name" structs:"name"`
}

// Event mirrors the server record. Status transitions happen server-side; the
// client only reads the status to decide which operations to offer.
type Event struct {
	ID                  string         `mapstructure:"id" structs:"id"`
	Title               string         `mapstructure:"title" structs:"title"`
	Description         string         `mapstructure:"description" structs:"description"`
	Status              EventStatus    `mapstructure:"status" structs:"status"`
	StartTime           time.Time      `mapstructure:"startTime" structs:"startTime"`
	EndTime             time.Time      `mapstructure:"endTime" structs:"endTime"`
	Location            string         `mapstructure:"location" structs:"location"`
	Category            *EventCategory `mapstructure:"category" structs:"category,omitnested"`
	PointCostToRegister int64          `mapstructure:"pointCostToRegister" structs:"pointCostToRegister"`
	TotalRewardPoints   int64          `mapstructure:"totalRewardPoints" structs:"totalRewardPoints"`
	TotalBudgetCoin     int64          `mapstructure:"totalBudgetCoin" structs:"totalBudgetCoin"`
	RegisteredCount     int            `mapstructure:"registeredCount" structs:"registeredCount"`
	CreatedAt           time.Time      `mapstructure:"createdAt" structs:"-"`
}

func (e Event) CategoryID() string {
	if e.Category == nil {
		return ""
	}

	return e.Category.ID
}

type EventFeedback struct {
	ID        string    `mapstructure:"id" structs:"id"`
	EventID   string    `mapstructure:"eventId" structs:"eventId"`
	StudentID string    `mapstructure:"studentId" structs:"studentId"`
	Rating    int       `mapstructure:"rating" structs:"rating"`
	Comment   string    `mapstructure:"comment" structs:"comment"`
	CreatedAt time.Time `mapstructure:"createdAt" structs:"-"`
}

type EventAttendee struct {
	StudentID    string     `mapstructure:"studentId" structs:"studentId"`
	FullName     string     `mapstructure:"fullName" structs:"fullName"`
	Phone        string     `mapstructure:"phone" structs:"phone"`
	CheckedInAt  *time.Time `mapstructure:"checkedInAt" structs:"checkedInAt"`
	RewardPoints int64      `mapstructure:"rewardPoints" structs:"rewardPoints"`
}
