package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

const (
	StatusUpcoming  = "upcoming"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// EventModel represents the events table. Date is nullable: events may be
// created without a date, and the dashboard falls back to CreatedAt when
// bucketing them.
type EventModel struct {
	ID            uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title         string            `gorm:"size:255" json:"title"`
	Description   string            `gorm:"type:text" json:"description"`
	Date          *time.Time        `gorm:"column:event_date" json:"date"`
	Time          string            `gorm:"size:20" json:"time"`
	Location      string            `gorm:"size:255" json:"location"`
	MaxVolunteers int               `gorm:"not null" json:"maxVolunteers"`
	OrganizerID   uuid.UUID         `gorm:"type:uuid;not null;index:idx_events_organizer_id" json:"organizerId"`
	Category      string            `gorm:"size:50;not null;default:'general'" json:"category"`
	Tags          pq.StringArray    `gorm:"type:text[]" json:"tags,omitempty"`
	Metadata      datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`
	Status        string            `gorm:"size:20;not null;default:'upcoming'" json:"status"`
	CreatedAt     time.Time         `gorm:"autoCreateTime" json:"createdAt"`
}

func (EventModel) TableName() string {
	return "events"
}

// BucketDate is the timestamp used for monthly aggregation: the event day
// when present, otherwise the creation time.
func (e *EventModel) BucketDate() time.Time {
	if e.Date != nil && !e.Date.IsZero() {
		return *e.Date
	}
	return e.CreatedAt
}
