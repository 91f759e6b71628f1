package model

import (
	"time"

	"github.com/google/uuid"
)

const StatusRegistered = "registered"

// RegistrationModel links one user to one event. The unique index backs
// the single-registration invariant; the in-memory store enforces the
// same rule in code.
type RegistrationModel struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	EventID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_event_registrations_event_user" json:"eventId"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_event_registrations_event_user" json:"userId"`
	Status       string    `gorm:"size:20;not null;default:'registered'" json:"status"`
	RegisteredAt time.Time `gorm:"autoCreateTime" json:"registeredAt"`
}

func (RegistrationModel) TableName() string {
	return "event_registrations"
}
