package dto

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	eventModel "volunteerhub_backend/internals/features/events/events/model"
	userModel "volunteerhub_backend/internals/features/users/user/model"
)

// CreateEventRequest carries the organizer's payload. Only the organizer
// reference is mandatory; events with a missing title or date are
// accepted, and the dashboard falls back to createdAt for bucketing.
type CreateEventRequest struct {
	Title         string                 `json:"title"`
	Description   string                 `json:"description"`
	Date          string                 `json:"date"`
	Time          string                 `json:"time"`
	Location      string                 `json:"location"`
	MaxVolunteers int                    `json:"maxVolunteers"`
	OrganizerID   string                 `json:"organizerId" validate:"required,uuid4"`
	Category      string                 `json:"category"`
	Tags          []string               `json:"tags"`
	Metadata      map[string]interface{} `json:"metadata"`
}

// ParseDate accepts either a full timestamp or a plain calendar day.
func (r *CreateEventRequest) ParseDate() *time.Time {
	raw := strings.TrimSpace(r.Date)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

// ToModel applies the creation defaults: capacity, category and status.
func (r *CreateEventRequest) ToModel(defaultCapacity int) *eventModel.EventModel {
	maxVolunteers := r.MaxVolunteers
	if maxVolunteers <= 0 {
		maxVolunteers = defaultCapacity
	}
	category := r.Category
	if category == "" {
		category = "general"
	}

	return &eventModel.EventModel{
		Title:         r.Title,
		Description:   r.Description,
		Date:          r.ParseDate(),
		Time:          r.Time,
		Location:      r.Location,
		MaxVolunteers: maxVolunteers,
		Category:      category,
		Tags:          r.Tags,
		Metadata:      datatypes.JSONMap(r.Metadata),
		Status:        eventModel.StatusUpcoming,
	}
}

// EventWithDetailsResponse is one row of the event listing: the event plus
// the organizer display name and the live registration headcount.
type EventWithDetailsResponse struct {
	eventModel.EventModel
	Organizer       string `json:"organizer"`
	RegisteredCount int    `json:"registeredCount"`
	IsFull          bool   `json:"isFull"`
}

// RegisteredUserResponse is a registrant joined with their registration time.
type RegisteredUserResponse struct {
	userModel.UserModel
	RegisteredAt time.Time `json:"registeredAt"`
}

// EventDetailResponse is the single-event view with the full organizer
// record and the registrant list.
type EventDetailResponse struct {
	eventModel.EventModel
	Organizer       *userModel.UserModel     `json:"organizer"`
	RegisteredUsers []RegisteredUserResponse `json:"registeredUsers"`
	RegisteredCount int                      `json:"registeredCount"`
	IsFull          bool                     `json:"isFull"`
}
