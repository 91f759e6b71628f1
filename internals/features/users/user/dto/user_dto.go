package dto

import (
	"time"

	"github.com/google/uuid"

	attModel "volunteerhub_backend/internals/features/attendance/attendance/model"
	eventModel "volunteerhub_backend/internals/features/events/events/model"
	userModel "volunteerhub_backend/internals/features/users/user/model"
)

// UpdateProfileRequest uses pointers so "field absent" and "field set to
// empty" can be told apart.
type UpdateProfileRequest struct {
	Name        *string                `json:"name"`
	Phone       *string                `json:"phone"`
	Department  *string                `json:"department"`
	Preferences map[string]interface{} `json:"preferences"`
}

// RegisteredEventResponse is an event joined with the user's registration
// metadata. The outer Status carries the registration status and shadows
// the embedded event status in the JSON output.
type RegisteredEventResponse struct {
	eventModel.EventModel
	RegisteredAt time.Time `json:"registeredAt"`
	Status       string    `json:"status"`
}

// ProfileUser is the stats block of the profile view.
type ProfileUser struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	HoursCompleted float64   `json:"hoursCompleted"`
	EventsAttended int       `json:"eventsAttended"`
	JoinedAt       time.Time `json:"joinedAt"`
}

// UserSummaryResponse is the full profile payload.
type UserSummaryResponse struct {
	User             ProfileUser                `json:"user"`
	RegisteredEvents []RegisteredEventResponse  `json:"registeredEvents"`
	Attendance       []attModel.AttendanceModel `json:"attendance"`
}

// LeaderboardEntry is one leaderboard row.
type LeaderboardEntry struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	HoursCompleted float64   `json:"hoursCompleted"`
	EventsAttended int       `json:"eventsAttended"`
	Role           string    `json:"role"`
}

// ProfileResponse is the trimmed user echoed back after an update.
type ProfileResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Phone      string    `json:"phone"`
	Department string    `json:"department"`
}

func ToProfileResponse(u *userModel.UserModel) *ProfileResponse {
	return &ProfileResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Phone:      u.Phone,
		Department: u.Department,
	}
}
