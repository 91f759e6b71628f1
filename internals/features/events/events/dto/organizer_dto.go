package dto

import (
	attModel "volunteerhub_backend/internals/features/attendance/attendance/model"
	eventModel "volunteerhub_backend/internals/features/events/events/model"
)

// OrganizerEventSummary is one event on the organizer dashboard with its
// participation numbers.
type OrganizerEventSummary struct {
	eventModel.EventModel
	RegisteredCount int     `json:"registeredCount"`
	IsFull          bool    `json:"isFull"`
	CheckedInCount  int     `json:"checkedInCount"`
	CompletedCount  int     `json:"completedCount"`
	TotalHours      float64 `json:"totalHours"`
}

// RosterEntry is one attendance record joined with the volunteer's name.
type RosterEntry struct {
	attModel.AttendanceModel
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}

// EventRosterResponse is the attendance roster for a single event.
type EventRosterResponse struct {
	Event      eventModel.EventModel `json:"event"`
	Roster     []RosterEntry         `json:"roster"`
	TotalHours float64               `json:"totalHours"`
}
