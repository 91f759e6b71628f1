package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusCheckedIn = "checked-in"
	StatusCompleted = "completed"
)

// AttendanceModel is one check-in session. CheckOutTime stays nil and
// Hours stays 0 while the session is open; both are written exactly once
// at check-out. Records are never deleted.
type AttendanceModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index:idx_attendance_user_id" json:"userId"`
	EventID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_attendance_event_id" json:"eventId"`
	CheckInTime  time.Time  `gorm:"not null" json:"checkInTime"`
	CheckOutTime *time.Time `json:"checkOutTime"`
	Hours        float64    `gorm:"not null;default:0" json:"hours"`
	Status       string     `gorm:"size:20;not null;default:'checked-in'" json:"status"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"-"`
}

func (AttendanceModel) TableName() string {
	return "attendance_records"
}

// Open reports whether the session has not been checked out yet.
func (a *AttendanceModel) Open() bool {
	return a.CheckOutTime == nil
}

// BucketDate is the timestamp used for monthly aggregation: check-in when
// present, otherwise check-out.
func (a *AttendanceModel) BucketDate() time.Time {
	if !a.CheckInTime.IsZero() {
		return a.CheckInTime
	}
	if a.CheckOutTime != nil {
		return *a.CheckOutTime
	}
	return time.Time{}
}
