package service

import (
	"errors"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attModel "volunteerhub_backend/internals/features/attendance/attendance/model"
	attRepo "volunteerhub_backend/internals/features/attendance/attendance/repository"
	eventRepo "volunteerhub_backend/internals/features/events/events/repository"
	helper "volunteerhub_backend/internals/helpers"
)

// AttendanceService owns the check-in/check-out transitions and the hours
// accrual. Mutations for one (user,event) pair are serialized through the
// keyed mutex so a doubled-up request cannot open two sessions.
type AttendanceService struct {
	Attendance attRepo.AttendanceRepository
	Events     eventRepo.EventRepository
	Locks      *helper.KeyedMutex

	// Now is swappable for tests.
	Now func() time.Time
}

func NewAttendanceService(attendance attRepo.AttendanceRepository, events eventRepo.EventRepository) *AttendanceService {
	return &AttendanceService{
		Attendance: attendance,
		Events:     events,
		Locks:      helper.NewKeyedMutex(),
		Now:        time.Now,
	}
}

func pairKey(userID, eventID uuid.UUID) string {
	return userID.String() + "|" + eventID.String()
}

// CheckIn opens a new attendance session. The check-in time defaults to
// the current time when the caller does not supply one.
func (s *AttendanceService) CheckIn(userID, eventID uuid.UUID, checkInTime *time.Time) (*attModel.AttendanceModel, error) {
	key := pairKey(userID, eventID)
	s.Locks.Lock(key)
	defer s.Locks.Unlock(key)

	if _, err := s.Events.FindByID(eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Event not found")
		}
		return nil, err
	}

	if _, err := s.Attendance.FindOpen(userID, eventID); err == nil {
		return nil, fiber.NewError(fiber.StatusConflict, "Already checked in to this event")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	at := s.Now()
	if checkInTime != nil {
		at = *checkInTime
	}

	record := &attModel.AttendanceModel{
		UserID:      userID,
		EventID:     eventID,
		CheckInTime: at,
		Hours:       0,
		Status:      attModel.StatusCheckedIn,
	}
	if err := s.Attendance.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

// CheckOut closes the open session for the pair and computes the accrued
// hours. The difference is kept as computed: fractional, and signed when
// the supplied check-out precedes the check-in. No clamping.
func (s *AttendanceService) CheckOut(userID, eventID uuid.UUID, checkOutTime *time.Time) (float64, *attModel.AttendanceModel, error) {
	key := pairKey(userID, eventID)
	s.Locks.Lock(key)
	defer s.Locks.Unlock(key)

	record, err := s.Attendance.FindOpen(userID, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil, fiber.NewError(fiber.StatusBadRequest, "No active check-in found")
		}
		return 0, nil, err
	}

	out := s.Now()
	if checkOutTime != nil {
		out = *checkOutTime
	}

	hours := roundHours(out.Sub(record.CheckInTime).Hours())

	record.CheckOutTime = &out
	record.Hours = hours
	record.Status = attModel.StatusCompleted
	if err := s.Attendance.Save(record); err != nil {
		return 0, nil, err
	}
	return hours, record, nil
}

// roundHours keeps two decimal places, the precision stored on the record.
func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}
