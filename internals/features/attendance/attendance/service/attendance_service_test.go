package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	attModel "volunteerhub_backend/internals/features/attendance/attendance/model"
	attRepo "volunteerhub_backend/internals/features/attendance/attendance/repository"
	eventModel "volunteerhub_backend/internals/features/events/events/model"
	eventRepo "volunteerhub_backend/internals/features/events/events/repository"
)

func setupAttendanceService(t *testing.T) (*AttendanceService, *eventModel.EventModel) {
	t.Helper()

	events := eventRepo.NewMemoryEventRepository()
	event := &eventModel.EventModel{
		Title:         "Beach Cleanup",
		MaxVolunteers: 20,
		OrganizerID:   uuid.New(),
		Status:        eventModel.StatusUpcoming,
	}
	if err := events.Create(event); err != nil {
		t.Fatalf("seed event: %v", err)
	}

	svc := NewAttendanceService(attRepo.NewMemoryAttendanceRepository(), events)
	svc.Now = func() time.Time {
		return time.Date(2024, 6, 15, 8, 30, 0, 0, time.UTC)
	}
	return svc, event
}

func statusCode(t *testing.T, err error) int {
	t.Helper()
	fe, ok := err.(*fiber.Error)
	if !ok {
		t.Fatalf("expected *fiber.Error, got %T: %v", err, err)
	}
	return fe.Code
}

func TestCheckIn_CreatesOpenRecord(t *testing.T) {
	svc, event := setupAttendanceService(t)
	userID := uuid.New()

	record, err := svc.CheckIn(userID, event.ID, nil)
	if err != nil {
		t.Fatalf("CheckIn failed: %v", err)
	}

	if record.Status != attModel.StatusCheckedIn {
		t.Errorf("expected status %q, got %q", attModel.StatusCheckedIn, record.Status)
	}
	if record.Hours != 0 {
		t.Errorf("expected 0 hours while checked in, got %v", record.Hours)
	}
	if record.CheckOutTime != nil {
		t.Errorf("expected nil check-out time, got %v", record.CheckOutTime)
	}
	if !record.CheckInTime.Equal(svc.Now()) {
		t.Errorf("expected check-in to default to the clock, got %v", record.CheckInTime)
	}
}

func TestCheckIn_UnknownEvent(t *testing.T) {
	svc, _ := setupAttendanceService(t)

	_, err := svc.CheckIn(uuid.New(), uuid.New(), nil)
	if err == nil {
		t.Fatal("expected an error for an unknown event")
	}
	if code := statusCode(t, err); code != fiber.StatusNotFound {
		t.Errorf("expected 404, got %d", code)
	}
}

func TestCheckIn_DuplicateConflicts(t *testing.T) {
	svc, event := setupAttendanceService(t)
	userID := uuid.New()

	if _, err := svc.CheckIn(userID, event.ID, nil); err != nil {
		t.Fatalf("first CheckIn failed: %v", err)
	}

	_, err := svc.CheckIn(userID, event.ID, nil)
	if err == nil {
		t.Fatal("expected a conflict for the second check-in")
	}
	if code := statusCode(t, err); code != fiber.StatusConflict {
		t.Errorf("expected 409, got %d", code)
	}
}

func TestCheckOut_ComputesHours(t *testing.T) {
	svc, event := setupAttendanceService(t)
	userID := uuid.New()

	checkIn := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	if _, err := svc.CheckIn(userID, event.ID, &checkIn); err != nil {
		t.Fatalf("CheckIn failed: %v", err)
	}

	checkOut := time.Date(2024, 1, 1, 11, 30, 0, 0, time.UTC)
	hours, record, err := svc.CheckOut(userID, event.ID, &checkOut)
	if err != nil {
		t.Fatalf("CheckOut failed: %v", err)
	}

	if hours != 2.5 {
		t.Errorf("expected 2.5 hours, got %v", hours)
	}
	if record.Status != attModel.StatusCompleted {
		t.Errorf("expected status %q, got %q", attModel.StatusCompleted, record.Status)
	}
	if record.CheckOutTime == nil || !record.CheckOutTime.Equal(checkOut) {
		t.Errorf("expected check-out time %v, got %v", checkOut, record.CheckOutTime)
	}
}

func TestCheckOut_RoundsToTwoDecimals(t *testing.T) {
	svc, event := setupAttendanceService(t)
	userID := uuid.New()

	checkIn := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	if _, err := svc.CheckIn(userID, event.ID, &checkIn); err != nil {
		t.Fatalf("CheckIn failed: %v", err)
	}

	// 100 minutes = 1.666... hours, rounds to 1.67
	checkOut := checkIn.Add(100 * time.Minute)
	hours, _, err := svc.CheckOut(userID, event.ID, &checkOut)
	if err != nil {
		t.Fatalf("CheckOut failed: %v", err)
	}
	if hours != 1.67 {
		t.Errorf("expected 1.67 hours, got %v", hours)
	}
}

func TestCheckOut_WithoutOpenCheckIn(t *testing.T) {
	svc, event := setupAttendanceService(t)

	_, _, err := svc.CheckOut(uuid.New(), event.ID, nil)
	if err == nil {
		t.Fatal("expected an error without an open check-in")
	}
	if code := statusCode(t, err); code != fiber.StatusBadRequest {
		t.Errorf("expected 400, got %d", code)
	}
}

func TestCheckOut_NegativeHoursKeptAsComputed(t *testing.T) {
	svc, event := setupAttendanceService(t)
	userID := uuid.New()

	checkIn := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	if _, err := svc.CheckIn(userID, event.ID, &checkIn); err != nil {
		t.Fatalf("CheckIn failed: %v", err)
	}

	checkOut := checkIn.Add(-90 * time.Minute)
	hours, _, err := svc.CheckOut(userID, event.ID, &checkOut)
	if err != nil {
		t.Fatalf("CheckOut failed: %v", err)
	}
	if hours != -1.5 {
		t.Errorf("expected -1.5 hours (no clamping), got %v", hours)
	}
}

func TestCheckInAgainAfterCheckOut(t *testing.T) {
	svc, event := setupAttendanceService(t)
	userID := uuid.New()

	if _, err := svc.CheckIn(userID, event.ID, nil); err != nil {
		t.Fatalf("CheckIn failed: %v", err)
	}
	if _, _, err := svc.CheckOut(userID, event.ID, nil); err != nil {
		t.Fatalf("CheckOut failed: %v", err)
	}

	// the pair may open a fresh session once the previous one is closed
	if _, err := svc.CheckIn(userID, event.ID, nil); err != nil {
		t.Fatalf("second CheckIn after CheckOut failed: %v", err)
	}
}
