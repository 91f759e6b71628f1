package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"volunteerhub_backend/internals/constants"
	attModel "volunteerhub_backend/internals/features/attendance/attendance/model"
	attRepo "volunteerhub_backend/internals/features/attendance/attendance/repository"
	"volunteerhub_backend/internals/features/events/events/dto"
	eventModel "volunteerhub_backend/internals/features/events/events/model"
	eventRepo "volunteerhub_backend/internals/features/events/events/repository"
	regModel "volunteerhub_backend/internals/features/events/registrations/model"
	regRepo "volunteerhub_backend/internals/features/events/registrations/repository"
	userModel "volunteerhub_backend/internals/features/users/user/model"
	userRepo "volunteerhub_backend/internals/features/users/user/repository"
)

func setupEventService(t *testing.T) *EventService {
	t.Helper()

	svc := NewEventService(
		eventRepo.NewMemoryEventRepository(),
		userRepo.NewMemoryUserRepository(),
		regRepo.NewMemoryRegistrationRepository(),
		attRepo.NewMemoryAttendanceRepository(),
		20,
	)
	svc.Now = func() time.Time {
		return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func seedOrganizer(t *testing.T, svc *EventService) *userModel.UserModel {
	t.Helper()
	u := &userModel.UserModel{Name: "Dana Whitfield", Email: "dana@example.com", Role: constants.RoleOrganizer}
	if err := svc.Users.Create(u); err != nil {
		t.Fatalf("seed organizer: %v", err)
	}
	return u
}

func TestCreateEvent_AppliesDefaults(t *testing.T) {
	svc := setupEventService(t)
	organizer := seedOrganizer(t, svc)

	event, err := svc.CreateEvent(&dto.CreateEventRequest{
		Title:       "Beach Cleanup",
		Date:        "2024-07-01",
		OrganizerID: organizer.ID.String(),
	})
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}

	if event.MaxVolunteers != 20 {
		t.Errorf("expected default capacity 20, got %d", event.MaxVolunteers)
	}
	if event.Category != "general" {
		t.Errorf("expected default category general, got %q", event.Category)
	}
	if event.Status != eventModel.StatusUpcoming {
		t.Errorf("expected status upcoming, got %q", event.Status)
	}
	if event.Date == nil || event.Date.Format("2006-01-02") != "2024-07-01" {
		t.Errorf("expected parsed date 2024-07-01, got %v", event.Date)
	}
	if event.OrganizerID != organizer.ID {
		t.Errorf("expected organizer %v, got %v", organizer.ID, event.OrganizerID)
	}
}

func TestCreateEvent_InvalidOrganizerID(t *testing.T) {
	svc := setupEventService(t)

	_, err := svc.CreateEvent(&dto.CreateEventRequest{OrganizerID: "not-a-uuid"})
	if err == nil {
		t.Fatal("expected an error for a malformed organizer id")
	}
	fe, ok := err.(*fiber.Error)
	if !ok || fe.Code != fiber.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestListEvents_CountsAndOrganizerFallback(t *testing.T) {
	svc := setupEventService(t)
	organizer := seedOrganizer(t, svc)

	known := &eventModel.EventModel{Title: "Known", MaxVolunteers: 2, OrganizerID: organizer.ID, Status: eventModel.StatusUpcoming}
	orphan := &eventModel.EventModel{Title: "Orphan", MaxVolunteers: 20, OrganizerID: uuid.New(), Status: eventModel.StatusUpcoming}
	for _, e := range []*eventModel.EventModel{known, orphan} {
		if err := svc.Events.Create(e); err != nil {
			t.Fatalf("seed event: %v", err)
		}
	}
	for i := 0; i < 2; i++ {
		reg := &regModel.RegistrationModel{EventID: known.ID, UserID: uuid.New(), Status: regModel.StatusRegistered, RegisteredAt: svc.Now()}
		if err := svc.Registrations.Create(reg); err != nil {
			t.Fatalf("seed registration: %v", err)
		}
	}

	list, err := svc.ListEvents()
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 events, got %d", len(list))
	}

	if list[0].Organizer != "Dana Whitfield" {
		t.Errorf("expected organizer name, got %q", list[0].Organizer)
	}
	if list[0].RegisteredCount != 2 || !list[0].IsFull {
		t.Errorf("expected a full event with 2 registrations, got count=%d full=%v", list[0].RegisteredCount, list[0].IsFull)
	}
	if list[1].Organizer != "Unknown" {
		t.Errorf("expected Unknown for a missing organizer, got %q", list[1].Organizer)
	}
	if list[1].IsFull {
		t.Error("expected the empty event not to be full")
	}
}

func TestGetEvent_NotFound(t *testing.T) {
	svc := setupEventService(t)

	_, err := svc.GetEvent(uuid.New())
	if err == nil {
		t.Fatal("expected an error for an unknown event")
	}
	fe, ok := err.(*fiber.Error)
	if !ok || fe.Code != fiber.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestGetEvent_JoinsRegistrants(t *testing.T) {
	svc := setupEventService(t)
	organizer := seedOrganizer(t, svc)

	event := &eventModel.EventModel{Title: "Food Pantry Shift", MaxVolunteers: 20, OrganizerID: organizer.ID, Status: eventModel.StatusUpcoming}
	if err := svc.Events.Create(event); err != nil {
		t.Fatalf("seed event: %v", err)
	}

	volunteer := &userModel.UserModel{Name: "Alice Tran", Email: "alice@example.com", Role: constants.RoleStudent}
	if err := svc.Users.Create(volunteer); err != nil {
		t.Fatalf("seed volunteer: %v", err)
	}
	reg := &regModel.RegistrationModel{EventID: event.ID, UserID: volunteer.ID, Status: regModel.StatusRegistered, RegisteredAt: svc.Now()}
	if err := svc.Registrations.Create(reg); err != nil {
		t.Fatalf("seed registration: %v", err)
	}

	detail, err := svc.GetEvent(event.ID)
	if err != nil {
		t.Fatalf("GetEvent failed: %v", err)
	}
	if detail.RegisteredCount != 1 {
		t.Errorf("expected 1 registration, got %d", detail.RegisteredCount)
	}
	if len(detail.RegisteredUsers) != 1 || detail.RegisteredUsers[0].Name != "Alice Tran" {
		t.Errorf("expected Alice Tran in the registrant list, got %v", detail.RegisteredUsers)
	}
	if detail.Organizer == nil || detail.Organizer.Name != "Dana Whitfield" {
		t.Errorf("expected the organizer record, got %v", detail.Organizer)
	}
}

func TestOrganizerEvents_UnknownOrganizer(t *testing.T) {
	svc := setupEventService(t)

	_, err := svc.OrganizerEvents(uuid.New())
	if err == nil {
		t.Fatal("expected an error for an unknown organizer")
	}
	fe, ok := err.(*fiber.Error)
	if !ok || fe.Code != fiber.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestOrganizerEvents_AttendanceBreakdown(t *testing.T) {
	svc := setupEventService(t)
	organizer := seedOrganizer(t, svc)

	event := &eventModel.EventModel{Title: "Park Tree Planting", MaxVolunteers: 20, OrganizerID: organizer.ID, Status: eventModel.StatusUpcoming}
	if err := svc.Events.Create(event); err != nil {
		t.Fatalf("seed event: %v", err)
	}

	out := svc.Now()
	completed := &attModel.AttendanceModel{UserID: uuid.New(), EventID: event.ID, CheckInTime: out.Add(-3 * time.Hour), CheckOutTime: &out, Hours: 3, Status: attModel.StatusCompleted}
	open := &attModel.AttendanceModel{UserID: uuid.New(), EventID: event.ID, CheckInTime: out, Status: attModel.StatusCheckedIn}
	for _, rec := range []*attModel.AttendanceModel{completed, open} {
		if err := svc.Attendance.Create(rec); err != nil {
			t.Fatalf("seed attendance: %v", err)
		}
	}

	list, err := svc.OrganizerEvents(organizer.ID)
	if err != nil {
		t.Fatalf("OrganizerEvents failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 event, got %d", len(list))
	}
	summary := list[0]
	if summary.CheckedInCount != 1 || summary.CompletedCount != 1 {
		t.Errorf("expected 1 open and 1 completed, got %d/%d", summary.CheckedInCount, summary.CompletedCount)
	}
	if summary.TotalHours != 3 {
		t.Errorf("expected 3 total hours, got %v", summary.TotalHours)
	}
}

func TestCloseElapsedEvents(t *testing.T) {
	svc := setupEventService(t)
	now := svc.Now()

	past := now.AddDate(0, 0, -3)
	today := now
	undated := &eventModel.EventModel{Title: "Undated", MaxVolunteers: 20, OrganizerID: uuid.New(), Status: eventModel.StatusUpcoming}
	elapsed := &eventModel.EventModel{Title: "Elapsed", Date: &past, MaxVolunteers: 20, OrganizerID: uuid.New(), Status: eventModel.StatusUpcoming}
	current := &eventModel.EventModel{Title: "Today", Date: &today, MaxVolunteers: 20, OrganizerID: uuid.New(), Status: eventModel.StatusUpcoming}
	cancelled := &eventModel.EventModel{Title: "Cancelled", Date: &past, MaxVolunteers: 20, OrganizerID: uuid.New(), Status: eventModel.StatusCancelled}
	for _, e := range []*eventModel.EventModel{undated, elapsed, current, cancelled} {
		if err := svc.Events.Create(e); err != nil {
			t.Fatalf("seed event: %v", err)
		}
	}

	closed, err := svc.CloseElapsedEvents(now)
	if err != nil {
		t.Fatalf("CloseElapsedEvents failed: %v", err)
	}
	if closed != 1 {
		t.Errorf("expected 1 closed event, got %d", closed)
	}

	got, err := svc.Events.FindByID(elapsed.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if got.Status != eventModel.StatusCompleted {
		t.Errorf("expected the elapsed event completed, got %q", got.Status)
	}
	for _, id := range []uuid.UUID{undated.ID, current.ID} {
		e, _ := svc.Events.FindByID(id)
		if e.Status != eventModel.StatusUpcoming {
			t.Errorf("event %s should stay upcoming, got %q", e.Title, e.Status)
		}
	}
	kept, _ := svc.Events.FindByID(cancelled.ID)
	if kept.Status != eventModel.StatusCancelled {
		t.Errorf("cancelled event must not be touched, got %q", kept.Status)
	}
}
