package service

import (
	"errors"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attRepo "volunteerhub_backend/internals/features/attendance/attendance/repository"
	"volunteerhub_backend/internals/features/events/events/dto"
	eventModel "volunteerhub_backend/internals/features/events/events/model"
	eventRepo "volunteerhub_backend/internals/features/events/events/repository"
	regRepo "volunteerhub_backend/internals/features/events/registrations/repository"
	userRepo "volunteerhub_backend/internals/features/users/user/repository"
)

type EventService struct {
	Events        eventRepo.EventRepository
	Users         userRepo.UserRepository
	Registrations regRepo.RegistrationRepository
	Attendance    attRepo.AttendanceRepository

	// DefaultCapacity is applied when the payload omits maxVolunteers.
	DefaultCapacity int

	Now func() time.Time
}

func NewEventService(
	events eventRepo.EventRepository,
	users userRepo.UserRepository,
	registrations regRepo.RegistrationRepository,
	attendance attRepo.AttendanceRepository,
	defaultCapacity int,
) *EventService {
	return &EventService{
		Events:          events,
		Users:           users,
		Registrations:   registrations,
		Attendance:      attendance,
		DefaultCapacity: defaultCapacity,
		Now:             time.Now,
	}
}

// CreateEvent applies the creation defaults and stores the event. Beyond
// the organizer reference nothing is validated; sparse events are
// accepted.
func (s *EventService) CreateEvent(req *dto.CreateEventRequest) (*eventModel.EventModel, error) {
	organizerID, err := uuid.Parse(req.OrganizerID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid organizerId")
	}

	event := req.ToModel(s.DefaultCapacity)
	event.OrganizerID = organizerID
	if event.CreatedAt.IsZero() {
		event.CreatedAt = s.Now()
	}
	if err := s.Events.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

// ListEvents returns every event with the organizer display name and the
// live registration count.
func (s *EventService) ListEvents() ([]dto.EventWithDetailsResponse, error) {
	events, err := s.Events.FindAll()
	if err != nil {
		return nil, err
	}

	out := make([]dto.EventWithDetailsResponse, 0, len(events))
	for i := range events {
		event := events[i]

		organizerName := "Unknown"
		if organizer, err := s.Users.FindByID(event.OrganizerID); err == nil {
			organizerName = organizer.Name
		}

		count, err := s.Registrations.CountByEvent(event.ID)
		if err != nil {
			return nil, err
		}

		out = append(out, dto.EventWithDetailsResponse{
			EventModel:      event,
			Organizer:       organizerName,
			RegisteredCount: int(count),
			IsFull:          int(count) >= event.MaxVolunteers,
		})
	}
	return out, nil
}

// GetEvent returns the single-event view with the organizer record and
// the registrant list.
func (s *EventService) GetEvent(eventID uuid.UUID) (*dto.EventDetailResponse, error) {
	event, err := s.Events.FindByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Event not found")
		}
		return nil, err
	}

	regs, err := s.Registrations.FindByEvent(eventID)
	if err != nil {
		return nil, err
	}

	registeredUsers := make([]dto.RegisteredUserResponse, 0, len(regs))
	for i := range regs {
		user, err := s.Users.FindByID(regs[i].UserID)
		if err != nil {
			continue
		}
		registeredUsers = append(registeredUsers, dto.RegisteredUserResponse{
			UserModel:    *user,
			RegisteredAt: regs[i].RegisteredAt,
		})
	}

	organizer, _ := s.Users.FindByID(event.OrganizerID)

	return &dto.EventDetailResponse{
		EventModel:      *event,
		Organizer:       organizer,
		RegisteredUsers: registeredUsers,
		RegisteredCount: len(regs),
		IsFull:          len(regs) >= event.MaxVolunteers,
	}, nil
}

// OrganizerEvents lists the events owned by an organizer with their
// participation numbers.
func (s *EventService) OrganizerEvents(organizerID uuid.UUID) ([]dto.OrganizerEventSummary, error) {
	if _, err := s.Users.FindByID(organizerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return nil, err
	}

	events, err := s.Events.FindByOrganizer(organizerID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.OrganizerEventSummary, 0, len(events))
	for i := range events {
		event := events[i]

		count, err := s.Registrations.CountByEvent(event.ID)
		if err != nil {
			return nil, err
		}

		records, err := s.Attendance.FindByEvent(event.ID)
		if err != nil {
			return nil, err
		}
		checkedIn, completed := 0, 0
		totalHours := 0.0
		for j := range records {
			if records[j].Open() {
				checkedIn++
			} else {
				completed++
			}
			totalHours += records[j].Hours
		}

		out = append(out, dto.OrganizerEventSummary{
			EventModel:      event,
			RegisteredCount: int(count),
			IsFull:          int(count) >= event.MaxVolunteers,
			CheckedInCount:  checkedIn,
			CompletedCount:  completed,
			TotalHours:      math.Round(totalHours*100) / 100,
		})
	}
	return out, nil
}

// EventRoster returns the attendance roster for one event, joined with
// the volunteers' names.
func (s *EventService) EventRoster(eventID uuid.UUID) (*dto.EventRosterResponse, error) {
	event, err := s.Events.FindByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Event not found")
		}
		return nil, err
	}

	records, err := s.Attendance.FindByEvent(eventID)
	if err != nil {
		return nil, err
	}

	roster := make([]dto.RosterEntry, 0, len(records))
	totalHours := 0.0
	for i := range records {
		entry := dto.RosterEntry{AttendanceModel: records[i]}
		if user, err := s.Users.FindByID(records[i].UserID); err == nil {
			entry.UserName = user.Name
			entry.UserEmail = user.Email
		}
		totalHours += records[i].Hours
		roster = append(roster, entry)
	}

	return &dto.EventRosterResponse{
		Event:      *event,
		Roster:     roster,
		TotalHours: math.Round(totalHours*100) / 100,
	}, nil
}

// CloseElapsedEvents flips upcoming events whose day has passed to
// completed. Called periodically by the status scheduler.
func (s *EventService) CloseElapsedEvents(now time.Time) (int, error) {
	events, err := s.Events.FindAll()
	if err != nil {
		return 0, err
	}

	closed := 0
	for i := range events {
		event := events[i]
		if event.Status != eventModel.StatusUpcoming || event.Date == nil {
			continue
		}
		// an event is elapsed once its calendar day is fully behind us
		if event.Date.AddDate(0, 0, 1).After(now) {
			continue
		}
		event.Status = eventModel.StatusCompleted
		if err := s.Events.Save(&event); err != nil {
			return closed, err
		}
		closed++
	}
	return closed, nil
}
