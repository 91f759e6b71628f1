package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventRepo "volunteerhub_backend/internals/features/events/events/repository"
	regModel "volunteerhub_backend/internals/features/events/registrations/model"
	regRepo "volunteerhub_backend/internals/features/events/registrations/repository"
	helper "volunteerhub_backend/internals/helpers"
)

// RegistrationService enforces the two registration invariants: at most
// one registration per (user,event), and no more registrations than the
// event capacity. Both checks are check-then-act, so registrations for
// one event are serialized through the keyed mutex.
type RegistrationService struct {
	Events        eventRepo.EventRepository
	Registrations regRepo.RegistrationRepository
	Locks         *helper.KeyedMutex

	Now func() time.Time
}

func NewRegistrationService(events eventRepo.EventRepository, registrations regRepo.RegistrationRepository) *RegistrationService {
	return &RegistrationService{
		Events:        events,
		Registrations: registrations,
		Locks:         helper.NewKeyedMutex(),
		Now:           time.Now,
	}
}

func (s *RegistrationService) Register(userID, eventID uuid.UUID) (*regModel.RegistrationModel, error) {
	key := eventID.String()
	s.Locks.Lock(key)
	defer s.Locks.Unlock(key)

	event, err := s.Events.FindByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Event not found")
		}
		return nil, err
	}

	if _, err := s.Registrations.FindOne(userID, eventID); err == nil {
		return nil, fiber.NewError(fiber.StatusConflict, "Already registered for this event")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	count, err := s.Registrations.CountByEvent(eventID)
	if err != nil {
		return nil, err
	}
	if int(count) >= event.MaxVolunteers {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Event is full")
	}

	registration := &regModel.RegistrationModel{
		EventID:      eventID,
		UserID:       userID,
		Status:       regModel.StatusRegistered,
		RegisteredAt: s.Now(),
	}
	if err := s.Registrations.Create(registration); err != nil {
		return nil, err
	}
	return registration, nil
}
