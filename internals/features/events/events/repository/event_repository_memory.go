package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	eventModel "volunteerhub_backend/internals/features/events/events/model"
)

type MemoryEventRepository struct {
	mu     sync.RWMutex
	events []eventModel.EventModel
}

func NewMemoryEventRepository() *MemoryEventRepository {
	return &MemoryEventRepository{}
}

func (r *MemoryEventRepository) Create(e *eventModel.EventModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	r.events = append(r.events, *e)
	return nil
}

func (r *MemoryEventRepository) FindByID(id uuid.UUID) (*eventModel.EventModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.events {
		if r.events[i].ID == id {
			e := r.events[i]
			return &e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *MemoryEventRepository) FindAll() ([]eventModel.EventModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]eventModel.EventModel, len(r.events))
	copy(out, r.events)
	return out, nil
}

func (r *MemoryEventRepository) FindByOrganizer(organizerID uuid.UUID) ([]eventModel.EventModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []eventModel.EventModel
	for i := range r.events {
		if r.events[i].OrganizerID == organizerID {
			out = append(out, r.events[i])
		}
	}
	return out, nil
}

func (r *MemoryEventRepository) Save(e *eventModel.EventModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.events {
		if r.events[i].ID == e.ID {
			r.events[i] = *e
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}
