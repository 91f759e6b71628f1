package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	regModel "volunteerhub_backend/internals/features/events/registrations/model"
)

type MemoryRegistrationRepository struct {
	mu   sync.RWMutex
	regs []regModel.RegistrationModel
}

func NewMemoryRegistrationRepository() *MemoryRegistrationRepository {
	return &MemoryRegistrationRepository{}
}

func (r *MemoryRegistrationRepository) Create(reg *regModel.RegistrationModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if reg.ID == uuid.Nil {
		reg.ID = uuid.New()
	}
	if reg.RegisteredAt.IsZero() {
		reg.RegisteredAt = time.Now()
	}
	if reg.Status == "" {
		reg.Status = regModel.StatusRegistered
	}
	r.regs = append(r.regs, *reg)
	return nil
}

func (r *MemoryRegistrationRepository) FindByUser(userID uuid.UUID) ([]regModel.RegistrationModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []regModel.RegistrationModel
	for i := range r.regs {
		if r.regs[i].UserID == userID {
			out = append(out, r.regs[i])
		}
	}
	return out, nil
}

func (r *MemoryRegistrationRepository) FindByEvent(eventID uuid.UUID) ([]regModel.RegistrationModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []regModel.RegistrationModel
	for i := range r.regs {
		if r.regs[i].EventID == eventID {
			out = append(out, r.regs[i])
		}
	}
	return out, nil
}

func (r *MemoryRegistrationRepository) FindOne(userID, eventID uuid.UUID) (*regModel.RegistrationModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.regs {
		if r.regs[i].UserID == userID && r.regs[i].EventID == eventID {
			reg := r.regs[i]
			return &reg, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *MemoryRegistrationRepository) CountByEvent(eventID uuid.UUID) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for i := range r.regs {
		if r.regs[i].EventID == eventID {
			count++
		}
	}
	return count, nil
}
