package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	attModel "volunteerhub_backend/internals/features/attendance/attendance/model"
)

type MemoryAttendanceRepository struct {
	mu      sync.RWMutex
	records []attModel.AttendanceModel
}

func NewMemoryAttendanceRepository() *MemoryAttendanceRepository {
	return &MemoryAttendanceRepository{}
}

func (r *MemoryAttendanceRepository) Create(a *attModel.AttendanceModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	if a.Status == "" {
		a.Status = attModel.StatusCheckedIn
	}
	r.records = append(r.records, *a)
	return nil
}

func (r *MemoryAttendanceRepository) FindByUser(userID uuid.UUID) ([]attModel.AttendanceModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []attModel.AttendanceModel
	for i := range r.records {
		if r.records[i].UserID == userID {
			out = append(out, r.records[i])
		}
	}
	return out, nil
}

func (r *MemoryAttendanceRepository) FindByEvent(eventID uuid.UUID) ([]attModel.AttendanceModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []attModel.AttendanceModel
	for i := range r.records {
		if r.records[i].EventID == eventID {
			out = append(out, r.records[i])
		}
	}
	return out, nil
}

func (r *MemoryAttendanceRepository) FindOpen(userID, eventID uuid.UUID) (*attModel.AttendanceModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.records {
		rec := &r.records[i]
		if rec.UserID == userID && rec.EventID == eventID && rec.Open() {
			out := *rec
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *MemoryAttendanceRepository) FindAll() ([]attModel.AttendanceModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]attModel.AttendanceModel, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *MemoryAttendanceRepository) Save(a *attModel.AttendanceModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID == a.ID {
			r.records[i] = *a
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}
