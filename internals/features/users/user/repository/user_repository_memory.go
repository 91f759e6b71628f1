package repository

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "volunteerhub_backend/internals/features/users/user/model"
)

// MemoryUserRepository is the in-process store used when USE_MOCK_DB is
// set. Insertion order is preserved, nothing is ever deleted.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users []userModel.UserModel
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{}
}

func (r *MemoryUserRepository) Create(u *userModel.UserModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.JoinedAt.IsZero() {
		u.JoinedAt = time.Now()
	}
	if u.Role == "" {
		u.Role = "student"
	}
	u.IsActive = true
	r.users = append(r.users, *u)
	return nil
}

func (r *MemoryUserRepository) FindByID(id uuid.UUID) (*userModel.UserModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *MemoryUserRepository) FindByEmail(email string) (*userModel.UserModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, email) {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *MemoryUserRepository) FindAll() ([]userModel.UserModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]userModel.UserModel, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *MemoryUserRepository) Save(u *userModel.UserModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == u.ID {
			u.UpdatedAt = time.Now()
			r.users[i] = *u
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}
