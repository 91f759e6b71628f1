package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "volunteerhub_backend/internals/features/users/user/model"
)

// UserRepository is the store capability set the services depend on.
// Both implementations report a missing row as gorm.ErrRecordNotFound so
// callers have a single sentinel to check.
type UserRepository interface {
	Create(u *userModel.UserModel) error
	FindByID(id uuid.UUID) (*userModel.UserModel, error)
	FindByEmail(email string) (*userModel.UserModel, error)
	FindAll() ([]userModel.UserModel, error)
	Save(u *userModel.UserModel) error
}

/* ====================== GORM ====================== */

type GormUserRepository struct {
	DB *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{DB: db}
}

func (r *GormUserRepository) Create(u *userModel.UserModel) error {
	return r.DB.Create(u).Error
}

func (r *GormUserRepository) FindByID(id uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := r.DB.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) FindByEmail(email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) FindAll() ([]userModel.UserModel, error) {
	var users []userModel.UserModel
	if err := r.DB.Order("joined_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *GormUserRepository) Save(u *userModel.UserModel) error {
	return r.DB.Save(u).Error
}
