package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	regModel "volunteerhub_backend/internals/features/events/registrations/model"
)

type RegistrationRepository interface {
	Create(reg *regModel.RegistrationModel) error
	FindByUser(userID uuid.UUID) ([]regModel.RegistrationModel, error)
	FindByEvent(eventID uuid.UUID) ([]regModel.RegistrationModel, error)
	// FindOne returns gorm.ErrRecordNotFound when the pair is not registered.
	FindOne(userID, eventID uuid.UUID) (*regModel.RegistrationModel, error)
	CountByEvent(eventID uuid.UUID) (int64, error)
}

/* ====================== GORM ====================== */

type GormRegistrationRepository struct {
	DB *gorm.DB
}

func NewGormRegistrationRepository(db *gorm.DB) *GormRegistrationRepository {
	return &GormRegistrationRepository{DB: db}
}

func (r *GormRegistrationRepository) Create(reg *regModel.RegistrationModel) error {
	return r.DB.Create(reg).Error
}

func (r *GormRegistrationRepository) FindByUser(userID uuid.UUID) ([]regModel.RegistrationModel, error) {
	var regs []regModel.RegistrationModel
	if err := r.DB.Where("user_id = ?", userID).Order("registered_at ASC").Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *GormRegistrationRepository) FindByEvent(eventID uuid.UUID) ([]regModel.RegistrationModel, error) {
	var regs []regModel.RegistrationModel
	if err := r.DB.Where("event_id = ?", eventID).Order("registered_at ASC").Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *GormRegistrationRepository) FindOne(userID, eventID uuid.UUID) (*regModel.RegistrationModel, error) {
	var reg regModel.RegistrationModel
	if err := r.DB.Where("user_id = ? AND event_id = ?", userID, eventID).First(&reg).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *GormRegistrationRepository) CountByEvent(eventID uuid.UUID) (int64, error) {
	var count int64
	if err := r.DB.Model(&regModel.RegistrationModel{}).Where("event_id = ?", eventID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
