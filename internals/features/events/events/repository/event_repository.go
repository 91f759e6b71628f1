package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventModel "volunteerhub_backend/internals/features/events/events/model"
)

type EventRepository interface {
	Create(e *eventModel.EventModel) error
	FindByID(id uuid.UUID) (*eventModel.EventModel, error)
	FindAll() ([]eventModel.EventModel, error)
	FindByOrganizer(organizerID uuid.UUID) ([]eventModel.EventModel, error)
	Save(e *eventModel.EventModel) error
}

/* ====================== GORM ====================== */

type GormEventRepository struct {
	DB *gorm.DB
}

func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{DB: db}
}

func (r *GormEventRepository) Create(e *eventModel.EventModel) error {
	return r.DB.Create(e).Error
}

func (r *GormEventRepository) FindByID(id uuid.UUID) (*eventModel.EventModel, error) {
	var event eventModel.EventModel
	if err := r.DB.First(&event, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *GormEventRepository) FindAll() ([]eventModel.EventModel, error) {
	var events []eventModel.EventModel
	if err := r.DB.Order("created_at ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *GormEventRepository) FindByOrganizer(organizerID uuid.UUID) ([]eventModel.EventModel, error) {
	var events []eventModel.EventModel
	if err := r.DB.Where("organizer_id = ?", organizerID).Order("created_at ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *GormEventRepository) Save(e *eventModel.EventModel) error {
	return r.DB.Save(e).Error
}
