package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	attModel "volunteerhub_backend/internals/features/attendance/attendance/model"
)

type AttendanceRepository interface {
	Create(a *attModel.AttendanceModel) error
	FindByUser(userID uuid.UUID) ([]attModel.AttendanceModel, error)
	FindByEvent(eventID uuid.UUID) ([]attModel.AttendanceModel, error)
	// FindOpen returns the first not-yet-checked-out record for the pair in
	// stored order, or gorm.ErrRecordNotFound.
	FindOpen(userID, eventID uuid.UUID) (*attModel.AttendanceModel, error)
	FindAll() ([]attModel.AttendanceModel, error)
	Save(a *attModel.AttendanceModel) error
}

/* ====================== GORM ====================== */

type GormAttendanceRepository struct {
	DB *gorm.DB
}

func NewGormAttendanceRepository(db *gorm.DB) *GormAttendanceRepository {
	return &GormAttendanceRepository{DB: db}
}

func (r *GormAttendanceRepository) Create(a *attModel.AttendanceModel) error {
	return r.DB.Create(a).Error
}

func (r *GormAttendanceRepository) FindByUser(userID uuid.UUID) ([]attModel.AttendanceModel, error) {
	var records []attModel.AttendanceModel
	if err := r.DB.Where("user_id = ?", userID).Order("created_at ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *GormAttendanceRepository) FindByEvent(eventID uuid.UUID) ([]attModel.AttendanceModel, error) {
	var records []attModel.AttendanceModel
	if err := r.DB.Where("event_id = ?", eventID).Order("created_at ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *GormAttendanceRepository) FindOpen(userID, eventID uuid.UUID) (*attModel.AttendanceModel, error) {
	var record attModel.AttendanceModel
	if err := r.DB.
		Where("user_id = ? AND event_id = ? AND check_out_time IS NULL", userID, eventID).
		Order("created_at ASC").
		First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *GormAttendanceRepository) FindAll() ([]attModel.AttendanceModel, error) {
	var records []attModel.AttendanceModel
	if err := r.DB.Order("created_at ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *GormAttendanceRepository) Save(a *attModel.AttendanceModel) error {
	return r.DB.Save(a).Error
}
