package model

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Validator instance
var validate = validator.New()

// UserModel represents the users table.
// JSON tags follow the API contract consumed by the dashboard frontend
// (camelCase), not the column names.
type UserModel struct {
	ID          uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string            `gorm:"size:100;not null" json:"name" validate:"required,min=2,max=100"`
	Email       string            `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password    string            `gorm:"not null" json:"-" validate:"required,min=8"`
	Role        string            `gorm:"type:varchar(20);not null;default:'student'" json:"role" validate:"omitempty,oneof=student organizer admin"`
	Phone       string            `gorm:"size:30" json:"phone,omitempty"`
	Department  string            `gorm:"size:100" json:"department,omitempty"`
	Preferences datatypes.JSONMap `gorm:"type:jsonb" json:"preferences,omitempty"`
	IsActive    bool              `gorm:"not null;default:true" json:"-"`
	JoinedAt    time.Time         `gorm:"column:joined_at;autoCreateTime" json:"joinedAt"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}

// SetDefaultValues fills defaults before validation
func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = "student"
	}
}

// Validate checks the struct against the tag rules above
func (u *UserModel) Validate() error {
	u.SetDefaultValues()

	if err := validate.Struct(u); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			msg := ""
			for _, fieldErr := range ve {
				if msg != "" {
					msg += "; "
				}
				msg += fieldErr.Field() + ": " + fieldErr.Tag()
			}
			return errors.New(msg)
		}
		return err
	}
	return nil
}
