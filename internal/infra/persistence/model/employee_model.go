// Package model defines the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// EmployeeModel mirrors the 'employees' table. PostgreSQL generates UUIDs via gen_random_uuid().
type EmployeeModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FirstName        string    `gorm:"type:varchar(100);not null"`
	LastName         string    `gorm:"type:varchar(100);not null"`
	Email            string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash     string    `gorm:"type:varchar(255);not null"`
	EmailVerified    bool      `gorm:"not null;default:false"`
	VerificationCode string    `gorm:"type:varchar(16)"`
	Admin            bool      `gorm:"not null;default:false"`
	SocialProvider   string    `gorm:"type:varchar(32)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (EmployeeModel) TableName() string {
	return "employees"
}
