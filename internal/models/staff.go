package models

import (
	"time"

	"github.com/google/uuid"
)

// Staff is a personnel record. Staff members are tracked for attendance and
// payroll purposes and do not necessarily have a login account.
type Staff struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FullName   string    `gorm:"not null;size:255" json:"full_name"`
	Email      *string   `gorm:"size:255" json:"email,omitempty"`
	Phone      *string   `gorm:"size:30" json:"phone,omitempty"`
	Role       string    `gorm:"not null;size:100" json:"role"`
	Department *string   `gorm:"size:100" json:"department,omitempty"`
	JoinDate   time.Time `gorm:"type:date;not null" json:"join_date"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Staff) TableName() string {
	return "staff"
}
