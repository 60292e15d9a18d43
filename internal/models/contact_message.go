package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ContactNew       = "new"
	ContactRead      = "read"
	ContactResponded = "responded"
)

// ContactMessage is a submission from the public contact form.
type ContactMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	Email     string    `gorm:"not null;size:255" json:"email"`
	Phone     *string   `gorm:"size:30" json:"phone,omitempty"`
	Subject   string    `gorm:"not null;size:255" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Status    string    `gorm:"size:20;not null;default:'new';index" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
