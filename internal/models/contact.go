package models

import (
	"time"

	"gorm.io/gorm"
)

// ContactSubmission holds the values of the contact form at submit time
type ContactSubmission struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone,omitempty" form:"phone"`
	Message string `json:"message" form:"message"`
}

// ContactLead is a contact submission recorded by the database lead inbox.
// Only written when the inbox collaborator is enabled.
type ContactLead struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Name      string `gorm:"type:varchar(255)" json:"name"`
	Email     string `gorm:"type:varchar(255);index" json:"email"`
	Phone     string `gorm:"type:varchar(50)" json:"phone"`
	Message   string `gorm:"type:text" json:"message"`
	SessionID string `gorm:"type:varchar(64)" json:"session_id"`
}
