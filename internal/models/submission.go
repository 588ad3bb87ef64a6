package models

import "time"

// CategoryGeneral is the default category assigned to contact submissions
// that do not declare one.
const CategoryGeneral = "general"

// ContactSubmission stores a message sent through the contact form.
// Records are append-only: once created they are never updated or deleted.
type ContactSubmission struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Category   string    `gorm:"size:64;not null;index" json:"category"`
	Name       string    `gorm:"size:160;not null" json:"name"`
	Email      string    `gorm:"size:160;not null" json:"email"`
	Phone      string    `gorm:"size:32" json:"phone,omitempty"`
	Message    string    `gorm:"type:text" json:"message,omitempty"`
	SMSConsent bool      `gorm:"not null;default:false" json:"smsConsent"`
	CreatedAt  time.Time `json:"createdAt"`
}

// BookingSubmission stores a lesson booking request from the BJJ funnel.
type BookingSubmission struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"size:160;not null" json:"name"`
	Email        string    `gorm:"size:160;not null" json:"email"`
	Phone        string    `gorm:"size:32;not null" json:"phone"`
	Program      string    `gorm:"size:120;not null" json:"program"`
	Goals        string    `gorm:"type:text" json:"goals,omitempty"`
	Availability string    `gorm:"type:text" json:"availability,omitempty"`
	SMSConsent   bool      `gorm:"not null" json:"smsConsent"`
	CreatedAt    time.Time `json:"createdAt"`
}
