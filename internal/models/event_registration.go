package models

import "time"

// EventRegistration links a user to an event. One registration per
// (user, event) pair, enforced by the composite unique index.
type EventRegistration struct {
	BaseModel
	EventID      string `gorm:"type:uuid;not null;uniqueIndex:uniq_registrations_user_event"`
	ClubID       string `gorm:"type:uuid;not null;index"` // denormalized owning club
	UserEmail    string `gorm:"not null;uniqueIndex:uniq_registrations_user_event"`
	Status       RegistrationStatus `gorm:"type:varchar(20);not null;default:'registered'"`
	PaymentID    *string
	RegisteredAt time.Time `gorm:"not null"`
}
