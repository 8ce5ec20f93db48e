package models

import "time"

type Event struct {
	BaseModel
	// ClubID is immutable after creation.
	ClubID    string `gorm:"type:uuid;not null;index"`
	Title     string `gorm:"not null"`
	EventDate time.Time
	Location  string
	IsPaid    bool
	Fee       float64 `gorm:"not null;default:0"` // zero when free
}
