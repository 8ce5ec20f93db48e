package models

import "time"

// Membership links a user to a club. At most one active membership may
// exist per (user, club) pair; a partial unique index enforces this at the
// database level (see database.Migrate).
type Membership struct {
	BaseModel
	UserEmail string           `gorm:"not null;index:idx_memberships_user_club"`
	ClubID    string           `gorm:"type:uuid;not null;index:idx_memberships_user_club"`
	Status    MembershipStatus `gorm:"type:varchar(20);not null;default:'active'"`
	PaymentID *string          // provider transaction id; nil for free grants
	JoinedAt  time.Time        `gorm:"not null"`
	ExpiresAt time.Time        `gorm:"not null;index"`
}
