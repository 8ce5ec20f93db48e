package models

// Payment is the ledger record of a confirmed charge. TransactionID is the
// provider's payment intent reference and doubles as the idempotency key:
// a second confirmation for the same id must never produce a second row.
type Payment struct {
	BaseModel
	TransactionID string         `gorm:"uniqueIndex;not null"`
	UserEmail     string         `gorm:"index;not null"`
	Amount        float64        `gorm:"not null"` // major units
	Purpose       PaymentPurpose `gorm:"type:varchar(20);not null"`
	ClubID        *string        `gorm:"type:uuid"`
	EventID       *string        `gorm:"type:uuid"`
	TargetName    string
	Status        string `gorm:"not null"` // provider payment status at commit time
}
