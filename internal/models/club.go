package models

type Club struct {
	BaseModel
	Name          string `gorm:"not null"`
	Description   string
	Location      string
	MembershipFee float64    `gorm:"not null;default:0"` // major units, yearly
	ManagerEmail  string     `gorm:"index;not null"`
	Status        ClubStatus `gorm:"type:varchar(20);not null;default:'pending'"`

	Events []Event `gorm:"foreignKey:ClubID"`
}
