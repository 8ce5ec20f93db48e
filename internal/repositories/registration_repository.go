package repositories

import (
	"errors"

	"clubsphere_backend/internal/models"

	"gorm.io/gorm"
)

var ErrRegistrationNotFound = errors.New("registration not found")

type RegistrationRepository interface {
	Find(userEmail, eventID string) (*models.EventRegistration, error)
	FindByUser(userEmail string) ([]models.EventRegistration, error)
}

type RegistrationRepositoryImpl struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &RegistrationRepositoryImpl{db: db}
}

func (r *RegistrationRepositoryImpl) Find(userEmail, eventID string) (*models.EventRegistration, error) {
	var registration models.EventRegistration
	err := r.db.Where("user_email = ? AND event_id = ?", userEmail, eventID).
		First(&registration).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, err
	}
	return &registration, nil
}

func (r *RegistrationRepositoryImpl) FindByUser(userEmail string) ([]models.EventRegistration, error) {
	var registrations []models.EventRegistration
	err := r.db.Where("user_email = ? AND status = ?",
		userEmail, models.RegistrationStatusRegistered).Find(&registrations).Error
	return registrations, err
}
