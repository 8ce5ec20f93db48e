package repositories

import (
	"errors"

	"clubsphere_backend/internal/models"

	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

type EventRepository interface {
	FindByID(id string) (*models.Event, error)
	FindAll(limit, offset int) ([]models.Event, int64, error)
	FindByClub(clubID string) ([]models.Event, error)
	Create(event *models.Event) error
}

type EventRepositoryImpl struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &EventRepositoryImpl{db: db}
}

func (r *EventRepositoryImpl) FindByID(id string) (*models.Event, error) {
	var event models.Event
	err := r.db.First(&event, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *EventRepositoryImpl) FindAll(limit, offset int) ([]models.Event, int64, error) {
	var events []models.Event

	var total int64
	if err := r.db.Model(&models.Event{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("event_date ASC").Limit(limit).Offset(offset).Find(&events).Error
	return events, total, err
}

func (r *EventRepositoryImpl) FindByClub(clubID string) ([]models.Event, error) {
	var events []models.Event
	err := r.db.Where("club_id = ?", clubID).Order("event_date ASC").Find(&events).Error
	return events, err
}

func (r *EventRepositoryImpl) Create(event *models.Event) error {
	return r.db.Create(event).Error
}
