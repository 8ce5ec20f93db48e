package repositories

import (
	"errors"

	"clubsphere_backend/internal/models"

	"gorm.io/gorm"
)

var ErrClubNotFound = errors.New("club not found")

type ClubRepository interface {
	FindByID(id string) (*models.Club, error)
	FindApproved(limit, offset int) ([]models.Club, int64, error)
	FindFeatured(limit int) ([]models.Club, error)
	Create(club *models.Club) error
	UpdateStatus(clubID string, status models.ClubStatus) error
}

type ClubRepositoryImpl struct {
	db *gorm.DB
}

func NewClubRepository(db *gorm.DB) ClubRepository {
	return &ClubRepositoryImpl{db: db}
}

func (r *ClubRepositoryImpl) FindByID(id string) (*models.Club, error) {
	var club models.Club
	err := r.db.First(&club, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClubNotFound
		}
		return nil, err
	}
	return &club, nil
}

func (r *ClubRepositoryImpl) FindApproved(limit, offset int) ([]models.Club, int64, error) {
	var clubs []models.Club

	query := r.db.Model(&models.Club{}).Where("status = ?", models.ClubStatusApproved)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&clubs).Error
	return clubs, total, err
}

func (r *ClubRepositoryImpl) FindFeatured(limit int) ([]models.Club, error) {
	var clubs []models.Club
	err := r.db.Where("status = ?", models.ClubStatusApproved).
		Order("created_at DESC").Limit(limit).Find(&clubs).Error
	return clubs, err
}

func (r *ClubRepositoryImpl) Create(club *models.Club) error {
	return r.db.Create(club).Error
}

func (r *ClubRepositoryImpl) UpdateStatus(clubID string, status models.ClubStatus) error {
	result := r.db.Model(&models.Club{}).Where("id = ?", clubID).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClubNotFound
	}
	return nil
}
