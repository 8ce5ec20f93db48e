package repositories

import (
	"errors"

	"clubsphere_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMembershipNotFound = errors.New("membership not found")

type MembershipRepository interface {
	FindActive(userEmail, clubID string) (*models.Membership, error)
	FindActiveByUser(userEmail string) ([]models.Membership, error)
	ExpireOverdue() (int64, error)
}

type MembershipRepositoryImpl struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &MembershipRepositoryImpl{db: db}
}

func (r *MembershipRepositoryImpl) FindActive(userEmail, clubID string) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.Where("user_email = ? AND club_id = ? AND status = ?",
		userEmail, clubID, models.MembershipStatusActive).First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMembershipNotFound
		}
		return nil, err
	}
	return &membership, nil
}

func (r *MembershipRepositoryImpl) FindActiveByUser(userEmail string) ([]models.Membership, error) {
	var memberships []models.Membership
	err := r.db.Where("user_email = ? AND status = ?",
		userEmail, models.MembershipStatusActive).Find(&memberships).Error
	return memberships, err
}

// ExpireOverdue marks active memberships past their expiry date as expired.
func (r *MembershipRepositoryImpl) ExpireOverdue() (int64, error) {
	result := r.db.Exec(`
		UPDATE memberships
		SET status = 'expired', updated_at = NOW()
		WHERE status = 'active'
		AND expires_at < NOW()
	`)
	return result.RowsAffected, result.Error
}
