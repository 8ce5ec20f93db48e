package repositories

import (
	"errors"

	"clubsphere_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrDuplicateTransaction: a payment row with this transaction id was
	// committed by an earlier (or concurrent) confirmation.
	ErrDuplicateTransaction = errors.New("payment with this transaction id already exists")

	// ErrDuplicateEntitlement: the membership/registration unique index
	// rejected the insert.
	ErrDuplicateEntitlement = errors.New("entitlement already exists for this subject and target")
)

// PaymentRepository is the entitlement ledger. CommitMembershipPurchase and
// CommitRegistrationPurchase persist the payment record and the entitlement
// in a single database transaction. The unique indexes on
// payments.transaction_id and on the entitlement tables are the
// authoritative guard under concurrent confirmations; application-level
// pre-checks in the services are an optimization only.
type PaymentRepository interface {
	FindByTransactionID(transactionID string) (*models.Payment, error)
	FindByUserEmail(userEmail string, limit, offset int) ([]models.Payment, int64, error)
	FindAll(limit, offset int) ([]models.Payment, int64, error)

	// payment may be nil for free grants (no charge happened).
	CommitMembershipPurchase(payment *models.Payment, membership *models.Membership) error
	CommitRegistrationPurchase(payment *models.Payment, registration *models.EventRegistration) error
}

type PaymentRepositoryImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &PaymentRepositoryImpl{db: db}
}

func (r *PaymentRepositoryImpl) FindByTransactionID(transactionID string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.Where("transaction_id = ?", transactionID).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepositoryImpl) FindByUserEmail(userEmail string, limit, offset int) ([]models.Payment, int64, error) {
	var payments []models.Payment

	query := r.db.Model(&models.Payment{}).Where("user_email = ?", userEmail)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&payments).Error
	return payments, total, err
}

func (r *PaymentRepositoryImpl) FindAll(limit, offset int) ([]models.Payment, int64, error) {
	var payments []models.Payment

	var total int64
	if err := r.db.Model(&models.Payment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&payments).Error
	return payments, total, err
}

func (r *PaymentRepositoryImpl) CommitMembershipPurchase(payment *models.Payment, membership *models.Membership) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if payment != nil {
			if err := tx.Create(payment).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return ErrDuplicateTransaction
				}
				return err
			}
		}

		if err := tx.Create(membership).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateEntitlement
			}
			return err
		}

		return nil
	})
}

func (r *PaymentRepositoryImpl) CommitRegistrationPurchase(payment *models.Payment, registration *models.EventRegistration) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if payment != nil {
			if err := tx.Create(payment).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return ErrDuplicateTransaction
				}
				return err
			}
		}

		if err := tx.Create(registration).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateEntitlement
			}
			return err
		}

		return nil
	})
}
