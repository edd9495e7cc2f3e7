package repository

import (
	"github.com/telecloudhq/telecloud/app/models"
	"gorm.io/gorm"
)

// paymentRepository implements the PaymentRepository interface
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository instance
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// Create validates and inserts a payment. A replayed tx_ref surfaces as
// ErrConstraintViolation, which callers treat as "already recorded".
func (r *paymentRepository) Create(payment *models.Payment) error {
	if err := payment.Validate(); err != nil {
		return translateError(err)
	}
	return translateError(r.db.Create(payment).Error)
}

// GetByID retrieves a payment by its ID
func (r *paymentRepository) GetByID(id string) (*models.Payment, error) {
	var p models.Payment
	if err := r.db.Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByTxRef retrieves a payment by its gateway transaction reference.
func (r *paymentRepository) GetByTxRef(txRef string) (*models.Payment, error) {
	var p models.Payment
	if err := r.db.Where("tx_ref = ?", txRef).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByUserID returns all payments of a user, newest first.
func (r *paymentRepository) ListByUserID(userID string) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("user_id = ?", userID).Order("payment_date DESC").Find(&payments).Error
	return payments, err
}

// MarkDone flips the completion flag of the payment identified by tx_ref.
func (r *paymentRepository) MarkDone(txRef string) error {
	res := r.db.Model(&models.Payment{}).Where("tx_ref = ?", txRef).Update("is_payment_done", true)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
