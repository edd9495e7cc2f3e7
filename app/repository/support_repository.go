package repository

import (
	"github.com/telecloudhq/telecloud/app/models"
	"gorm.io/gorm"
)

// supportRepository implements the SupportRepository interface
type supportRepository struct {
	db *gorm.DB
}

// NewSupportRepository creates a new support repository instance
func NewSupportRepository(db *gorm.DB) SupportRepository {
	return &supportRepository{db: db}
}

// Create validates and stores a contact-form submission.
func (r *supportRepository) Create(ticket *models.SupportTicket) error {
	if err := ticket.Validate(); err != nil {
		return translateError(err)
	}
	return translateError(r.db.Create(ticket).Error)
}

// GetByID retrieves a ticket by its ID
func (r *supportRepository) GetByID(id uint) (*models.SupportTicket, error) {
	var t models.SupportTicket
	if err := r.db.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// List retrieves a paginated list of tickets, newest first.
func (r *supportRepository) List(offset, limit int) ([]models.SupportTicket, error) {
	var tickets []models.SupportTicket
	err := r.db.Order("date DESC").Offset(offset).Limit(limit).Find(&tickets).Error
	return tickets, err
}

// Delete removes a ticket by its ID
func (r *supportRepository) Delete(id uint) error {
	res := r.db.Delete(&models.SupportTicket{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
