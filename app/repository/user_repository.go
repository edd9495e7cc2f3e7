package repository

import (
	"github.com/telecloudhq/telecloud/app/models"
	"gorm.io/gorm"
)

// userRepository implements the UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create validates and inserts a new user. A duplicate email surfaces as
// ErrConstraintViolation.
func (r *userRepository) Create(user *models.User) error {
	if err := user.Validate(); err != nil {
		return translateError(err)
	}
	return translateError(r.db.Create(user).Error)
}

// GetByID retrieves a user by their ID
func (r *userRepository) GetByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by their email address
func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update validates and persists all fields of an existing user.
func (r *userRepository) Update(user *models.User) error {
	if err := user.Validate(); err != nil {
		return translateError(err)
	}
	return translateError(r.db.Save(user).Error)
}

// Delete removes a user. All owned rows (bot tokens, sessions, accounts,
// shares, payments, folders, files) go with it via FK cascade, inside the
// same statement-level transaction as the user delete.
func (r *userRepository) Delete(id string) error {
	res := r.db.Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// List retrieves a paginated list of users
func (r *userRepository) List(offset, limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&users).Error
	return users, err
}

// Count returns the total number of users
func (r *userRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}
