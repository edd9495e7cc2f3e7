package repository

import (
	"fmt"
	"time"

	"github.com/telecloudhq/telecloud/app/models"
	"gorm.io/gorm"
)

// botTokenRepository implements the BotTokenRepository interface
type botTokenRepository struct {
	db *gorm.DB
}

// NewBotTokenRepository creates a new bot token repository instance
func NewBotTokenRepository(db *gorm.DB) BotTokenRepository {
	return &botTokenRepository{db: db}
}

// Create inserts a bot token row. The token value must be set explicitly
// (use models.NewBotToken); an empty token is a validation error, never a
// shared default.
func (r *botTokenRepository) Create(token *models.BotToken) error {
	if token.Token == "" {
		return fmt.Errorf("%w: bot token value is required", ErrValidation)
	}
	return translateError(r.db.Create(token).Error)
}

// GetByID retrieves a bot token by its ID
func (r *botTokenRepository) GetByID(id string) (*models.BotToken, error) {
	var t models.BotToken
	if err := r.db.Where("id = ?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// GetByToken resolves a raw token value to its row.
func (r *botTokenRepository) GetByToken(token string) (*models.BotToken, error) {
	var t models.BotToken
	if err := r.db.Where("token = ?", token).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// ListByUserID returns all bot tokens owned by a user.
func (r *botTokenRepository) ListByUserID(userID string) ([]models.BotToken, error) {
	var tokens []models.BotToken
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&tokens).Error
	return tokens, err
}

// SetRateLimitedUntil stamps (or clears, with nil) the rate-limit window.
func (r *botTokenRepository) SetRateLimitedUntil(id string, until *time.Time) error {
	res := r.db.Model(&models.BotToken{}).Where("id = ?", id).Update("rate_limited_until", until)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a bot token by its ID
func (r *botTokenRepository) Delete(id string) error {
	res := r.db.Delete(&models.BotToken{}, "id = ?", id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
