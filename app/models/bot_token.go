package models

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BotToken is a credential a user hands to an automation bot so it can read
// and write files in the user's channel. Tokens are generated per row; there
// is deliberately no shared default value, so a missing token is rejected at
// creation time instead of silently colliding with every other unset token.
type BotToken struct {
	ID               string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID           string     `gorm:"type:varchar(36);index;not null" json:"user_id" validate:"required"`
	Token            string     `gorm:"type:varchar(191);not null" json:"-" validate:"required"`
	RateLimitedUntil *time.Time `gorm:"type:timestamp;default:null" json:"rate_limited_until,omitempty"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// NewBotToken builds a token row with a freshly generated secret.
func NewBotToken(userID string) (*BotToken, error) {
	t := &BotToken{UserID: userID}
	if err := t.GenerateToken(); err != nil {
		return nil, err
	}
	return t, nil
}

// GenerateToken fills Token with a random hex secret.
func (b *BotToken) GenerateToken() error {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return err
	}
	b.Token = hex.EncodeToString(buf)
	return nil
}

func (b *BotToken) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// IsRateLimited reports whether the token is currently under a rate-limit window.
func (b *BotToken) IsRateLimited(now time.Time) bool {
	return b.RateLimitedUntil != nil && now.Before(*b.RateLimitedUntil)
}
