package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Verification is an ephemeral identifier/value pair, e.g. an email address
// mapped to its verification code. There is intentionally no user FK; rows
// are looked up by identifier and may precede the user record.
type Verification struct {
	ID         string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	Identifier string     `gorm:"type:varchar(200);index;not null" json:"identifier" validate:"required"`
	Value      string     `gorm:"type:varchar(255);not null" json:"-" validate:"required"`
	ExpiresAt  *time.Time `gorm:"type:timestamp;default:null" json:"expires_at,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (v *Verification) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

// IsExpired reports whether the verification code is past its expiry.
func (v *Verification) IsExpired(now time.Time) bool {
	return v.ExpiresAt != nil && now.After(*v.ExpiresAt)
}
