package models

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Account links an external identity-provider login to a user. One user can
// hold several accounts (e.g. google plus a credential provider). Credential
// providers store a bcrypt hash in Password; OAuth providers leave it empty.
type Account struct {
	ID                    string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID                string     `gorm:"type:varchar(36);index;not null" json:"user_id" validate:"required"`
	ProviderID            string     `gorm:"index:provider_account,unique;type:varchar(50);not null" json:"provider_id" validate:"required"`
	ProviderAccountID     string     `gorm:"index:provider_account,unique;type:varchar(191);not null" json:"provider_account_id" validate:"required"`
	AccessToken           string     `gorm:"type:text" json:"-"`
	RefreshToken          string     `gorm:"type:text" json:"-"`
	IDToken               string     `gorm:"type:text" json:"-"`
	Password              string     `gorm:"type:text" json:"-"`
	Scope                 string     `gorm:"type:varchar(255);default:null" json:"scope"`
	ExpiresAt             *time.Time `gorm:"type:timestamp;default:null" json:"expires_at,omitempty"`
	AccessTokenExpiresAt  *time.Time `gorm:"type:timestamp;default:null" json:"-"`
	RefreshTokenExpiresAt *time.Time `gorm:"type:timestamp;default:null" json:"-"`
	CreatedAt             time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// SetPassword hashes and stores a credential-provider password.
func (a *Account) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.Password = string(hash)
	return nil
}

// CheckPassword verifies a credential-provider password against the stored hash.
func (a *Account) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password)) == nil
}
