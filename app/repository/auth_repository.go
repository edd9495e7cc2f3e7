package repository

import (
	"time"

	"github.com/telecloudhq/telecloud/app/models"
	"gorm.io/gorm"
)

// The three repositories in this file back the external auth subsystem:
// sessions, provider accounts and verification codes. They expose CRUD by id
// plus the unique-field lookups the auth flow needs (session by token,
// account by provider pair, verification by identifier) and promise nothing
// about how sessions are issued or validated.

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository instance
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *models.Session) error {
	return translateError(r.db.Create(session).Error)
}

func (r *sessionRepository) GetByID(id string) (*models.Session, error) {
	var s models.Session
	if err := r.db.Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sessionRepository) GetByToken(token string) (*models.Session, error) {
	var s models.Session
	if err := r.db.Where("token = ?", token).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sessionRepository) DeleteByToken(token string) error {
	res := r.db.Delete(&models.Session{}, "token = ?", token)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteExpired removes every session past its expiry and returns the count.
func (r *sessionRepository) DeleteExpired(now time.Time) (int64, error) {
	res := r.db.Where("expires_at IS NOT NULL AND expires_at < ?", now).Delete(&models.Session{})
	return res.RowsAffected, translateError(res.Error)
}

func (r *sessionRepository) Delete(id string) error {
	res := r.db.Delete(&models.Session{}, "id = ?", id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository instance
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(account *models.Account) error {
	return translateError(r.db.Create(account).Error)
}

func (r *accountRepository) GetByID(id string) (*models.Account, error) {
	var a models.Account
	if err := r.db.Where("id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// GetByProvider looks an account up by its (provider, provider account id)
// pair, the unique key OAuth callbacks identify users with.
func (r *accountRepository) GetByProvider(providerID, providerAccountID string) (*models.Account, error) {
	var a models.Account
	err := r.db.Where("provider_id = ? AND provider_account_id = ?", providerID, providerAccountID).First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *accountRepository) ListByUserID(userID string) ([]models.Account, error) {
	var accounts []models.Account
	err := r.db.Where("user_id = ?", userID).Find(&accounts).Error
	return accounts, err
}

func (r *accountRepository) Update(account *models.Account) error {
	return translateError(r.db.Save(account).Error)
}

func (r *accountRepository) Delete(id string) error {
	res := r.db.Delete(&models.Account{}, "id = ?", id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type verificationRepository struct {
	db *gorm.DB
}

// NewVerificationRepository creates a new verification repository instance
func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &verificationRepository{db: db}
}

func (r *verificationRepository) Create(v *models.Verification) error {
	return translateError(r.db.Create(v).Error)
}

// GetByIdentifier returns the newest verification record for an identifier.
func (r *verificationRepository) GetByIdentifier(identifier string) (*models.Verification, error) {
	var v models.Verification
	err := r.db.Where("identifier = ?", identifier).Order("created_at DESC").First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Consume atomically validates and deletes a verification code. A wrong or
// expired code returns ErrNotFound without consuming anything.
func (r *verificationRepository) Consume(identifier, value string, now time.Time) (*models.Verification, error) {
	var v models.Verification
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("identifier = ? AND value = ?", identifier, value).First(&v).Error; err != nil {
			return err
		}
		if v.IsExpired(now) {
			return ErrNotFound
		}
		return tx.Delete(&models.Verification{}, "id = ?", v.ID).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	return &v, nil
}

// DeleteExpired removes every verification past its expiry and returns the count.
func (r *verificationRepository) DeleteExpired(now time.Time) (int64, error) {
	res := r.db.Where("expires_at IS NOT NULL AND expires_at < ?", now).Delete(&models.Verification{})
	return res.RowsAffected, translateError(res.Error)
}

func (r *verificationRepository) Delete(id string) error {
	res := r.db.Delete(&models.Verification{}, "id = ?", id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
