package repository

import (
	"time"

	"github.com/telecloudhq/telecloud/app/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user-related database operations.
// GetByEmail is the unique-field lookup consumed by the auth layer.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id string) error
	List(offset, limit int) ([]models.User, error)
	Count() (int64, error)
}

// BotTokenRepository defines the interface for bot credential operations.
// Create rejects rows without an explicit token value.
type BotTokenRepository interface {
	Create(token *models.BotToken) error
	GetByID(id string) (*models.BotToken, error)
	GetByToken(token string) (*models.BotToken, error)
	ListByUserID(userID string) ([]models.BotToken, error)
	SetRateLimitedUntil(id string, until *time.Time) error
	Delete(id string) error
}

// SessionRepository is the session half of the auth adapter contract.
type SessionRepository interface {
	Create(session *models.Session) error
	GetByID(id string) (*models.Session, error)
	GetByToken(token string) (*models.Session, error)
	DeleteByToken(token string) error
	DeleteExpired(now time.Time) (int64, error)
	Delete(id string) error
}

// AccountRepository is the provider-account half of the auth adapter contract.
type AccountRepository interface {
	Create(account *models.Account) error
	GetByID(id string) (*models.Account, error)
	GetByProvider(providerID, providerAccountID string) (*models.Account, error)
	ListByUserID(userID string) ([]models.Account, error)
	Update(account *models.Account) error
	Delete(id string) error
}

// VerificationRepository stores ephemeral identifier/value records. Lookup is
// by identifier, never by user.
type VerificationRepository interface {
	Create(v *models.Verification) error
	GetByIdentifier(identifier string) (*models.Verification, error)
	Consume(identifier, value string, now time.Time) (*models.Verification, error)
	DeleteExpired(now time.Time) (int64, error)
	Delete(id string) error
}

// FolderRepository owns the folder tree: materialized path maintenance,
// cycle-checked moves, and subtree deletes.
type FolderRepository interface {
	Create(folder *models.Folder) error
	GetByID(id string) (*models.Folder, error)
	ListByUserID(userID string) ([]models.Folder, error)
	ListChildren(parentID string) ([]models.Folder, error)
	Rename(id, name string) error
	Move(id string, newParentID *string) error
	Delete(id string) error
}

// FileRepository covers stored-file metadata plus sharing grants.
type FileRepository interface {
	Create(file *models.UserFile) error
	GetByID(id uint) (*models.UserFile, error)
	ListByUserID(userID string, offset, limit int) ([]models.UserFile, error)
	ListByFolderID(folderID string) ([]models.UserFile, error)
	Update(file *models.UserFile) error
	Delete(id uint) error
	StorageUsage(userID string) (int64, error)

	Share(userID string, fileID uint) (*models.SharedFile, error)
	GetShare(shareID string) (*models.SharedFile, error)
	ListShares(userID string) ([]models.SharedFile, error)
	Unshare(shareID string) error
}

// PaymentRepository records billing transactions keyed by unique tx_ref.
type PaymentRepository interface {
	Create(payment *models.Payment) error
	GetByID(id string) (*models.Payment, error)
	GetByTxRef(txRef string) (*models.Payment, error)
	ListByUserID(userID string) ([]models.Payment, error)
	MarkDone(txRef string) error
}

// SupportRepository stores contact-form submissions.
type SupportRepository interface {
	Create(ticket *models.SupportTicket) error
	GetByID(id uint) (*models.SupportTicket, error)
	List(offset, limit int) ([]models.SupportTicket, error)
	Delete(id uint) error
}

// Repositories struct holds all repository instances.
type Repositories struct {
	User         UserRepository
	BotToken     BotTokenRepository
	Session      SessionRepository
	Account      AccountRepository
	Verification VerificationRepository
	Folder       FolderRepository
	File         FileRepository
	Payment      PaymentRepository
	Support      SupportRepository
}

// NewRepositories creates a new instance of all repositories.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		BotToken:     NewBotTokenRepository(db),
		Session:      NewSessionRepository(db),
		Account:      NewAccountRepository(db),
		Verification: NewVerificationRepository(db),
		Folder:       NewFolderRepository(db),
		File:         NewFileRepository(db),
		Payment:      NewPaymentRepository(db),
		Support:      NewSupportRepository(db),
	}
}
