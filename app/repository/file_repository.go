package repository

import (
	"errors"
	"fmt"

	"github.com/telecloudhq/telecloud/app/models"
	"gorm.io/gorm"
)

// fileRepository implements the FileRepository interface, covering stored
// file metadata and sharing grants.
type fileRepository struct {
	db *gorm.DB
}

// NewFileRepository creates a new file repository instance
func NewFileRepository(db *gorm.DB) FileRepository {
	return &fileRepository{db: db}
}

// Create validates and inserts file metadata. A FolderID pointing at a
// missing folder surfaces as ErrForeignKeyViolation.
func (r *fileRepository) Create(file *models.UserFile) error {
	if err := file.Validate(); err != nil {
		return translateError(err)
	}
	return translateError(r.db.Create(file).Error)
}

// GetByID retrieves a file by its ID
func (r *fileRepository) GetByID(id uint) (*models.UserFile, error) {
	var f models.UserFile
	if err := r.db.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// ListByUserID returns a page of a user's files, newest first.
func (r *fileRepository) ListByUserID(userID string, offset, limit int) ([]models.UserFile, error) {
	var files []models.UserFile
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").
		Offset(offset).Limit(limit).Find(&files).Error
	return files, err
}

// ListByFolderID returns all files located directly in a folder.
func (r *fileRepository) ListByFolderID(folderID string) ([]models.UserFile, error) {
	var files []models.UserFile
	err := r.db.Where("folder_id = ?", folderID).Order("file_name").Find(&files).Error
	return files, err
}

// Update validates and persists all fields of a file row.
func (r *fileRepository) Update(file *models.UserFile) error {
	if err := file.Validate(); err != nil {
		return translateError(err)
	}
	return translateError(r.db.Save(file).Error)
}

// Delete removes a file. Sharing grants for it go via FK cascade.
func (r *fileRepository) Delete(id uint) error {
	res := r.db.Delete(&models.UserFile{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// StorageUsage sums the sizes of all files owned by a user.
func (r *fileRepository) StorageUsage(userID string) (int64, error) {
	var total int64
	err := r.db.Model(&models.UserFile{}).Where("user_id = ?", userID).
		Select("COALESCE(SUM(size), 0)").Row().Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to calculate storage usage: %w", err)
	}
	return total, nil
}

// Share creates a sharing grant for a file the user owns.
func (r *fileRepository) Share(userID string, fileID uint) (*models.SharedFile, error) {
	var share *models.SharedFile
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var f models.UserFile
		if err := tx.First(&f, fileID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: file %d does not exist", ErrForeignKeyViolation, fileID)
			}
			return err
		}
		if f.UserID != userID {
			return fmt.Errorf("%w: file %d belongs to another user", ErrForeignKeyViolation, fileID)
		}
		share = &models.SharedFile{FileID: fileID, UserID: userID}
		return tx.Create(share).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	return share, nil
}

// GetShare resolves a sharing grant together with the shared file.
func (r *fileRepository) GetShare(shareID string) (*models.SharedFile, error) {
	var s models.SharedFile
	if err := r.db.Preload("File").Where("id = ?", shareID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// ListShares returns all sharing grants issued by a user.
func (r *fileRepository) ListShares(userID string) ([]models.SharedFile, error) {
	var shares []models.SharedFile
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&shares).Error
	return shares, err
}

// Unshare revokes a sharing grant.
func (r *fileRepository) Unshare(shareID string) error {
	res := r.db.Delete(&models.SharedFile{}, "id = ?", shareID)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
