package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/telecloudhq/telecloud/app/models"
	"gorm.io/gorm"
)

// folderRepository implements the FolderRepository interface. The folder tree
// is the one place where the store's declarative constraints are not enough:
// acyclicity cannot be expressed as an FK rule, so every write that touches
// ParentID runs a bounded ancestor walk inside the write transaction and
// fails with ErrCycleDetected before anything is committed. Materialized
// paths are maintained on the same transaction so a path is always the
// ID-chain from the root to the folder.
type folderRepository struct {
	db *gorm.DB
}

// NewFolderRepository creates a new folder repository instance
func NewFolderRepository(db *gorm.DB) FolderRepository {
	return &folderRepository{db: db}
}

// Create inserts a folder under folder.ParentID (nil for a root folder) and
// assigns its materialized path. The parent must belong to the same user.
func (r *folderRepository) Create(folder *models.Folder) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if folder.ID == "" {
			// Assign up front; the path and the self-reference check need it.
			if err := folder.BeforeCreate(tx); err != nil {
				return err
			}
		}
		if folder.ParentID == nil {
			folder.Path = models.RootPath(folder.ID)
		} else {
			if *folder.ParentID == folder.ID {
				return fmt.Errorf("%w: folder %s cannot be its own parent", ErrCycleDetected, folder.ID)
			}
			parent, err := lockFolder(tx, *folder.ParentID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: parent folder %s does not exist", ErrForeignKeyViolation, *folder.ParentID)
				}
				return err
			}
			if parent.UserID != folder.UserID {
				return fmt.Errorf("%w: parent folder belongs to another user", ErrForeignKeyViolation)
			}
			if err := checkAncestry(tx, parent, folder.ID); err != nil {
				return err
			}
			folder.Path = parent.ChildPath(folder.ID)
		}
		if err := folder.Validate(); err != nil {
			return err
		}
		return tx.Create(folder).Error
	})
	return translateError(err)
}

// GetByID retrieves a folder by its ID
func (r *folderRepository) GetByID(id string) (*models.Folder, error) {
	var f models.Folder
	if err := r.db.Where("id = ?", id).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// ListByUserID returns all folders of a user ordered by path, so parents
// always precede their descendants.
func (r *folderRepository) ListByUserID(userID string) ([]models.Folder, error) {
	var folders []models.Folder
	err := r.db.Where("user_id = ?", userID).Order("path").Find(&folders).Error
	return folders, err
}

// ListChildren returns the direct children of a folder.
func (r *folderRepository) ListChildren(parentID string) ([]models.Folder, error) {
	var folders []models.Folder
	err := r.db.Where("parent_id = ?", parentID).Order("name").Find(&folders).Error
	return folders, err
}

// Rename changes a folder's display name. Paths are ID-based, so no
// descendant rewrite is needed.
func (r *folderRepository) Rename(id, name string) error {
	if name == "" {
		return fmt.Errorf("%w: folder name is required", ErrValidation)
	}
	res := r.db.Model(&models.Folder{}).Where("id = ?", id).Update("name", name)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Move reparents a folder (nil makes it a root). It refuses moves that would
// make the folder its own ancestor, then rebases the materialized paths of
// the folder and its whole subtree, all within one transaction.
func (r *folderRepository) Move(id string, newParentID *string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		folder, err := lockFolder(tx, id)
		if err != nil {
			return err
		}

		oldPath := folder.Path
		var newPath string
		if newParentID == nil {
			newPath = models.RootPath(folder.ID)
		} else {
			if *newParentID == id {
				return fmt.Errorf("%w: folder %s cannot be its own parent", ErrCycleDetected, id)
			}
			parent, err := lockFolder(tx, *newParentID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: parent folder %s does not exist", ErrForeignKeyViolation, *newParentID)
				}
				return err
			}
			if parent.UserID != folder.UserID {
				return fmt.Errorf("%w: parent folder belongs to another user", ErrForeignKeyViolation)
			}
			if err := checkAncestry(tx, parent, id); err != nil {
				return err
			}
			newPath = parent.ChildPath(folder.ID)
		}
		if newPath == oldPath && equalParent(folder.ParentID, newParentID) {
			return nil
		}

		updates := map[string]interface{}{"parent_id": newParentID, "path": newPath}
		if err := tx.Model(&models.Folder{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}

		// Rebase every descendant path onto the new prefix. IDs may be
		// caller-supplied, so LIKE wildcards in the old path are escaped.
		var descendants []models.Folder
		if err := tx.Where("path LIKE ? ESCAPE '!'", escapeLike(oldPath)+"/%").Find(&descendants).Error; err != nil {
			return err
		}
		for i := range descendants {
			rebased := models.RebasePath(descendants[i].Path, oldPath, newPath)
			if err := tx.Model(&models.Folder{}).Where("id = ?", descendants[i].ID).
				Update("path", rebased).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return translateError(err)
}

// Delete removes a folder. Child folders and contained files go with it via
// the self-referential and file FK cascades, in the same transaction.
func (r *folderRepository) Delete(id string) error {
	res := r.db.Delete(&models.Folder{}, "id = ?", id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// checkAncestry walks from parent to the root and fails with ErrCycleDetected
// if the chain passes through folderID or exceeds MaxFolderDepth.
func checkAncestry(tx *gorm.DB, parent *models.Folder, folderID string) error {
	current := parent
	for depth := 0; depth < models.MaxFolderDepth; depth++ {
		if current.ID == folderID {
			return fmt.Errorf("%w: folder %s is an ancestor of itself", ErrCycleDetected, folderID)
		}
		if current.ParentID == nil {
			return nil
		}
		next, err := lockFolder(tx, *current.ParentID)
		if err != nil {
			return err
		}
		current = next
	}
	return fmt.Errorf("%w: parent chain exceeds depth %d", ErrCycleDetected, models.MaxFolderDepth)
}

func lockFolder(tx *gorm.DB, id string) (*models.Folder, error) {
	var f models.Folder
	if err := tx.Where("id = ?", id).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// escapeLike neutralizes LIKE wildcards in s using '!' as the escape
// character, which MySQL and SQLite both accept in string literals.
func escapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}

func equalParent(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
