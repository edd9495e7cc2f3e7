package models

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxFolderDepth bounds the ancestor walk during cycle checking. A parent
// chain longer than this is treated as corrupt.
const MaxFolderDepth = 64

// Folder is a node in a per-user folder tree. ParentID is a self-referential
// FK with cascade, so deleting a folder removes its whole subtree at the
// storage level. Path is the materialized chain of folder IDs from the root
// ("/<rootID>/.../<ID>") and is maintained by the folder repository.
type Folder struct {
	ID       string  `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name     string  `gorm:"type:varchar(255);not null" json:"name" validate:"required,min=1,max=255"`
	UserID   string  `gorm:"type:varchar(36);index;not null" json:"user_id" validate:"required"`
	ParentID *string `gorm:"type:varchar(36);index;default:null" json:"parent_id,omitempty"`
	Path     string  `gorm:"type:varchar(2048);not null" json:"path"`

	Children []Folder   `gorm:"foreignKey:ParentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Files    []UserFile `gorm:"foreignKey:FolderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (f *Folder) Validate() error {
	v := validator.New()

	return v.Struct(f)
}

func (f *Folder) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// ChildPath returns the materialized path a direct child of f must carry.
func (f *Folder) ChildPath(childID string) string {
	return f.Path + "/" + childID
}

// RootPath returns the materialized path of a root folder.
func RootPath(id string) string {
	return "/" + id
}

// IsDescendantPath reports whether path lies strictly inside the subtree
// rooted at ancestorPath.
func IsDescendantPath(path, ancestorPath string) bool {
	return strings.HasPrefix(path, ancestorPath+"/")
}

// RebasePath rewrites a descendant path from oldBase onto newBase. The caller
// must have checked IsDescendantPath first.
func RebasePath(path, oldBase, newBase string) string {
	return newBase + strings.TrimPrefix(path, oldBase)
}
