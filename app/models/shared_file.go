package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SharedFile is a public sharing grant for a stored file. FileID is a real
// FK with cascade, so deleting the file (or its folder subtree, or the user)
// also drops the grant and no dangling share can serve a missing file.
type SharedFile struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	FileID    uint      `gorm:"index;not null" json:"file_id" validate:"required"`
	UserID    string    `gorm:"type:varchar(36);index;not null" json:"user_id" validate:"required"`
	File      UserFile  `gorm:"foreignKey:FileID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"file,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (s *SharedFile) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
