package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	FILE_CATEGORY_DOCUMENT = "document"
	FILE_CATEGORY_IMAGE    = "image"
	FILE_CATEGORY_VIDEO    = "video"
	FILE_CATEGORY_AUDIO    = "audio"
	FILE_CATEGORY_OTHER    = "other"
)

// UserFile is the metadata record of a stored file. The bytes themselves live
// in the user's channel; URL points at the serving endpoint and
// ChannelFileID at the message holding the payload. FolderID is optional,
// files without one sit at the user's root.
type UserFile struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        string    `gorm:"type:varchar(36);index;not null" json:"user_id" validate:"required"`
	FolderID      *string   `gorm:"type:varchar(36);index;default:null" json:"folder_id,omitempty"`
	FileName      string    `gorm:"type:varchar(255);not null" json:"file_name" validate:"required,max=255"`
	MimeType      string    `gorm:"type:varchar(100);not null" json:"mime_type" validate:"required,max=100"`
	Size          int64     `gorm:"type:bigint;not null" json:"size" validate:"gte=0"`
	URL           string    `gorm:"type:varchar(2048);not null" json:"url" validate:"required"`
	ChannelFileID *string   `gorm:"type:varchar(64);default:null" json:"channel_file_id,omitempty"`
	Category      string    `gorm:"type:varchar(50);default:null" json:"category" validate:"omitempty,oneof=document image video audio other"`
	Date          time.Time `gorm:"autoCreateTime" json:"date"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (f *UserFile) Validate() error {
	v := validator.New()

	return v.Struct(f)
}
