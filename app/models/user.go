package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PLAN_ANNUAL  = "ANNUAL"
	PLAN_MONTHLY = "MONTHLY"
)

// User is the tenant root: every owned row (bot tokens, sessions, accounts,
// shares, payments, folders, files) hangs off User.ID and is removed by FK
// cascade when the user is deleted.
type User struct {
	ID                string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name              string     `gorm:"type:varchar(150);not null" json:"name" validate:"required,min=1,max=150"`
	Email             string     `gorm:"uniqueIndex;type:varchar(200);not null" json:"email" validate:"required,email,min=5,max=200"`
	ImageURL          string     `gorm:"type:varchar(255);default:null" json:"image_url" validate:"max=255"`
	ChannelUsername   *string    `gorm:"uniqueIndex;type:varchar(191);default:null" json:"channel_username,omitempty"`
	ChannelID         *string    `gorm:"uniqueIndex;type:varchar(64);default:null" json:"channel_id,omitempty"`
	AccessHash        string     `gorm:"type:varchar(191);default:null" json:"-"`
	ChannelTitle      string     `gorm:"type:varchar(255);default:null" json:"channel_title"`
	HasPublicChannel  bool       `gorm:"default:false" json:"has_public_channel"`
	IsSubscribedToPro bool       `gorm:"default:false" json:"is_subscribed_to_pro"`
	SubscriptionDate  *time.Time `gorm:"type:timestamp;default:null" json:"subscription_date,omitempty"`
	Plan              string     `gorm:"type:varchar(16);default:null" json:"plan" validate:"omitempty,oneof=ANNUAL MONTHLY"`
	EmailVerified     bool       `gorm:"default:false" json:"email_verified"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	BotTokens   []BotToken   `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Sessions    []Session    `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Accounts    []Account    `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	SharedFiles []SharedFile `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Payments    []Payment    `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Folders     []Folder     `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Files       []UserFile   `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (u *User) Validate() error {
	v := validator.New()

	return v.Struct(u)
}

// BeforeCreate assigns a UUID primary key when the caller did not set one.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// HasActiveSubscription reports whether the pro flag is set and a plan is chosen.
func (u *User) HasActiveSubscription() bool {
	return u.IsSubscribedToPro && (u.Plan == PLAN_ANNUAL || u.Plan == PLAN_MONTHLY)
}

// LinkChannel records the messaging-channel identity backing this user's storage.
func (u *User) LinkChannel(username, channelID, accessHash, title string, public bool) {
	u.ChannelUsername = &username
	u.ChannelID = &channelID
	u.AccessHash = accessHash
	u.ChannelTitle = title
	u.HasPublicChannel = public
}

// HasLinkedChannel reports whether a channel identity is attached.
func (u *User) HasLinkedChannel() bool {
	return u.ChannelID != nil && *u.ChannelID != ""
}
