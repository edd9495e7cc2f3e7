package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment records one billing transaction against a subscription plan.
// TxRef is the gateway's transaction reference and is unique; replays of the
// same gateway callback fail the unique index instead of double-booking.
type Payment struct {
	ID                       string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID                   string    `gorm:"type:varchar(36);index;not null" json:"user_id" validate:"required"`
	Amount                   string    `gorm:"type:varchar(32);not null" json:"amount" validate:"required"`
	Currency                 string    `gorm:"type:varchar(8);not null" json:"currency" validate:"required,len=3"`
	TxRef                    string    `gorm:"column:tx_ref;uniqueIndex;type:varchar(100);not null" json:"tx_ref" validate:"required"`
	CustomizationTitle       string    `gorm:"type:varchar(255);default:null" json:"customization_title"`
	CustomizationDescription string    `gorm:"type:varchar(255);default:null" json:"customization_description"`
	CustomizationLogo        string    `gorm:"type:varchar(2048);default:null" json:"customization_logo"`
	PaymentDate              time.Time `gorm:"autoCreateTime" json:"payment_date"`
	IsPaymentDone            bool      `gorm:"default:false" json:"is_payment_done"`
	Plan                     string    `gorm:"type:varchar(16);default:null" json:"plan" validate:"omitempty,oneof=ANNUAL MONTHLY"`
}

func (p *Payment) Validate() error {
	v := validator.New()

	return v.Struct(p)
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
