package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// SupportTicket is a contact-form submission. No user FK: tickets may come
// from visitors who never signed up, so name and email are free-form.
type SupportTicket struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	Name    string    `gorm:"type:varchar(150);not null" json:"name" validate:"required,min=1,max=150"`
	Email   string    `gorm:"type:varchar(200);not null" json:"email" validate:"required,email"`
	Message string    `gorm:"type:text;not null" json:"message" validate:"required,min=1"`
	Date    time.Time `gorm:"autoCreateTime" json:"date"`
}

func (t *SupportTicket) Validate() error {
	v := validator.New()

	return v.Struct(t)
}
