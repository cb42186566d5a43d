package models

import (
	"time"

	"gorm.io/gorm"
)

type OTP struct {
	gorm.Model
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Code      string    `json:"-"`
	Purpose   string    `json:"purpose" gorm:"default:'FORGOT_PASSWORD'"`
	ExpiresAt time.Time `json:"expires_at"`
	Used      bool      `json:"used" gorm:"default:false"`
	IsDeleted bool      `gorm:"default:false"`
}
