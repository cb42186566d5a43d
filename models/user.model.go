package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name        string     `json:"name"`
	Email       string     `json:"email" gorm:"uniqueIndex;not null"`
	Mobile      string     `json:"mobile"`
	Password    string     `json:"-"`
	Role        string     `json:"role" gorm:"default:'AGENT'"` // AGENT, FIELD_OFFICER, ADMIN
	Department  string     `json:"department"`
	IsActive    bool       `json:"is_active" gorm:"default:true"`
	LastLoginAt *time.Time `json:"last_login_at"`
	IsDeleted   bool       `gorm:"default:false"`
}
