package models

import (
	"time"

	"gorm.io/gorm"
)

// Notice is an announcement shown on user dashboards
type Notice struct {
	gorm.Model
	Title          string     `json:"title"`
	Content        string     `json:"content" gorm:"type:text"`
	Type           string     `json:"type" gorm:"default:'GENERAL'"`          // GENERAL, URGENT, MAINTENANCE, UPDATE
	TargetAudience string     `json:"target_audience" gorm:"default:'ALL'"`   // ALL, AGENTS, FIELD_OFFICERS, ADMINS
	IsActive       bool       `json:"is_active" gorm:"default:true"`
	PublishedAt    *time.Time `json:"published_at"`
	ExpiresAt      *time.Time `json:"expires_at"`
	CreatedBy      uint       `json:"created_by" gorm:"index;not null"`
	IsDeleted      bool       `gorm:"default:false"`
}
