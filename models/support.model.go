package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SupportTicket struct {
	gorm.Model
	UserID      uint           `json:"user_id" gorm:"index;not null"`
	Subject     string         `json:"subject"`
	Description string         `json:"description" gorm:"type:text"`
	Messages    datatypes.JSON `json:"messages"`                             // conversation thread, [{sender, text, time}]
	Status      string         `json:"status" gorm:"default:'OPEN'"`         // OPEN, IN_PROGRESS, RESOLVED, CLOSED
	Priority    string         `json:"priority" gorm:"default:'MEDIUM'"`     // LOW, MEDIUM, HIGH, URGENT
	Category    string         `json:"category" gorm:"default:'GENERAL'"`    // TECHNICAL, COURSE, BILLING, GENERAL
	AssignedTo  *uint          `json:"assigned_to"`
	IsDeleted   bool           `json:"is_deleted" gorm:"default:false"`
}
