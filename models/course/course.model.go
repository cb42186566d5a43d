package course

import "gorm.io/gorm"

// Course represents a training course
type Course struct {
	gorm.Model
	Title        string `json:"title"`
	Description  string `json:"description" gorm:"type:text"`
	Instructor   string `json:"instructor"`
	Duration     string `json:"duration"`
	Level        string `json:"level" gorm:"default:'BEGINNER'"`   // BEGINNER, INTERMEDIATE, ADVANCED
	Category     string `json:"category"`
	Status       string `json:"status" gorm:"default:'DRAFT'"`     // DRAFT, ACTIVE, ARCHIVED
	ThumbnailURL string `json:"thumbnail_url"`
	TargetRole   string `json:"target_role" gorm:"default:'BOTH'"` // AGENT, FIELD_OFFICER, BOTH
	PassingScore int    `json:"passing_score" gorm:"default:70"`
	IsFeatured   bool   `json:"is_featured" gorm:"default:false"`
	IsDeleted    bool   `gorm:"default:false"`
}
