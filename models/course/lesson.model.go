package course

import "gorm.io/gorm"

// Lesson represents a single unit of course content
type Lesson struct {
	gorm.Model
	CourseID        uint   `json:"course_id" gorm:"index;not null"`
	ModuleID        *uint  `json:"module_id" gorm:"index"`
	Title           string `json:"title"`
	Description     string `json:"description" gorm:"type:text"`
	Content         string `json:"content" gorm:"type:text"`
	VideoURL        string `json:"video_url"`
	DurationMinutes int    `json:"duration_minutes" gorm:"default:0"`
	OrderIndex      int    `json:"order_index" gorm:"default:0"`
	LessonType      string `json:"lesson_type" gorm:"default:'VIDEO'"` // VIDEO, TEXT, INTERACTIVE, ASSIGNMENT
	Status          string `json:"status" gorm:"default:'ACTIVE'"`     // ACTIVE, DRAFT
	IsDeleted       bool   `gorm:"default:false"`
}
