package course

import "gorm.io/gorm"

// CourseModule represents a section within a course
type CourseModule struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"` // module order in course
	Status      string `json:"status" gorm:"default:'ACTIVE'"`
	IsDeleted   bool   `gorm:"default:false"`
}
