package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment tracks a user's registration in a course with aggregate progress
type Enrollment struct {
	gorm.Model
	UserID                uint       `json:"user_id" gorm:"index:idx_enrollment_user_course,unique;not null"`
	CourseID              uint       `json:"course_id" gorm:"index:idx_enrollment_user_course,unique;not null"`
	Status                string     `json:"status" gorm:"default:'ACTIVE'"` // ACTIVE, COMPLETED, PAUSED, CANCELLED
	ProgressPercentage    int        `json:"progress_percentage" gorm:"default:0"`
	EnrolledAt            time.Time  `json:"enrolled_at"`
	CompletedAt           *time.Time `json:"completed_at"`
	LastAccessedAt        *time.Time `json:"last_accessed_at"`
	TotalTimeSpentMinutes int        `json:"total_time_spent_minutes" gorm:"default:0"`
	IsDeleted             bool       `gorm:"default:false"`
}
