package course

import (
	"time"

	"gorm.io/gorm"
)

// LessonProgress tracks a user's completion of one lesson
type LessonProgress struct {
	gorm.Model
	UserID           uint       `json:"user_id" gorm:"index:idx_progress_user_lesson,unique;not null"`
	LessonID         uint       `json:"lesson_id" gorm:"index:idx_progress_user_lesson,unique;not null"`
	EnrollmentID     uint       `json:"enrollment_id" gorm:"index;not null"`
	Completed        bool       `json:"completed" gorm:"default:false"`
	CompletedAt      *time.Time `json:"completed_at"`
	TimeSpentMinutes int        `json:"time_spent_minutes" gorm:"default:0"`
	IsDeleted        bool       `gorm:"default:false"`
}
