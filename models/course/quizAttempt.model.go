package course

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuizAttempt is one graded submission of a quiz.
// Rows are append-only and never updated after creation.
type QuizAttempt struct {
	gorm.Model
	UserID           uint           `json:"user_id" gorm:"index;not null"`
	QuizID           uint           `json:"quiz_id" gorm:"index;not null"`
	EnrollmentID     uint           `json:"enrollment_id" gorm:"index;not null"`
	Answers          datatypes.JSON `json:"answers"` // question id -> selected option index
	Score            int            `json:"score"`
	TotalQuestions   int            `json:"total_questions"`
	CorrectAnswers   int            `json:"correct_answers"`
	Passed           bool           `json:"passed" gorm:"default:false"`
	StartedAt        time.Time      `json:"started_at"`
	CompletedAt      time.Time      `json:"completed_at"`
	TimeTakenMinutes int            `json:"time_taken_minutes"`
	IsDeleted        bool           `gorm:"default:false"`
}
