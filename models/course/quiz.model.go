package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Quiz represents a graded assessment attached to a course
type Quiz struct {
	gorm.Model
	CourseID               uint   `json:"course_id" gorm:"index;not null"`
	LessonID               *uint  `json:"lesson_id" gorm:"index"`
	Title                  string `json:"title"`
	Description            string `json:"description" gorm:"type:text"`
	TimeLimitMinutes       int    `json:"time_limit_minutes" gorm:"default:30"`
	PassingScore           int    `json:"passing_score" gorm:"default:70"`
	MaxAttempts            int    `json:"max_attempts" gorm:"default:3"`
	IsFinalQuiz            bool   `json:"is_final_quiz" gorm:"default:false"`
	ShuffleQuestions       bool   `json:"shuffle_questions" gorm:"default:true"`
	ShowResultsImmediately bool   `json:"show_results_immediately" gorm:"default:true"`
	Status                 string `json:"status" gorm:"default:'ACTIVE'"` // ACTIVE, DRAFT
	IsDeleted              bool   `gorm:"default:false"`
}

// QuizQuestion represents one question in a quiz.
// Options holds the ordered choice texts; CorrectAnswer is an index into it.
type QuizQuestion struct {
	gorm.Model
	QuizID        uint           `json:"quiz_id" gorm:"index;not null"`
	Question      string         `json:"question" gorm:"type:text"`
	Options       datatypes.JSON `json:"options"`
	CorrectAnswer int            `json:"correct_answer"`
	Explanation   string         `json:"explanation" gorm:"type:text"`
	Points        int            `json:"points" gorm:"default:1"`
	OrderIndex    int            `json:"order_index" gorm:"default:0"`
	QuestionType  string         `json:"question_type" gorm:"default:'MULTIPLE_CHOICE'"` // MULTIPLE_CHOICE, TRUE_FALSE, FILL_BLANK
	IsDeleted     bool           `gorm:"default:false"`
}
