package course

import (
	"time"

	"gorm.io/gorm"
)

// Certificate represents an issued course completion certificate
type Certificate struct {
	gorm.Model
	UserID            uint       `json:"user_id" gorm:"index;not null"`
	CourseID          uint       `json:"course_id" gorm:"index;not null"`
	EnrollmentID      uint       `json:"enrollment_id" gorm:"uniqueIndex;not null"`
	CertificateNumber string     `json:"certificate_number" gorm:"uniqueIndex"`
	CertificateName   string     `json:"certificate_name"`
	FinalScore        int        `json:"final_score"`
	Grade             string     `json:"grade"`
	IssuedAt          time.Time  `json:"issued_at"`
	ValidUntil        *time.Time `json:"valid_until"`
	Status            string     `json:"status" gorm:"default:'ACTIVE'"` // ACTIVE, REVOKED, EXPIRED
	IsDeleted         bool       `gorm:"default:false"`
}
