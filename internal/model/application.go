package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var (
	// StatusApplied indicates that the application has been submitted and no response yet
	StatusApplied = "applied"
	// StatusPhoneScreen indicates that the application reached a phone screen round
	StatusPhoneScreen = "phone-screen"
	// StatusTechnical indicates that the application reached a technical interview round
	StatusTechnical = "technical"
	// StatusOnsite indicates that the application reached an onsite interview round
	StatusOnsite = "onsite"
	// StatusOffer indicates that the application resulted in an offer
	StatusOffer = "offer"
	// StatusRejected indicates that the application has been rejected
	StatusRejected = "rejected"
)

// ApplicationStatuses lists every status an application can hold.
// Any status may follow any other, there is no transition workflow.
var ApplicationStatuses = []string{
	StatusApplied,
	StatusPhoneScreen,
	StatusTechnical,
	StatusOnsite,
	StatusOffer,
	StatusRejected,
}

// IsValidStatus reports whether s is one of ApplicationStatuses
func IsValidStatus(s string) bool {
	for _, v := range ApplicationStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// EditableApplicationInfo contains the application fields a user can set or edit
type EditableApplicationInfo struct {
	Company       string         `gorm:"type:text" json:"company" binding:"required"`
	Position      string         `gorm:"type:text" json:"position" binding:"required"`
	Location      *string        `gorm:"type:text" json:"location"`
	Salary        *string        `gorm:"type:text" json:"salary"`
	Status        string         `gorm:"type:text" json:"status"`
	AppliedDate   time.Time      `gorm:"type:timestamp" json:"applied_date"`
	InterviewDate *time.Time     `gorm:"type:timestamp" json:"interview_date"`
	Notes         *string        `gorm:"type:text" json:"notes"`
	JobURL        *string        `gorm:"type:text" json:"job_url"`
	Tags          pq.StringArray `gorm:"type:text[]" json:"tags"`
}

// Application represents a job application record tracked by a user
type Application struct {
	ID uint `gorm:"primaryKey;autoIncrement;->" json:"id"`

	// UserID references User.ID (uuid)
	UserID uuid.UUID `gorm:"type:uuid;not null;index;<-:create" json:"user_id"`
	User   User      `gorm:"foreignKey:UserID;references:ID" json:"-"`

	EditableApplicationInfo

	// ResumeID references File.ID, the resume used for this application
	ResumeID *int `json:"resume_id"`
	Resume   File `gorm:"foreignKey:ResumeID;references:ID;constraint:OnDelete:SET NULL;" json:"-"`

	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp" json:"updated_at"`
}
