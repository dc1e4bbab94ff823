package model

import (
	"time"

	"github.com/google/uuid"
)

// CareerPlan is gorm model for a user's career plan, a named group of milestones
type CareerPlan struct {
	ID uint `gorm:"primaryKey;autoIncrement;->" json:"id"`

	// UserID references User.ID (uuid)
	UserID uuid.UUID `gorm:"type:uuid;not null;index;<-:create" json:"user_id"`
	User   User      `gorm:"foreignKey:UserID;references:ID" json:"-"`

	Title       string `gorm:"type:text" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	Milestones []Milestone `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE;" json:"milestones"`

	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp" json:"updated_at"`
}

// Milestone is a dated, completable target grouped under a career plan
type Milestone struct {
	ID     uint `gorm:"primaryKey;autoIncrement;->" json:"id"`
	PlanID uint `gorm:"not null;index" json:"plan_id"`

	Title       string    `gorm:"type:text" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	TargetDate  time.Time `gorm:"type:timestamp" json:"target_date"`
	Completed   bool      `gorm:"default:false" json:"completed"`
}
