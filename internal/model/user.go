// Package model contain gorm model for recording data to database
package model

import (
	"time"

	"github.com/google/uuid"
)

var (
	// RoleMember is role for regular job seeker accounts
	RoleMember = "member"
	// RoleAdmin is role for administrator accounts
	RoleAdmin = "admin"
)

// User is gorm model for store account data in DB
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Username       string    `gorm:"uniqueIndex" json:"username"`
	Password       string    `json:"-"`
	GoogleID       string    `json:"-"`
	Email          *string   `json:"email"`
	Tel            *string   `json:"tel"`
	Role           string    `gorm:"type:text" json:"role"`
	ProfilePicture string    `json:"profile_picture"`

	ResumeID *int `json:"resume_id"`
	Resume   File `gorm:"foreignKey:ResumeID;references:ID;constraint:OnDelete:SET NULL;" json:"-"`

	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp" json:"updated_at"`
}

// GoogleUserInfo represents user information retrieved from google userinfo endpoint
type GoogleUserInfo struct {
	GID     string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// FillGoogleInfo fills account fields from google userinfo payload
func (u *User) FillGoogleInfo(info GoogleUserInfo) {
	u.GoogleID = info.GID
	u.Username = info.Email
	u.Email = &info.Email
	u.ProfilePicture = info.Picture
	u.Role = RoleMember
}

// UserResponse is response body for login and register endpoints
type UserResponse struct {
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
}
