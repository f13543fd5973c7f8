package models

import (
	"time"

	"gorm.io/datatypes"
)

// User holds identity, credentials and role-specific profile fields on a
// single row, mirroring the document the frontend consumes.
type User struct {
	BaseModel
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`

	IsEmailVerified        bool   `gorm:"default:false" json:"isEmailVerified"`
	EmailVerificationToken string `json:"-"`

	PasswordResetToken   string     `json:"-"`
	PasswordResetExpires *time.Time `json:"-"`

	// Session state lives on the user row, one active refresh token per user.
	RefreshToken string `json:"-"`

	// Jobseeker profile
	Resume     string         `json:"resume,omitempty"`
	Skills     datatypes.JSON `gorm:"type:jsonb" json:"skills,omitempty"`
	Experience string         `json:"experience,omitempty"`
	Phone      string         `json:"phone,omitempty"`
	Location   string         `json:"location,omitempty"`

	// Employer profile
	CompanyName string `json:"companyName,omitempty"`
	CompanySize string `json:"companySize,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Description string `json:"description,omitempty"`
}
