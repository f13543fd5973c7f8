package dto

import "talenthive_backend/internal/models"

type SignUpRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=jobseeker employer"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignInResult struct {
	User         *UserResponse
	AccessToken  string
	RefreshToken string
}

type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type EmailVerifiedResponse struct {
	IsEmailVerified bool `json:"isEmailVerified"`
}

// UserResponse is the safe projection of a user row, credentials and tokens
// stripped.
type UserResponse struct {
	ID              string   `json:"_id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Role            string   `json:"role"`
	IsEmailVerified bool     `json:"isEmailVerified"`
	Resume          string   `json:"resume,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	Experience      string   `json:"experience,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	Location        string   `json:"location,omitempty"`
	CompanyName     string   `json:"companyName,omitempty"`
	CompanySize     string   `json:"companySize,omitempty"`
	Industry        string   `json:"industry,omitempty"`
	Description     string   `json:"description,omitempty"`
}

func NewUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		Role:            string(user.Role),
		IsEmailVerified: user.IsEmailVerified,
		Resume:          user.Resume,
		Skills:          models.SkillsFromJSON(user.Skills),
		Experience:      user.Experience,
		Phone:           user.Phone,
		Location:        user.Location,
		CompanyName:     user.CompanyName,
		CompanySize:     user.CompanySize,
		Industry:        user.Industry,
		Description:     user.Description,
	}
}
