package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"talenthive_backend/internal/middleware"
	"talenthive_backend/internal/models"
	"talenthive_backend/internal/services"
	"talenthive_backend/internal/services/dto"
)

const cookieMaxAge = 60 * 60 * 24 * 10 // 10 days, matches the refresh TTL

type AuthHandler struct {
	*BaseHandler
	authService   services.AuthService
	userService   services.UserService
	secureCookies bool
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, userService services.UserService, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		BaseHandler:   base,
		authService:   authService,
		userService:   userService,
		secureCookies: secureCookies,
	}
}

// SignUp godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Router /api/auth/users/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	result, err := h.authService.SignUp(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setAuthCookies(c, result.AccessToken, result.RefreshToken)
	Respond(c, http.StatusOK, gin.H{
		"user":         result.User,
		"accessToken":  result.AccessToken,
		"refreshToken": result.RefreshToken,
	}, "User registered successfully. Please verify your email.")
}

// SignIn godoc
// @Summary Sign in and receive auth cookies
// @Tags auth
// @Router /api/auth/users/signin [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	result, err := h.authService.SignIn(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setAuthCookies(c, result.AccessToken, result.RefreshToken)
	Respond(c, http.StatusOK, gin.H{
		"user":         result.User,
		"accessToken":  result.AccessToken,
		"refreshToken": result.RefreshToken,
	}, "User signed in successfully")
}

// SignOut godoc
// @Summary Sign out and clear auth cookies
// @Tags auth
// @Router /api/auth/users/signout [get]
func (h *AuthHandler) SignOut(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	if err := h.authService.SignOut(c.Request.Context(), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.clearAuthCookies(c)
	Respond(c, http.StatusOK, nil, "User signed out successfully")
}

// VerifyEmail godoc
// @Summary Verify email with the emailed token
// @Tags auth
// @Router /api/auth/users/verifyEmail/{token} [get]
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	token := c.Param("token")
	if err := h.authService.VerifyEmail(c.Request.Context(), token); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	Respond(c, http.StatusOK, nil, "Email verified successfully")
}

func (h *AuthHandler) ResendVerificationEmail(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	if err := h.authService.ResendVerificationEmail(c.Request.Context(), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	Respond(c, http.StatusOK, nil, "Verification email sent")
}

func (h *AuthHandler) IsEmailVerified(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	verified, err := h.authService.IsEmailVerified(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	Respond(c, http.StatusOK, dto.EmailVerifiedResponse{IsEmailVerified: verified}, "Email verification status")
}

func (h *AuthHandler) SendPasswordResetEmail(c *gin.Context) {
	var req dto.EmailRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	if err := h.authService.SendPasswordResetEmail(c.Request.Context(), req.Email); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	Respond(c, http.StatusOK, nil, "Password reset email sent")
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	if err := h.authService.ResetPassword(c.Request.Context(), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	Respond(c, http.StatusOK, nil, "Password reset successfully")
}

// Me godoc
// @Summary Current user profile
// @Tags auth
// @Router /api/auth/users/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	Respond(c, http.StatusOK, user, "User fetched successfully")
}

// SetProfile dispatches on the authenticated role: jobseekers send a
// multipart form with phone, location and a resume file, employers send
// their company fields.
func (h *AuthHandler) SetProfile(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	switch models.UserRole(h.CurrentRole(c)) {
	case models.UserRoleJobseeker:
		h.setJobseekerProfile(c, userID)
	case models.UserRoleEmployer:
		h.setEmployerProfile(c, userID)
	default:
		Respond(c, http.StatusForbidden, nil, "Profile updates are not available for this role")
	}
}

func (h *AuthHandler) setJobseekerProfile(c *gin.Context, userID string) {
	req := dto.JobseekerProfileRequest{
		Phone:    c.PostForm("phone"),
		Location: c.PostForm("location"),
	}
	if file, err := c.FormFile("file"); err == nil {
		req.ResumeFile = file
	}

	user, err := h.userService.SetJobseekerProfile(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	Respond(c, http.StatusOK, user, "Profile updated successfully")
}

func (h *AuthHandler) setEmployerProfile(c *gin.Context, userID string) {
	req := dto.EmployerProfileRequest{
		CompanyName: c.PostForm("companyName"),
		CompanySize: c.PostForm("companySize"),
		Industry:    c.PostForm("industry"),
		Description: c.PostForm("description"),
		Phone:       c.PostForm("phone"),
		Location:    c.PostForm("location"),
	}

	user, err := h.userService.SetEmployerProfile(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	Respond(c, http.StatusOK, user, "Profile updated successfully")
}

func (h *AuthHandler) setAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.AccessTokenCookie, accessToken, cookieMaxAge, "/", "", h.secureCookies, true)
	c.SetCookie(middleware.RefreshTokenCookie, refreshToken, cookieMaxAge, "/", "", h.secureCookies, true)
}

func (h *AuthHandler) clearAuthCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", h.secureCookies, true)
	c.SetCookie(middleware.RefreshTokenCookie, "", -1, "/", "", h.secureCookies, true)
}
