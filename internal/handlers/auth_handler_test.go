package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talenthive_backend/internal/middleware"
	"talenthive_backend/internal/services/dto"
	"talenthive_backend/internal/validator"
)

type stubAuthService struct {
	result *dto.SignInResult
}

func (s *stubAuthService) SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.SignInResult, error) {
	return s.result, nil
}

func (s *stubAuthService) SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.SignInResult, error) {
	return s.result, nil
}

func (s *stubAuthService) SignOut(ctx context.Context, userID string) error { return nil }

func (s *stubAuthService) VerifyEmail(ctx context.Context, token string) error { return nil }

func (s *stubAuthService) ResendVerificationEmail(ctx context.Context, userID string) error {
	return nil
}

func (s *stubAuthService) IsEmailVerified(ctx context.Context, userID string) (bool, error) {
	return false, nil
}

func (s *stubAuthService) SendPasswordResetEmail(ctx context.Context, emailAddr string) error {
	return nil
}

func (s *stubAuthService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	return nil
}

type stubUserService struct{}

func (s *stubUserService) GetUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	return &dto.UserResponse{ID: userID}, nil
}

func (s *stubUserService) SetJobseekerProfile(ctx context.Context, userID string, req *dto.JobseekerProfileRequest) (*dto.UserResponse, error) {
	return &dto.UserResponse{ID: userID}, nil
}

func (s *stubUserService) SetEmployerProfile(ctx context.Context, userID string, req *dto.EmployerProfileRequest) (*dto.UserResponse, error) {
	return &dto.UserResponse{ID: userID}, nil
}

func newSignedInResult() *dto.SignInResult {
	return &dto.SignInResult{
		User:         &dto.UserResponse{ID: "user-1", Name: "Alice", Role: "jobseeker"},
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
	}
}

func authTestRouter(t *testing.T, result *dto.SignInResult) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewAuthHandler(NewBaseHandler(validator.New()), &stubAuthService{result: result}, &stubUserService{}, false)
	router := gin.New()
	router.POST("/signup", h.SignUp)
	router.POST("/signin", h.SignIn)
	return router
}

func cookieNames(res *http.Response) []string {
	var names []string
	for _, c := range res.Cookies() {
		names = append(names, c.Name)
	}
	return names
}

func TestSignUpResponse(t *testing.T) {
	t.Parallel()
	router := authTestRouter(t, newSignedInResult())

	body := `{"name":"Alice","email":"alice@example.com","password":"secret123","role":"jobseeker"}`
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		StatusCode int                    `json:"statusCode"`
		Data       map[string]interface{} `json:"data"`
		Success    bool                   `json:"success"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, 200, envelope.StatusCode)
	assert.True(t, envelope.Success)
	assert.Equal(t, "access-token", envelope.Data["accessToken"])
	assert.Equal(t, "refresh-token", envelope.Data["refreshToken"])
	require.Contains(t, envelope.Data, "user")

	names := cookieNames(w.Result())
	assert.Contains(t, names, middleware.AccessTokenCookie)
	assert.Contains(t, names, middleware.RefreshTokenCookie)
}

func TestSignInResponse(t *testing.T) {
	t.Parallel()
	router := authTestRouter(t, newSignedInResult())

	body := `{"email":"alice@example.com","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/signin", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "access-token", envelope.Data["accessToken"])
	assert.Equal(t, "refresh-token", envelope.Data["refreshToken"])

	names := cookieNames(w.Result())
	assert.Contains(t, names, middleware.AccessTokenCookie)
	assert.Contains(t, names, middleware.RefreshTokenCookie)
}
