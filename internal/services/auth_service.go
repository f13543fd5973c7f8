package services

import (
	"context"
	"time"

	"talenthive_backend/internal/auth"
	"talenthive_backend/internal/email"
	"talenthive_backend/internal/logger"
	"talenthive_backend/internal/models"
	"talenthive_backend/internal/repositories"
	"talenthive_backend/internal/services/dto"
	"talenthive_backend/pkg/apperrors"
)

const passwordResetTTL = time.Hour

type AuthService interface {
	SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.SignInResult, error)
	SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.SignInResult, error)
	SignOut(ctx context.Context, userID string) error
	VerifyEmail(ctx context.Context, token string) error
	ResendVerificationEmail(ctx context.Context, userID string) error
	IsEmailVerified(ctx context.Context, userID string) (bool, error)
	SendPasswordResetEmail(ctx context.Context, emailAddr string) error
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
}

type AuthServiceImpl struct {
	users  repositories.UserRepository
	tokens *auth.TokenManager
	mailer email.Sender
}

func NewAuthService(users repositories.UserRepository, tokens *auth.TokenManager, mailer email.Sender) AuthService {
	return &AuthServiceImpl{users: users, tokens: tokens, mailer: mailer}
}

// SignUp creates the unverified user, issues a token pair right away and
// sends the verification email. A failed send surfaces as a 500, there is no
// queue to fall back on.
func (s *AuthServiceImpl) SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.SignInResult, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	verificationToken, err := auth.GenerateRandomToken()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:                   req.Name,
		Email:                  req.Email,
		PasswordHash:           hash,
		Role:                   models.UserRole(req.Role),
		EmailVerificationToken: verificationToken,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	accessToken, refreshToken, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := s.mailer.SendVerificationEmail(ctx, user.Email, user.Name, verificationToken); err != nil {
		logger.Error("failed to send verification email", "to", user.Email, "error", err)
		return nil, apperrors.InternalError(err)
	}

	return &dto.SignInResult{
		User:         dto.NewUserResponse(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *AuthServiceImpl) issueTokens(ctx context.Context, user *models.User) (string, string, error) {
	accessToken, err := s.tokens.GenerateAccessToken(user.ID, string(user.Role))
	if err != nil {
		return "", "", apperrors.InternalError(err)
	}
	refreshToken, err := s.tokens.GenerateRefreshToken(user.ID)
	if err != nil {
		return "", "", apperrors.InternalError(err)
	}
	if err := s.users.SetRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return "", "", apperrors.InternalError(err)
	}
	return accessToken, refreshToken, nil
}

func (s *AuthServiceImpl) SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.SignInResult, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	// Verification state is reported before the password is checked so the
	// frontend can route unverified users to the resend flow.
	if !user.IsEmailVerified {
		return nil, apperrors.ErrEmailNotVerified
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrIncorrectPassword
	}

	accessToken, refreshToken, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.SignInResult{
		User:         dto.NewUserResponse(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *AuthServiceImpl) SignOut(ctx context.Context, userID string) error {
	if err := s.users.ClearRefreshToken(ctx, userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) VerifyEmail(ctx context.Context, token string) error {
	user, err := s.users.FindByVerificationToken(ctx, token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}

	if err := s.users.VerifyEmail(ctx, user.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) ResendVerificationEmail(ctx context.Context, userID string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if user.IsEmailVerified {
		return apperrors.ErrEmailAlreadyVerified
	}

	token, err := auth.GenerateRandomToken()
	if err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.users.SetVerificationToken(ctx, user.ID, token); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.mailer.SendVerificationEmail(ctx, user.Email, user.Name, token); err != nil {
		logger.Error("failed to send verification email", "to", user.Email, "error", err)
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) IsEmailVerified(ctx context.Context, userID string) (bool, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return false, apperrors.ErrUserNotFound
		}
		return false, apperrors.InternalError(err)
	}
	return user.IsEmailVerified, nil
}

func (s *AuthServiceImpl) SendPasswordResetEmail(ctx context.Context, emailAddr string) error {
	user, err := s.users.FindByEmail(ctx, emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	token, err := auth.GenerateRandomToken()
	if err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.users.SetResetToken(ctx, user.ID, token, time.Now().Add(passwordResetTTL)); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.mailer.SendPasswordResetEmail(ctx, user.Email, user.Name, token); err != nil {
		logger.Error("failed to send password reset email", "to", user.Email, "error", err)
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	user, err := s.users.FindByResetToken(ctx, req.Token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.users.ResetPassword(ctx, user.ID, hash); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
