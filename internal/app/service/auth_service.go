package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/domain"
	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/ports"
	"github.com/amanshinde1/ai-productivity-dashboard/pkg/authtoken"
)

type AuthService struct {
	userRepository ports.UserRepository
	tokens         *authtoken.Manager
	mailer         ports.Mailer
	frontendURL    string
	resetTokenTTL  time.Duration
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(
	userRepository ports.UserRepository,
	tokens *authtoken.Manager,
	mailer ports.Mailer,
	frontendURL string,
	resetTokenTTL time.Duration,
) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		tokens:         tokens,
		mailer:         mailer,
		frontendURL:    frontendURL,
		resetTokenTTL:  resetTokenTTL,
	}
}

func (s *AuthService) Register(ctx context.Context, input domain.RegisterInput) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	return s.userRepository.Create(ctx, input.Username, input.Email, string(hash))
}

func (s *AuthService) Login(ctx context.Context, username, password string) (domain.TokenPair, error) {
	user, err := s.userRepository.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.TokenPair{}, domain.ErrInvalidCredentials
		}
		return domain.TokenPair{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return domain.TokenPair{}, domain.ErrInvalidCredentials
	}

	return s.issuePair(user)
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (domain.TokenPair, error) {
	claims, err := s.tokens.Parse(refreshToken, authtoken.KindRefresh)
	if err != nil {
		return domain.TokenPair{}, domain.ErrInvalidToken
	}

	// Re-read the user so a deleted account cannot keep refreshing.
	user, err := s.userRepository.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.TokenPair{}, domain.ErrInvalidToken
		}
		return domain.TokenPair{}, err
	}

	return s.issuePair(user)
}

func (s *AuthService) issuePair(user domain.User) (domain.TokenPair, error) {
	access, err := s.tokens.GenerateAccess(user.ID, user.Username)
	if err != nil {
		return domain.TokenPair{}, err
	}
	refresh, err := s.tokens.GenerateRefresh(user.ID, user.Username)
	if err != nil {
		return domain.TokenPair{}, err
	}
	return domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) Profile(ctx context.Context, userID uint64) (domain.User, error) {
	return s.userRepository.GetByID(ctx, userID)
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID uint64, input domain.UpdateProfileInput) (domain.User, error) {
	return s.userRepository.UpdateProfile(ctx, userID, input)
}

func (s *AuthService) ChangePassword(ctx context.Context, userID uint64, oldPassword, newPassword string) error {
	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)) != nil {
		return domain.ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.userRepository.UpdatePassword(ctx, userID, string(hash))
}

// RequestPasswordReset never reports whether the email exists; the
// caller always gets a neutral success.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		return err
	}

	token := uuid.NewString()
	expiresAt := time.Now().Add(s.resetTokenTTL)
	if err := s.userRepository.CreatePasswordReset(ctx, user.ID, token, expiresAt); err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, token)
	body := fmt.Sprintf(
		"Hello %s,\n\n"+
			"You have requested to reset your password. Use the link below to reset it:\n\n"+
			"%s\n\n"+
			"If you did not request this, please ignore this email.\n\n"+
			"Thank you!",
		user.Username, resetLink)

	if err := s.mailer.Send(ctx, user.Email, "Password Reset Request", body); err != nil {
		zap.L().Error("failed to send password reset email",
			zap.Uint64("user_id", user.ID), zap.Error(err))
		return err
	}

	return nil
}

func (s *AuthService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	reset, err := s.userRepository.GetPasswordReset(ctx, token)
	if err != nil {
		return err
	}
	if reset.Consumed || time.Now().After(reset.ExpiresAt) {
		return domain.ErrInvalidToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.userRepository.UpdatePassword(ctx, reset.UserID, string(hash)); err != nil {
		return err
	}

	return s.userRepository.ConsumePasswordReset(ctx, token)
}
