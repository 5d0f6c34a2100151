package ports

import (
	"context"
	"time"

	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, username, email, passwordHash string) (domain.User, error)
	GetByID(ctx context.Context, userID uint64) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	ListAll(ctx context.Context) ([]domain.User, error)
	UpdateProfile(ctx context.Context, userID uint64, input domain.UpdateProfileInput) (domain.User, error)
	UpdatePassword(ctx context.Context, userID uint64, passwordHash string) error

	CreatePasswordReset(ctx context.Context, userID uint64, token string, expiresAt time.Time) error
	GetPasswordReset(ctx context.Context, token string) (domain.PasswordReset, error)
	ConsumePasswordReset(ctx context.Context, token string) error
}

type AuthService interface {
	Register(ctx context.Context, input domain.RegisterInput) (domain.User, error)
	Login(ctx context.Context, username, password string) (domain.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (domain.TokenPair, error)
	Profile(ctx context.Context, userID uint64) (domain.User, error)
	UpdateProfile(ctx context.Context, userID uint64, input domain.UpdateProfileInput) (domain.User, error)
	ChangePassword(ctx context.Context, userID uint64, oldPassword, newPassword string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, token, newPassword string) error
}
