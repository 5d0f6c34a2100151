package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/amanshinde1/ai-productivity-dashboard/internal/app/service"
	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/domain"
	"github.com/amanshinde1/ai-productivity-dashboard/pkg/authtoken"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) Create(ctx context.Context, username, email, passwordHash string) (domain.User, error) {
	args := m.Called(ctx, username, email, passwordHash)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) GetByID(ctx context.Context, userID uint64) (domain.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) ListAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *userRepositoryMock) UpdateProfile(ctx context.Context, userID uint64, input domain.UpdateProfileInput) (domain.User, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) UpdatePassword(ctx context.Context, userID uint64, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *userRepositoryMock) CreatePasswordReset(ctx context.Context, userID uint64, token string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, token, expiresAt)
	return args.Error(0)
}

func (m *userRepositoryMock) GetPasswordReset(ctx context.Context, token string) (domain.PasswordReset, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.PasswordReset), args.Error(1)
}

func (m *userRepositoryMock) ConsumePasswordReset(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

type mailerMock struct {
	mock.Mock
}

func (m *mailerMock) Send(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newAuthService(users *userRepositoryMock, mailer *mailerMock) *service.AuthService {
	tokens := authtoken.NewManager("test-secret", time.Minute, time.Hour)
	return service.NewAuthService(users, tokens, mailer, "https://app.example.com", time.Hour)
}

func TestAuthService_Login_Success(t *testing.T) {
	users := new(userRepositoryMock)
	users.On("GetByUsername", mock.Anything, "amara").Return(domain.User{
		ID:           7,
		Username:     "amara",
		PasswordHash: hashPassword(t, "s3cret-pass"),
	}, nil).Once()

	svc := newAuthService(users, new(mailerMock))

	pair, err := svc.Login(context.Background(), "amara", "s3cret-pass")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	users.AssertExpectations(t)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	users := new(userRepositoryMock)
	users.On("GetByUsername", mock.Anything, "amara").Return(domain.User{
		ID:           7,
		Username:     "amara",
		PasswordHash: hashPassword(t, "s3cret-pass"),
	}, nil).Once()

	svc := newAuthService(users, new(mailerMock))

	_, err := svc.Login(context.Background(), "amara", "wrong")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	users := new(userRepositoryMock)
	users.On("GetByUsername", mock.Anything, "ghost").Return(domain.User{}, domain.ErrUserNotFound).Once()

	svc := newAuthService(users, new(mailerMock))

	// Unknown users get the same error as wrong passwords.
	_, err := svc.Login(context.Background(), "ghost", "whatever")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Refresh_ReissuesPair(t *testing.T) {
	users := new(userRepositoryMock)
	users.On("GetByUsername", mock.Anything, "amara").Return(domain.User{
		ID:           7,
		Username:     "amara",
		PasswordHash: hashPassword(t, "s3cret-pass"),
	}, nil).Once()
	users.On("GetByID", mock.Anything, uint64(7)).Return(domain.User{ID: 7, Username: "amara"}, nil).Once()

	svc := newAuthService(users, new(mailerMock))

	pair, err := svc.Login(context.Background(), "amara", "s3cret-pass")
	require.NoError(t, err)

	renewed, err := svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, renewed.AccessToken)
	users.AssertExpectations(t)
}

func TestAuthService_Refresh_AccessTokenRejected(t *testing.T) {
	users := new(userRepositoryMock)
	users.On("GetByUsername", mock.Anything, "amara").Return(domain.User{
		ID:           7,
		Username:     "amara",
		PasswordHash: hashPassword(t, "s3cret-pass"),
	}, nil).Once()

	svc := newAuthService(users, new(mailerMock))

	pair, err := svc.Login(context.Background(), "amara", "s3cret-pass")
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), pair.AccessToken)
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestAuthService_ChangePassword_WrongOldPassword(t *testing.T) {
	users := new(userRepositoryMock)
	users.On("GetByID", mock.Anything, uint64(7)).Return(domain.User{
		ID:           7,
		PasswordHash: hashPassword(t, "current-pass"),
	}, nil).Once()

	svc := newAuthService(users, new(mailerMock))

	err := svc.ChangePassword(context.Background(), 7, "wrong", "new-pass-123")
	require.ErrorIs(t, err, domain.ErrWrongPassword)
}

func TestAuthService_RequestPasswordReset_UnknownEmailIsSilent(t *testing.T) {
	users := new(userRepositoryMock)
	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(domain.User{}, domain.ErrUserNotFound).Once()

	mailer := new(mailerMock)
	svc := newAuthService(users, mailer)

	require.NoError(t, svc.RequestPasswordReset(context.Background(), "ghost@example.com"))
	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_RequestPasswordReset_SendsLink(t *testing.T) {
	users := new(userRepositoryMock)
	users.On("GetByEmail", mock.Anything, "amara@example.com").Return(domain.User{
		ID:       7,
		Username: "amara",
		Email:    "amara@example.com",
	}, nil).Once()

	var issuedToken string
	users.On("CreatePasswordReset", mock.Anything, uint64(7), mock.AnythingOfType("string"), mock.Anything).
		Run(func(args mock.Arguments) {
			issuedToken = args.String(2)
		}).Return(nil).Once()

	mailer := new(mailerMock)
	mailer.On("Send", mock.Anything, "amara@example.com", "Password Reset Request", mock.MatchedBy(func(body string) bool {
		return strings.Contains(body, "https://app.example.com/reset-password?token=")
	})).Return(nil).Once()

	svc := newAuthService(users, mailer)

	require.NoError(t, svc.RequestPasswordReset(context.Background(), "amara@example.com"))
	require.NotEmpty(t, issuedToken)
	users.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestAuthService_ConfirmPasswordReset_Success(t *testing.T) {
	users := new(userRepositoryMock)
	users.On("GetPasswordReset", mock.Anything, "valid-token").Return(domain.PasswordReset{
		ID:        1,
		UserID:    7,
		Token:     "valid-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil).Once()
	users.On("UpdatePassword", mock.Anything, uint64(7), mock.AnythingOfType("string")).Return(nil).Once()
	users.On("ConsumePasswordReset", mock.Anything, "valid-token").Return(nil).Once()

	svc := newAuthService(users, new(mailerMock))

	require.NoError(t, svc.ConfirmPasswordReset(context.Background(), "valid-token", "new-pass-123"))
	users.AssertExpectations(t)
}

func TestAuthService_ConfirmPasswordReset_ExpiredToken(t *testing.T) {
	users := new(userRepositoryMock)
	users.On("GetPasswordReset", mock.Anything, "stale-token").Return(domain.PasswordReset{
		ID:        1,
		UserID:    7,
		Token:     "stale-token",
		ExpiresAt: time.Now().Add(-time.Minute),
	}, nil).Once()

	svc := newAuthService(users, new(mailerMock))

	err := svc.ConfirmPasswordReset(context.Background(), "stale-token", "new-pass-123")
	require.ErrorIs(t, err, domain.ErrInvalidToken)
	users.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_ConfirmPasswordReset_ConsumedToken(t *testing.T) {
	users := new(userRepositoryMock)
	users.On("GetPasswordReset", mock.Anything, "used-token").Return(domain.PasswordReset{
		ID:        1,
		UserID:    7,
		Token:     "used-token",
		ExpiresAt: time.Now().Add(time.Hour),
		Consumed:  true,
	}, nil).Once()

	svc := newAuthService(users, new(mailerMock))

	err := svc.ConfirmPasswordReset(context.Background(), "used-token", "new-pass-123")
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}
