package domain

import "time"

type User struct {
	ID           uint64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type UpdateProfileInput struct {
	Username *string
	Email    *string
}

// TokenPair is what a successful login hands back to the client.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type PasswordReset struct {
	ID        uint64
	UserID    uint64
	Token     string
	ExpiresAt time.Time
	Consumed  bool
	CreatedAt time.Time
}
