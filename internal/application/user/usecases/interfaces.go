package usecases

import (
	"context"
	"time"
)

// TokenPair is the issued access credential.
type TokenPair struct {
	AccessToken string
	ExpiresIn   int64
}

// JWTService issues signed access tokens.
type JWTService interface {
	Generate(userID uint, role string) (*TokenPair, error)
}

// AccountNotifier mails account passcodes. Dispatch failures are logged
// and swallowed by callers; the user can always request a fresh code.
type AccountNotifier interface {
	SendVerificationCode(ctx context.Context, email, name, code string, expiresAt time.Time) error
	SendPasswordResetCode(ctx context.Context, email, name, code string, expiresAt time.Time) error
}
