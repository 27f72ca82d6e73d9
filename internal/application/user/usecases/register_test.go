package usecases

import (
	"context"
	"testing"

	"farmgate/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_Success(t *testing.T) {
	userRepo := newMockUserRepository()
	notifier := &mockAccountNotifier{}

	uc := NewRegisterUseCase(userRepo, plainHasher{}, notifier, noopLogger{})

	result, err := uc.Execute(context.Background(), RegisterCommand{
		Email:    "grower@example.com",
		Name:     "Test Grower",
		Password: "long-enough-password",
	})

	require.NoError(t, err)
	assert.NotZero(t, result.ID)
	assert.Equal(t, "pending", result.Status)
	assert.False(t, result.EmailVerified)
	assert.Equal(t, 1, notifier.verificationCalls)
	assert.Len(t, notifier.lastVerifyCode, 6)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo := newMockUserRepository()
	uc := NewRegisterUseCase(userRepo, plainHasher{}, &mockAccountNotifier{}, noopLogger{})

	cmd := RegisterCommand{Email: "grower@example.com", Name: "Test Grower", Password: "long-enough-password"}
	_, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)

	result, err := uc.Execute(context.Background(), cmd)
	assert.Nil(t, result)
	assert.True(t, errors.IsConflictError(err))
}

func TestRegister_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		cmd  RegisterCommand
	}{
		{"bad email", RegisterCommand{Email: "nope", Name: "A B", Password: "long-enough-password"}},
		{"empty name", RegisterCommand{Email: "a@example.com", Password: "long-enough-password"}},
		{"short password", RegisterCommand{Email: "a@example.com", Name: "A B", Password: "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewRegisterUseCase(newMockUserRepository(), plainHasher{}, &mockAccountNotifier{}, noopLogger{})

			result, err := uc.Execute(context.Background(), tt.cmd)

			assert.Nil(t, result)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestRegister_MailFailureStillRegisters(t *testing.T) {
	userRepo := newMockUserRepository()
	uc := NewRegisterUseCase(userRepo, plainHasher{}, &mockAccountNotifier{sendErr: assert.AnError}, noopLogger{})

	result, err := uc.Execute(context.Background(), RegisterCommand{
		Email:    "grower@example.com",
		Name:     "Test Grower",
		Password: "long-enough-password",
	})

	require.NoError(t, err)
	assert.NotZero(t, result.ID)
}

func TestVerifyEmail_ActivatesAccountAndLoginWorks(t *testing.T) {
	userRepo := newMockUserRepository()
	notifier := &mockAccountNotifier{}

	register := NewRegisterUseCase(userRepo, plainHasher{}, notifier, noopLogger{})
	_, err := register.Execute(context.Background(), RegisterCommand{
		Email:    "grower@example.com",
		Name:     "Test Grower",
		Password: "long-enough-password",
	})
	require.NoError(t, err)

	// Login is refused until the email is verified.
	login := NewLoginUseCase(userRepo, plainHasher{}, &mockJWTService{}, noopLogger{})
	_, err = login.Execute(context.Background(), LoginCommand{Email: "grower@example.com", Password: "long-enough-password"})
	assert.True(t, errors.IsForbiddenError(err))

	verify := NewVerifyEmailUseCase(userRepo, noopLogger{})
	result, err := verify.Execute(context.Background(), VerifyEmailCommand{
		Email: "grower@example.com",
		Code:  notifier.lastVerifyCode,
	})
	require.NoError(t, err)
	assert.True(t, result.EmailVerified)
	assert.Equal(t, "active", result.Status)

	loggedIn, err := login.Execute(context.Background(), LoginCommand{Email: "grower@example.com", Password: "long-enough-password"})
	require.NoError(t, err)
	assert.NotEmpty(t, loggedIn.AccessToken)
}

func TestVerifyEmail_WrongCode(t *testing.T) {
	userRepo := newMockUserRepository()
	register := NewRegisterUseCase(userRepo, plainHasher{}, &mockAccountNotifier{}, noopLogger{})
	_, err := register.Execute(context.Background(), RegisterCommand{
		Email:    "grower@example.com",
		Name:     "Test Grower",
		Password: "long-enough-password",
	})
	require.NoError(t, err)

	verify := NewVerifyEmailUseCase(userRepo, noopLogger{})
	result, err := verify.Execute(context.Background(), VerifyEmailCommand{Email: "grower@example.com", Code: "000000"})

	assert.Nil(t, result)
	assert.True(t, errors.IsInvalidCodeError(err))
}
