package handlers

import (
	"context"

	userdto "farmgate/internal/application/user/dto"
	"farmgate/internal/application/user/usecases"
)

// Use case interfaces for AuthHandler - enable unit testing with mocks.

type registerUseCase interface {
	Execute(ctx context.Context, cmd usecases.RegisterCommand) (*userdto.UserDTO, error)
}

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error)
}

type verifyEmailUseCase interface {
	Execute(ctx context.Context, cmd usecases.VerifyEmailCommand) (*userdto.UserDTO, error)
}

type requestPasswordResetUseCase interface {
	Execute(ctx context.Context, cmd usecases.RequestPasswordResetCommand) error
}

type resetPasswordUseCase interface {
	Execute(ctx context.Context, cmd usecases.ResetPasswordCommand) error
}

type getUserUseCase interface {
	Execute(ctx context.Context, userID uint) (*userdto.UserDTO, error)
}
