package usecases

import (
	"context"
	"fmt"

	"farmgate/internal/application/user/dto"
	"farmgate/internal/domain/user"
	"farmgate/internal/shared/errors"
	"farmgate/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	User        *dto.UserDTO `json:"user"`
	AccessToken string       `json:"access_token"`
	ExpiresIn   int64        `json:"expires_in"`
}

type LoginUseCase struct {
	userRepo   user.Repository
	hasher     user.PasswordHasher
	jwtService JWTService
	logger     logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	jwtService JWTService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// One generic error for a missing account and a wrong password, so
	// the endpoint does not reveal which emails are registered.
	if u == nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}
	if err := u.VerifyPassword(cmd.Password, uc.hasher); err != nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if !u.CanPerformActions() {
		if u.Status().IsPending() {
			return nil, errors.NewForbiddenError("email is not verified yet")
		}
		return nil, errors.NewForbiddenError("account is not active")
	}

	tokens, err := uc.jwtService.Generate(u.ID(), string(u.Role()))
	if err != nil {
		uc.logger.Errorw("failed to generate token", "error", err, "user_id", u.ID())
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	uc.logger.Infow("user logged in", "user_id", u.ID())

	return &LoginResult{
		User:        dto.ToUserDTO(u),
		AccessToken: tokens.AccessToken,
		ExpiresIn:   tokens.ExpiresIn,
	}, nil
}
