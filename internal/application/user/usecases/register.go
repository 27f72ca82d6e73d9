package usecases

import (
	"context"
	"fmt"

	"farmgate/internal/application/user/dto"
	"farmgate/internal/domain/user"
	uservo "farmgate/internal/domain/user/valueobjects"
	"farmgate/internal/shared/errors"
	"farmgate/internal/shared/logger"
)

type RegisterCommand struct {
	Email    string
	Name     string
	Password string
}

type RegisterUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	notifier AccountNotifier
	logger   logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	notifier AccountNotifier,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*dto.UserDTO, error) {
	email, err := uservo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to check existing user", "error", err)
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("an account with this email already exists")
	}

	u, err := user.NewUser(email, cmd.Name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := u.SetPassword(cmd.Password, uc.hasher); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	code, err := u.BeginEmailVerification()
	if err != nil {
		uc.logger.Errorw("failed to issue verification code", "error", err)
		return nil, fmt.Errorf("failed to issue verification code: %w", err)
	}

	if err := uc.userRepo.Save(ctx, u); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("an account with this email already exists")
		}
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	// Best-effort: a lost mail only delays verification, the user can
	// request a fresh code.
	if err := uc.notifier.SendVerificationCode(ctx, email.String(), u.Name(), code, u.VerificationChallenge().ExpiresAt()); err != nil {
		uc.logger.Warnw("failed to send verification code", "error", err, "user_id", u.ID())
	}

	uc.logger.Infow("user registered", "user_id", u.ID(), "email", email.String())

	return dto.ToUserDTO(u), nil
}
