package usecases

import (
	"context"
	"fmt"

	"farmgate/internal/domain/user"
	"farmgate/internal/shared/errors"
	"farmgate/internal/shared/logger"
)

type RequestPasswordResetCommand struct {
	Email string
}

// RequestPasswordResetUseCase issues a reset passcode and mails it.
// It always reports success for a well-formed request so the endpoint
// cannot be used to probe which emails are registered.
type RequestPasswordResetUseCase struct {
	userRepo user.Repository
	notifier AccountNotifier
	logger   logger.Interface
}

func NewRequestPasswordResetUseCase(
	userRepo user.Repository,
	notifier AccountNotifier,
	logger logger.Interface,
) *RequestPasswordResetUseCase {
	return &RequestPasswordResetUseCase{
		userRepo: userRepo,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *RequestPasswordResetUseCase) Execute(ctx context.Context, cmd RequestPasswordResetCommand) error {
	if cmd.Email == "" {
		return errors.NewValidationError("email is required")
	}

	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		uc.logger.Infow("password reset requested for unknown email", "email", cmd.Email)
		return nil
	}

	code, err := u.BeginPasswordReset()
	if err != nil {
		uc.logger.Errorw("failed to issue reset code", "error", err, "user_id", u.ID())
		return fmt.Errorf("failed to issue reset code: %w", err)
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "error", err, "user_id", u.ID())
		return fmt.Errorf("failed to update user: %w", err)
	}

	if err := uc.notifier.SendPasswordResetCode(ctx, u.Email().String(), u.Name(), code, u.ResetChallenge().ExpiresAt()); err != nil {
		uc.logger.Warnw("failed to send reset code", "error", err, "user_id", u.ID())
	}

	uc.logger.Infow("password reset code issued", "user_id", u.ID())
	return nil
}
