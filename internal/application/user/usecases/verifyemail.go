package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"farmgate/internal/application/user/dto"
	"farmgate/internal/domain/otp"
	"farmgate/internal/domain/user"
	"farmgate/internal/shared/errors"
	"farmgate/internal/shared/logger"
)

type VerifyEmailCommand struct {
	Email string
	Code  string
}

type VerifyEmailUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewVerifyEmailUseCase(userRepo user.Repository, logger logger.Interface) *VerifyEmailUseCase {
	return &VerifyEmailUseCase{userRepo: userRepo, logger: logger}
}

func (uc *VerifyEmailUseCase) Execute(ctx context.Context, cmd VerifyEmailCommand) (*dto.UserDTO, error) {
	if cmd.Email == "" || cmd.Code == "" {
		return nil, errors.NewValidationError("email and code are required")
	}

	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, errors.NewNotFoundError("account not found")
	}

	if err := u.VerifyEmail(cmd.Code); err != nil {
		return nil, mapOtpError(err, "verification")
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "error", err, "user_id", u.ID())
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	uc.logger.Infow("email verified", "user_id", u.ID())

	return dto.ToUserDTO(u), nil
}

// mapOtpError translates passcode verification failures into the stable
// error taxonomy shared by all OTP call sites.
func mapOtpError(err error, kind string) error {
	switch {
	case stderrors.Is(err, otp.ErrCodeInvalid):
		return errors.NewInvalidCodeError(fmt.Sprintf("incorrect %s code", kind))
	case stderrors.Is(err, otp.ErrCodeExpired):
		return errors.NewCodeExpiredError(fmt.Sprintf("%s code has expired, request a new one", kind))
	case stderrors.Is(err, otp.ErrNoActiveCode):
		return errors.NewNotFoundError(fmt.Sprintf("no active %s code", kind))
	default:
		return errors.NewValidationError(err.Error())
	}
}
