package usecases

import (
	"context"
	"fmt"

	"farmgate/internal/application/user/dto"
	"farmgate/internal/domain/user"
	"farmgate/internal/shared/errors"
	"farmgate/internal/shared/logger"
)

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, userID uint) (*dto.UserDTO, error) {
	if userID == 0 {
		return nil, errors.NewValidationError("user id is required")
	}

	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	return dto.ToUserDTO(u), nil
}
