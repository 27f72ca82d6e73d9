package usecases

import (
	"context"
	"fmt"

	"farmgate/internal/application/claim/dto"
	"farmgate/internal/domain/claim"
	"farmgate/internal/shared/errors"
	"farmgate/internal/shared/logger"
)

type GetClaimQuery struct {
	ClaimID uint
	ActorID uint
	IsAdmin bool
}

type GetClaimUseCase struct {
	claimRepo claim.Repository
	logger    logger.Interface
}

func NewGetClaimUseCase(claimRepo claim.Repository, logger logger.Interface) *GetClaimUseCase {
	return &GetClaimUseCase{claimRepo: claimRepo, logger: logger}
}

func (uc *GetClaimUseCase) Execute(ctx context.Context, query GetClaimQuery) (*dto.ClaimDTO, error) {
	if query.ClaimID == 0 {
		return nil, errors.NewValidationError("claim id is required")
	}

	c, err := uc.claimRepo.GetByID(ctx, query.ClaimID)
	if err != nil {
		uc.logger.Errorw("failed to get claim", "error", err, "claim_id", query.ClaimID)
		return nil, fmt.Errorf("failed to get claim: %w", err)
	}
	if c == nil {
		return nil, errors.NewNotFoundError("claim not found")
	}

	// Visible to the two parties and admins only.
	if !query.IsAdmin && c.ClaimantID() != query.ActorID && c.OwnerID() != query.ActorID {
		return nil, errors.NewForbiddenError("you are not a party to this claim")
	}

	return dto.ToClaimDTO(c), nil
}
