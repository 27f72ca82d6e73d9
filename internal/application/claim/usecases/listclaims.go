package usecases

import (
	"context"
	"fmt"

	"farmgate/internal/application/claim/dto"
	"farmgate/internal/domain/claim"
	"farmgate/internal/shared/errors"
	"farmgate/internal/shared/logger"
)

const (
	// PerspectiveClaimant scopes the listing to claims the actor submitted.
	PerspectiveClaimant = "claimant"
	// PerspectiveOwner scopes the listing to claims on the actor's listings.
	PerspectiveOwner = "owner"
)

type ListClaimsQuery struct {
	ActorID     uint
	IsAdmin     bool
	Perspective string
	ListingID   *uint
	Status      *string
	Page        int
	PageSize    int
}

type ListClaimsUseCase struct {
	claimRepo claim.Repository
	logger    logger.Interface
}

func NewListClaimsUseCase(claimRepo claim.Repository, logger logger.Interface) *ListClaimsUseCase {
	return &ListClaimsUseCase{claimRepo: claimRepo, logger: logger}
}

func (uc *ListClaimsUseCase) Execute(ctx context.Context, query ListClaimsQuery) ([]*dto.ClaimDTO, int64, error) {
	filter := claim.Filter{
		ListingID: query.ListingID,
		Status:    query.Status,
		Page:      query.Page,
		PageSize:  query.PageSize,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	// Non-admins only ever see claims they are a party to.
	if !query.IsAdmin {
		switch query.Perspective {
		case PerspectiveOwner:
			actorID := query.ActorID
			filter.OwnerID = &actorID
		case PerspectiveClaimant, "":
			actorID := query.ActorID
			filter.ClaimantID = &actorID
		default:
			return nil, 0, errors.NewValidationError(
				fmt.Sprintf("invalid perspective: %s", query.Perspective))
		}
	}

	claims, total, err := uc.claimRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list claims", "error", err, "actor_id", query.ActorID)
		return nil, 0, fmt.Errorf("failed to list claims: %w", err)
	}

	return dto.ToClaimDTOs(claims), total, nil
}
