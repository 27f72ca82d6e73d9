package usecases

import (
	"context"
	"fmt"

	"farmgate/internal/application/listing/dto"
	"farmgate/internal/domain/listing"
	"farmgate/internal/shared/errors"
	"farmgate/internal/shared/logger"
)

type DelistListingCommand struct {
	ListingID uint
	ActorID   uint
	IsAdmin   bool
}

type DelistListingUseCase struct {
	listingRepo listing.Repository
	logger      logger.Interface
}

func NewDelistListingUseCase(listingRepo listing.Repository, logger logger.Interface) *DelistListingUseCase {
	return &DelistListingUseCase{listingRepo: listingRepo, logger: logger}
}

func (uc *DelistListingUseCase) Execute(ctx context.Context, cmd DelistListingCommand) (*dto.ListingDTO, error) {
	if cmd.ListingID == 0 {
		return nil, errors.NewValidationError("listing id is required")
	}

	l, err := uc.listingRepo.GetByID(ctx, cmd.ListingID)
	if err != nil {
		uc.logger.Errorw("failed to get listing", "error", err, "listing_id", cmd.ListingID)
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	if l == nil {
		return nil, errors.NewNotFoundError("listing not found")
	}

	if !cmd.IsAdmin && !l.IsOwnedBy(cmd.ActorID) {
		return nil, errors.NewForbiddenError("only the owner can delist this listing")
	}

	if err := l.Delist(); err != nil {
		return nil, errors.NewInvalidStateError(err.Error())
	}

	if err := uc.listingRepo.Update(ctx, l); err != nil {
		uc.logger.Errorw("failed to update listing", "error", err, "listing_id", cmd.ListingID)
		return nil, fmt.Errorf("failed to update listing: %w", err)
	}

	uc.logger.Infow("listing delisted", "listing_id", cmd.ListingID)

	return dto.ToListingDTO(l), nil
}
