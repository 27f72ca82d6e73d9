package usecases

import (
	"context"
	"fmt"

	"farmgate/internal/application/listing/dto"
	"farmgate/internal/domain/listing"
	"farmgate/internal/shared/errors"
	"farmgate/internal/shared/logger"
)

type CreateListingCommand struct {
	OwnerID          uint
	Title            string
	Description      string
	Location         string
	AreaAcres        float64
	MonthlyRentCents int64
	Photos           []string
}

type CreateListingUseCase struct {
	listingRepo listing.Repository
	logger      logger.Interface
}

func NewCreateListingUseCase(listingRepo listing.Repository, logger logger.Interface) *CreateListingUseCase {
	return &CreateListingUseCase{listingRepo: listingRepo, logger: logger}
}

func (uc *CreateListingUseCase) Execute(ctx context.Context, cmd CreateListingCommand) (*dto.ListingDTO, error) {
	if cmd.OwnerID == 0 {
		return nil, errors.NewValidationError("owner id is required")
	}

	l, err := listing.NewListing(cmd.OwnerID, cmd.Title, cmd.Description, cmd.Location, cmd.AreaAcres, cmd.MonthlyRentCents, cmd.Photos)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.listingRepo.Save(ctx, l); err != nil {
		uc.logger.Errorw("failed to save listing", "error", err, "owner_id", cmd.OwnerID)
		return nil, fmt.Errorf("failed to save listing: %w", err)
	}

	uc.logger.Infow("listing created", "listing_id", l.ID(), "owner_id", cmd.OwnerID)

	return dto.ToListingDTO(l), nil
}
