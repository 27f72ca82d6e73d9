package usecases

import (
	"context"
	"fmt"

	"farmgate/internal/application/listing/dto"
	"farmgate/internal/domain/listing"
	"farmgate/internal/shared/logger"
)

type ListListingsQuery struct {
	OwnerID  *uint
	Status   *string
	Location *string
	Page     int
	PageSize int
}

type ListListingsUseCase struct {
	listingRepo listing.Repository
	logger      logger.Interface
}

func NewListListingsUseCase(listingRepo listing.Repository, logger logger.Interface) *ListListingsUseCase {
	return &ListListingsUseCase{listingRepo: listingRepo, logger: logger}
}

func (uc *ListListingsUseCase) Execute(ctx context.Context, query ListListingsQuery) ([]*dto.ListingDTO, int64, error) {
	filter := listing.Filter{
		OwnerID:  query.OwnerID,
		Status:   query.Status,
		Location: query.Location,
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	listings, total, err := uc.listingRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list listings", "error", err)
		return nil, 0, fmt.Errorf("failed to list listings: %w", err)
	}

	return dto.ToListingDTOs(listings), total, nil
}
