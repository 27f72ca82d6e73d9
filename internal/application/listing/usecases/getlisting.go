package usecases

import (
	"context"
	"fmt"

	"farmgate/internal/application/listing/dto"
	"farmgate/internal/domain/listing"
	"farmgate/internal/shared/errors"
	"farmgate/internal/shared/logger"
	"farmgate/internal/shared/services/markdown"
)

type GetListingUseCase struct {
	listingRepo listing.Repository
	markdownSvc markdown.Service
	logger      logger.Interface
}

func NewGetListingUseCase(
	listingRepo listing.Repository,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *GetListingUseCase {
	return &GetListingUseCase{
		listingRepo: listingRepo,
		markdownSvc: markdownSvc,
		logger:      logger,
	}
}

func (uc *GetListingUseCase) Execute(ctx context.Context, listingID uint) (*dto.ListingDTO, error) {
	if listingID == 0 {
		return nil, errors.NewValidationError("listing id is required")
	}

	l, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		uc.logger.Errorw("failed to get listing", "error", err, "listing_id", listingID)
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	if l == nil {
		return nil, errors.NewNotFoundError("listing not found")
	}

	result := dto.ToListingDTO(l)

	// Owner-authored markdown is rendered and sanitized server-side so
	// clients never handle raw HTML from other users.
	html, err := uc.markdownSvc.ToHTMLSanitized(l.Description())
	if err != nil {
		uc.logger.Warnw("failed to render listing description", "error", err, "listing_id", listingID)
	} else {
		result.DescriptionHTML = html
	}

	return result, nil
}
