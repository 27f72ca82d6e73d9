package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"farmgate/internal/application/claim/dto"
	"farmgate/internal/domain/claim"
	"farmgate/internal/domain/listing"
	"farmgate/internal/shared/config"
	"farmgate/internal/shared/errors"
	"farmgate/internal/shared/logger"
)

type SubmitClaimCommand struct {
	ListingID  uint
	ClaimantID uint
	Message    string
	Months     int
}

type SubmitClaimUseCase struct {
	claimRepo   claim.Repository
	listingRepo listing.Repository
	claimsCfg   *config.ClaimsConfig
	logger      logger.Interface
}

func NewSubmitClaimUseCase(
	claimRepo claim.Repository,
	listingRepo listing.Repository,
	claimsCfg *config.ClaimsConfig,
	logger logger.Interface,
) *SubmitClaimUseCase {
	return &SubmitClaimUseCase{
		claimRepo:   claimRepo,
		listingRepo: listingRepo,
		claimsCfg:   claimsCfg,
		logger:      logger,
	}
}

func (uc *SubmitClaimUseCase) Execute(ctx context.Context, cmd SubmitClaimCommand) (*dto.ClaimDTO, error) {
	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid submit claim command", "error", err, "listing_id", cmd.ListingID)
		return nil, err
	}

	lst, err := uc.listingRepo.GetByID(ctx, cmd.ListingID)
	if err != nil {
		uc.logger.Errorw("failed to get listing", "error", err, "listing_id", cmd.ListingID)
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	if lst == nil {
		return nil, errors.NewNotFoundError("listing not found")
	}

	if !lst.Status().IsAvailable() {
		return nil, errors.NewInvalidStateError(
			fmt.Sprintf("listing is not open for claims (status: %s)", lst.Status()))
	}

	if lst.IsOwnedBy(cmd.ClaimantID) {
		return nil, errors.NewSelfClaimError("you cannot claim your own listing")
	}

	if !uc.claimsCfg.AllowDuplicatePending {
		exists, err := uc.claimRepo.HasPendingByClaimant(ctx, cmd.ListingID, cmd.ClaimantID)
		if err != nil {
			uc.logger.Errorw("failed to check pending claims", "error", err, "listing_id", cmd.ListingID)
			return nil, fmt.Errorf("failed to check pending claims: %w", err)
		}
		if exists {
			return nil, errors.NewConflictError("you already have a pending claim for this listing")
		}
	}

	c, err := claim.NewClaim(cmd.ListingID, cmd.ClaimantID, lst.OwnerID(), cmd.Message, cmd.Months)
	if err != nil {
		if stderrors.Is(err, claim.ErrSelfClaim) {
			return nil, errors.NewSelfClaimError("you cannot claim your own listing")
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.claimRepo.Save(ctx, c); err != nil {
		uc.logger.Errorw("failed to save claim", "error", err, "listing_id", cmd.ListingID, "claimant_id", cmd.ClaimantID)
		return nil, fmt.Errorf("failed to save claim: %w", err)
	}

	uc.logger.Infow("claim submitted",
		"claim_id", c.ID(),
		"listing_id", cmd.ListingID,
		"claimant_id", cmd.ClaimantID,
		"months", cmd.Months,
	)

	return dto.ToClaimDTO(c), nil
}

func (uc *SubmitClaimUseCase) validateCommand(cmd SubmitClaimCommand) error {
	if cmd.ListingID == 0 {
		return errors.NewValidationError("listing id is required")
	}
	if cmd.ClaimantID == 0 {
		return errors.NewValidationError("claimant id is required")
	}
	if cmd.Months <= 0 {
		return errors.NewValidationError("proposed duration must be positive")
	}
	return nil
}
