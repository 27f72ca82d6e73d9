package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"farmgate/internal/application/claim/dto"
	"farmgate/internal/domain/claim"
	"farmgate/internal/domain/listing"
	"farmgate/internal/domain/otp"
	"farmgate/internal/shared/config"
	"farmgate/internal/shared/errors"
	"farmgate/internal/shared/logger"
)

type VerifyHandoverOtpCommand struct {
	ClaimID uint
	ActorID uint
	IsAdmin bool
	Code    string
}

// VerifyHandoverOtpUseCase checks the passcode the owner collected from
// the claimant and, on success, completes the claim and marks the
// listing rented in the same transaction. A failed attempt leaves the claim untouched so the
// outstanding code stays usable until it expires.
type VerifyHandoverOtpUseCase struct {
	claimRepo   claim.Repository
	listingRepo listing.Repository
	txRunner    TransactionRunner
	limiter     AttemptLimiter
	claimsCfg   *config.ClaimsConfig
	logger      logger.Interface
}

func NewVerifyHandoverOtpUseCase(
	claimRepo claim.Repository,
	listingRepo listing.Repository,
	txRunner TransactionRunner,
	limiter AttemptLimiter,
	claimsCfg *config.ClaimsConfig,
	logger logger.Interface,
) *VerifyHandoverOtpUseCase {
	return &VerifyHandoverOtpUseCase{
		claimRepo:   claimRepo,
		listingRepo: listingRepo,
		txRunner:    txRunner,
		limiter:     limiter,
		claimsCfg:   claimsCfg,
		logger:      logger,
	}
}

func (uc *VerifyHandoverOtpUseCase) Execute(ctx context.Context, cmd VerifyHandoverOtpCommand) (*dto.ClaimDTO, error) {
	if cmd.ClaimID == 0 {
		return nil, errors.NewValidationError("claim id is required")
	}
	if cmd.Code == "" {
		return nil, errors.NewValidationError("code is required")
	}

	if err := uc.checkAttemptLimit(ctx, cmd.ClaimID); err != nil {
		return nil, err
	}

	var completed *claim.Claim
	err := uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		c, err := uc.claimRepo.GetByIDForUpdate(txCtx, cmd.ClaimID)
		if err != nil {
			return fmt.Errorf("failed to lock claim: %w", err)
		}
		if c == nil {
			return errors.NewNotFoundError("claim not found")
		}

		// The code is mailed to the claimant, who reads it out to the
		// owner at the handover. Only the owner submitting it proves
		// the two actually met.
		if !c.CanBeDecidedBy(cmd.ActorID, cmd.IsAdmin) {
			return errors.NewForbiddenError("only the listing owner can confirm the handover")
		}

		if err := c.CompleteHandover(cmd.Code); err != nil {
			return err
		}

		if err := uc.claimRepo.Update(txCtx, c); err != nil {
			return err
		}

		lst, err := uc.listingRepo.GetByID(txCtx, c.ListingID())
		if err != nil {
			return fmt.Errorf("failed to get listing: %w", err)
		}
		if lst == nil {
			return fmt.Errorf("listing %d not found for completed claim %d", c.ListingID(), c.ID())
		}

		if err := lst.MarkRented(); err != nil {
			return fmt.Errorf("failed to mark listing rented: %w", err)
		}
		if err := uc.listingRepo.Update(txCtx, lst); err != nil {
			return fmt.Errorf("failed to update listing: %w", err)
		}

		completed = c
		return nil
	})
	if err != nil {
		return nil, uc.mapVerifyError(err, cmd.ClaimID)
	}

	uc.logger.Infow("handover completed",
		"claim_id", completed.ID(),
		"listing_id", completed.ListingID(),
		"claimant_id", completed.ClaimantID(),
	)

	return dto.ToClaimDTO(completed), nil
}

func (uc *VerifyHandoverOtpUseCase) checkAttemptLimit(ctx context.Context, claimID uint) error {
	if uc.limiter == nil || uc.claimsCfg.VerifyAttemptsPerMinute <= 0 {
		return nil
	}

	allowed, err := uc.limiter.Allow(ctx, fmt.Sprintf("otp:handover:%d", claimID))
	if err != nil {
		// The limiter failing open is preferable to blocking handovers.
		uc.logger.Warnw("attempt limiter unavailable", "error", err, "claim_id", claimID)
		return nil
	}
	if !allowed {
		return errors.NewRateLimitedError("too many verification attempts, please wait")
	}
	return nil
}

func (uc *VerifyHandoverOtpUseCase) mapVerifyError(err error, claimID uint) error {
	switch {
	case stderrors.Is(err, otp.ErrCodeInvalid):
		return errors.NewInvalidCodeError("incorrect handover code")
	case stderrors.Is(err, otp.ErrCodeExpired):
		return errors.NewCodeExpiredError("handover code has expired, ask the owner to issue a new one")
	case stderrors.Is(err, otp.ErrNoActiveCode):
		return errors.NewNotFoundError("no active handover code for this claim")
	case stderrors.Is(err, claim.ErrInvalidTransition):
		return errors.NewInvalidStateError("claim is not in handover")
	case stderrors.Is(err, claim.ErrStaleClaim):
		return errors.NewConflictError("claim was modified concurrently, please retry")
	case errors.IsAppError(err):
		return err
	default:
		uc.logger.Errorw("failed to verify handover code", "error", err, "claim_id", claimID)
		return fmt.Errorf("failed to verify handover code: %w", err)
	}
}
