package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"farmgate/internal/domain/claim"
	"farmgate/internal/domain/otp"
	"farmgate/internal/domain/user"
	"farmgate/internal/shared/errors"
	"farmgate/internal/shared/logger"
)

type IssueHandoverOtpCommand struct {
	ClaimID uint
	ActorID uint
	IsAdmin bool
}

type IssueHandoverOtpResult struct {
	ClaimID   uint      `json:"claim_id"`
	Status    string    `json:"status"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IssueHandoverOtpUseCase issues a handover passcode for an approved
// claim and mails it to the claimant. The plaintext code exists only in
// the mail; the API response carries just the expiry.
type IssueHandoverOtpUseCase struct {
	claimRepo claim.Repository
	userRepo  user.Repository
	notifier  ClaimNotifier
	logger    logger.Interface
}

func NewIssueHandoverOtpUseCase(
	claimRepo claim.Repository,
	userRepo user.Repository,
	notifier ClaimNotifier,
	logger logger.Interface,
) *IssueHandoverOtpUseCase {
	return &IssueHandoverOtpUseCase{
		claimRepo: claimRepo,
		userRepo:  userRepo,
		notifier:  notifier,
		logger:    logger,
	}
}

func (uc *IssueHandoverOtpUseCase) Execute(ctx context.Context, cmd IssueHandoverOtpCommand) (*IssueHandoverOtpResult, error) {
	if cmd.ClaimID == 0 {
		return nil, errors.NewValidationError("claim id is required")
	}

	c, err := uc.claimRepo.GetByID(ctx, cmd.ClaimID)
	if err != nil {
		uc.logger.Errorw("failed to get claim", "error", err, "claim_id", cmd.ClaimID)
		return nil, fmt.Errorf("failed to get claim: %w", err)
	}
	if c == nil {
		return nil, errors.NewNotFoundError("claim not found")
	}

	if !c.CanBeDecidedBy(cmd.ActorID, cmd.IsAdmin) {
		return nil, errors.NewForbiddenError("only the listing owner can issue a handover code")
	}

	challenge, code, err := otp.NewChallenge(otp.PurposeLandHandover)
	if err != nil {
		uc.logger.Errorw("failed to generate handover code", "error", err, "claim_id", cmd.ClaimID)
		return nil, fmt.Errorf("failed to generate handover code: %w", err)
	}

	if err := c.BeginHandover(challenge); err != nil {
		if stderrors.Is(err, claim.ErrInvalidTransition) {
			return nil, errors.NewInvalidStateError(
				fmt.Sprintf("cannot issue a handover code for a claim with status %s", c.Status()))
		}
		return nil, fmt.Errorf("failed to begin handover: %w", err)
	}

	if err := uc.claimRepo.Update(ctx, c); err != nil {
		if stderrors.Is(err, claim.ErrStaleClaim) {
			return nil, errors.NewConflictError("claim was modified concurrently, please retry")
		}
		uc.logger.Errorw("failed to update claim", "error", err, "claim_id", cmd.ClaimID)
		return nil, fmt.Errorf("failed to update claim: %w", err)
	}

	// The challenge is persisted at this point. A failed mail send leaves
	// the claim in handover with a valid code, so the owner can re-issue.
	uc.dispatchCode(ctx, c, code, challenge.ExpiresAt())

	uc.logger.Infow("handover code issued",
		"claim_id", cmd.ClaimID,
		"listing_id", c.ListingID(),
		"expires_at", challenge.ExpiresAt(),
	)

	return &IssueHandoverOtpResult{
		ClaimID:   c.ID(),
		Status:    c.Status().String(),
		ExpiresAt: challenge.ExpiresAt(),
	}, nil
}

func (uc *IssueHandoverOtpUseCase) dispatchCode(ctx context.Context, c *claim.Claim, code string, expiresAt time.Time) {
	claimant, err := uc.userRepo.GetByID(ctx, c.ClaimantID())
	if err != nil || claimant == nil {
		uc.logger.Warnw("failed to resolve claimant for handover code", "error", err, "claimant_id", c.ClaimantID())
		return
	}

	if err := uc.notifier.SendHandoverCode(ctx, claimant.Email().String(), claimant.Name(), code, expiresAt); err != nil {
		uc.logger.Warnw("failed to send handover code", "error", err, "claim_id", c.ID())
	}
}
