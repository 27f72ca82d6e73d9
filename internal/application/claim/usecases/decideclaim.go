package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"farmgate/internal/application/claim/dto"
	"farmgate/internal/domain/claim"
	"farmgate/internal/domain/listing"
	"farmgate/internal/domain/user"
	"farmgate/internal/shared/errors"
	"farmgate/internal/shared/logger"
)

type DecideClaimCommand struct {
	ClaimID uint
	ActorID uint
	IsAdmin bool
	Approve bool
}

// DecideClaimUseCase arbitrates a pending claim. Approval promotes the
// claim and cascade-rejects every pending sibling on the listing in one
// transaction, so concurrent approvals on the same listing produce
// exactly one winner.
type DecideClaimUseCase struct {
	claimRepo   claim.Repository
	listingRepo listing.Repository
	userRepo    user.Repository
	txRunner    TransactionRunner
	notifier    ClaimNotifier
	logger      logger.Interface
}

func NewDecideClaimUseCase(
	claimRepo claim.Repository,
	listingRepo listing.Repository,
	userRepo user.Repository,
	txRunner TransactionRunner,
	notifier ClaimNotifier,
	logger logger.Interface,
) *DecideClaimUseCase {
	return &DecideClaimUseCase{
		claimRepo:   claimRepo,
		listingRepo: listingRepo,
		userRepo:    userRepo,
		txRunner:    txRunner,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *DecideClaimUseCase) Execute(ctx context.Context, cmd DecideClaimCommand) (*dto.ClaimDTO, error) {
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
		return nil, errors.NewForbiddenError("only the listing owner can decide this claim")
	}

	if cmd.Approve {
		err = uc.approve(ctx, c)
	} else {
		err = uc.reject(ctx, cmd.ClaimID)
	}
	if err != nil {
		return nil, err
	}

	decided, err := uc.claimRepo.GetByID(ctx, cmd.ClaimID)
	if err != nil || decided == nil {
		uc.logger.Errorw("failed to reload decided claim", "error", err, "claim_id", cmd.ClaimID)
		return nil, fmt.Errorf("failed to reload claim: %w", err)
	}

	// Decision notices are best-effort: the decision is already committed
	// and must not be rolled back by mail trouble.
	uc.notifyClaimant(ctx, decided, cmd.Approve)

	uc.logger.Infow("claim decided",
		"claim_id", cmd.ClaimID,
		"listing_id", decided.ListingID(),
		"approved", cmd.Approve,
		"actor_id", cmd.ActorID,
	)

	return dto.ToClaimDTO(decided), nil
}

func (uc *DecideClaimUseCase) approve(ctx context.Context, c *claim.Claim) error {
	claimID := c.ID()
	listingID := c.ListingID()

	err := uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		rejected, err := uc.claimRepo.ApproveExclusively(txCtx, claimID, listingID)
		if err != nil {
			return err
		}
		if rejected > 0 {
			uc.logger.Infow("rejected competing claims",
				"claim_id", claimID,
				"listing_id", listingID,
				"rejected_count", rejected,
			)
		}
		return nil
	})
	if err != nil {
		if stderrors.Is(err, claim.ErrNotPending) {
			return errors.NewInvalidStateError("claim has already been decided")
		}
		uc.logger.Errorw("failed to approve claim", "error", err, "claim_id", claimID)
		return fmt.Errorf("failed to approve claim: %w", err)
	}
	return nil
}

func (uc *DecideClaimUseCase) reject(ctx context.Context, claimID uint) error {
	err := uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		c, err := uc.claimRepo.GetByIDForUpdate(txCtx, claimID)
		if err != nil {
			return fmt.Errorf("failed to lock claim: %w", err)
		}
		if c == nil {
			return errors.NewNotFoundError("claim not found")
		}

		if err := c.Reject(); err != nil {
			return err
		}

		return uc.claimRepo.Update(txCtx, c)
	})
	if err != nil {
		if stderrors.Is(err, claim.ErrInvalidTransition) {
			return errors.NewInvalidStateError("claim has already been decided")
		}
		if stderrors.Is(err, claim.ErrStaleClaim) {
			return errors.NewConflictError("claim was modified concurrently, please retry")
		}
		if errors.IsAppError(err) {
			return err
		}
		uc.logger.Errorw("failed to reject claim", "error", err, "claim_id", claimID)
		return fmt.Errorf("failed to reject claim: %w", err)
	}
	return nil
}

func (uc *DecideClaimUseCase) notifyClaimant(ctx context.Context, c *claim.Claim, approved bool) {
	claimant, err := uc.userRepo.GetByID(ctx, c.ClaimantID())
	if err != nil || claimant == nil {
		uc.logger.Warnw("failed to resolve claimant for decision notice", "error", err, "claimant_id", c.ClaimantID())
		return
	}

	title := ""
	if lst, err := uc.listingRepo.GetByID(ctx, c.ListingID()); err == nil && lst != nil {
		title = lst.Title()
	}

	if err := uc.notifier.SendClaimDecision(ctx, claimant.Email().String(), claimant.Name(), title, approved); err != nil {
		uc.logger.Warnw("failed to send decision notice", "error", err, "claim_id", c.ID())
	}
}
