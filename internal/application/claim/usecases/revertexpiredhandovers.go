package usecases

import (
	"context"
	"fmt"
	"time"

	"farmgate/internal/domain/claim"
	"farmgate/internal/shared/biztime"
	"farmgate/internal/shared/logger"
)

// RevertExpiredHandoversUseCase sweeps claims stuck in handover whose
// passcode expired and moves them back to approved so the owner can
// issue a fresh code. Run periodically by the scheduler.
type RevertExpiredHandoversUseCase struct {
	claimRepo claim.Repository
	txRunner  TransactionRunner
	logger    logger.Interface
}

func NewRevertExpiredHandoversUseCase(
	claimRepo claim.Repository,
	txRunner TransactionRunner,
	logger logger.Interface,
) *RevertExpiredHandoversUseCase {
	return &RevertExpiredHandoversUseCase{
		claimRepo: claimRepo,
		txRunner:  txRunner,
		logger:    logger,
	}
}

// Execute reverts all expired handovers and returns how many changed.
// One bad row does not abort the sweep.
func (uc *RevertExpiredHandoversUseCase) Execute(ctx context.Context) (int, error) {
	now := biztime.NowUTC()

	expired, err := uc.claimRepo.ListExpiredHandovers(ctx, now)
	if err != nil {
		uc.logger.Errorw("failed to list expired handovers", "error", err)
		return 0, fmt.Errorf("failed to list expired handovers: %w", err)
	}

	reverted := 0
	for _, c := range expired {
		changed, err := uc.revertOne(ctx, c.ID(), now)
		if err != nil {
			uc.logger.Warnw("failed to revert expired handover", "error", err, "claim_id", c.ID())
			continue
		}
		if changed {
			reverted++
		}
	}

	if reverted > 0 {
		uc.logger.Infow("reverted expired handovers", "count", reverted)
	}
	return reverted, nil
}

func (uc *RevertExpiredHandoversUseCase) revertOne(ctx context.Context, claimID uint, now time.Time) (bool, error) {
	changed := false
	err := uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		c, err := uc.claimRepo.GetByIDForUpdate(txCtx, claimID)
		if err != nil {
			return fmt.Errorf("failed to lock claim: %w", err)
		}
		if c == nil {
			return nil
		}

		// The claimant may have completed the handover between the list
		// and the lock; RevertExpiredHandover re-checks under the lock.
		if !c.RevertExpiredHandover(now) {
			return nil
		}
		changed = true

		return uc.claimRepo.Update(txCtx, c)
	})
	return changed && err == nil, err
}
