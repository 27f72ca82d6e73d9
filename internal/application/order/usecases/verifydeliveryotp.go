package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"farmgate/internal/application/order/dto"
	"farmgate/internal/domain/order"
	"farmgate/internal/domain/otp"
	"farmgate/internal/shared/config"
	"farmgate/internal/shared/errors"
	"farmgate/internal/shared/logger"
)

type VerifyDeliveryOtpCommand struct {
	OrderID uint
	ActorID uint
	IsAdmin bool
	Code    string
}

// VerifyDeliveryOtpUseCase checks the passcode the seller collected
// from the buyer and marks the order delivered. A failed attempt leaves the order and its code intact.
type VerifyDeliveryOtpUseCase struct {
	orderRepo order.Repository
	txRunner  TransactionRunner
	limiter   AttemptLimiter
	claimsCfg *config.ClaimsConfig
	logger    logger.Interface
}

func NewVerifyDeliveryOtpUseCase(
	orderRepo order.Repository,
	txRunner TransactionRunner,
	limiter AttemptLimiter,
	claimsCfg *config.ClaimsConfig,
	logger logger.Interface,
) *VerifyDeliveryOtpUseCase {
	return &VerifyDeliveryOtpUseCase{
		orderRepo: orderRepo,
		txRunner:  txRunner,
		limiter:   limiter,
		claimsCfg: claimsCfg,
		logger:    logger,
	}
}

func (uc *VerifyDeliveryOtpUseCase) Execute(ctx context.Context, cmd VerifyDeliveryOtpCommand) (*dto.OrderDTO, error) {
	if cmd.OrderID == 0 {
		return nil, errors.NewValidationError("order id is required")
	}
	if cmd.Code == "" {
		return nil, errors.NewValidationError("code is required")
	}

	if uc.limiter != nil && uc.claimsCfg.VerifyAttemptsPerMinute > 0 {
		allowed, err := uc.limiter.Allow(ctx, fmt.Sprintf("otp:delivery:%d", cmd.OrderID))
		if err != nil {
			uc.logger.Warnw("attempt limiter unavailable", "error", err, "order_id", cmd.OrderID)
		} else if !allowed {
			return nil, errors.NewRateLimitedError("too many verification attempts, please wait")
		}
	}

	var delivered *order.Order
	err := uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		o, err := uc.orderRepo.GetByID(txCtx, cmd.OrderID)
		if err != nil {
			return fmt.Errorf("failed to get order: %w", err)
		}
		if o == nil {
			return errors.NewNotFoundError("order not found")
		}

		// The code is mailed to the buyer; the seller submits it after
		// handing the goods over, which is what makes it a receipt.
		if !cmd.IsAdmin && o.SellerID() != cmd.ActorID {
			return errors.NewForbiddenError("only the seller can confirm the delivery")
		}

		if err := o.ConfirmDelivery(cmd.Code); err != nil {
			return err
		}

		return uc.orderRepo.Update(txCtx, o)
	})
	if err != nil {
		return nil, uc.mapVerifyError(err, cmd.OrderID)
	}

	delivered, err = uc.orderRepo.GetByID(ctx, cmd.OrderID)
	if err != nil || delivered == nil {
		uc.logger.Errorw("failed to reload delivered order", "error", err, "order_id", cmd.OrderID)
		return nil, fmt.Errorf("failed to reload order: %w", err)
	}

	uc.logger.Infow("delivery confirmed",
		"order_id", delivered.ID(),
		"buyer_id", delivered.BuyerID(),
	)

	return dto.ToOrderDTO(delivered), nil
}

func (uc *VerifyDeliveryOtpUseCase) mapVerifyError(err error, orderID uint) error {
	switch {
	case stderrors.Is(err, otp.ErrCodeInvalid):
		return errors.NewInvalidCodeError("incorrect delivery code")
	case stderrors.Is(err, otp.ErrCodeExpired):
		return errors.NewCodeExpiredError("delivery code has expired, ask the seller to issue a new one")
	case stderrors.Is(err, otp.ErrNoActiveCode):
		return errors.NewNotFoundError("no active delivery code for this order")
	case stderrors.Is(err, order.ErrInvalidTransition):
		return errors.NewInvalidStateError("order cannot be delivered in its current state")
	case errors.IsAppError(err):
		return err
	default:
		uc.logger.Errorw("failed to verify delivery code", "error", err, "order_id", orderID)
		return fmt.Errorf("failed to verify delivery code: %w", err)
	}
}
