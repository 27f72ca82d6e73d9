package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"farmgate/internal/domain/order"
	"farmgate/internal/domain/otp"
	"farmgate/internal/domain/user"
	"farmgate/internal/shared/errors"
	"farmgate/internal/shared/logger"
)

type IssueDeliveryOtpCommand struct {
	OrderID uint
	ActorID uint
	IsAdmin bool
}

type IssueDeliveryOtpResult struct {
	OrderID   uint      `json:"order_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IssueDeliveryOtpUseCase issues a delivery passcode and mails it to the
// buyer. The challenge is persisted before the send, but here a failed
// send is reported as an error: without the mail the buyer has no code,
// and the seller needs to know the dispatch never happened. The persisted
// challenge stays valid, so a retry simply re-issues.
type IssueDeliveryOtpUseCase struct {
	orderRepo order.Repository
	userRepo  user.Repository
	notifier  DeliveryNotifier
	logger    logger.Interface
}

func NewIssueDeliveryOtpUseCase(
	orderRepo order.Repository,
	userRepo user.Repository,
	notifier DeliveryNotifier,
	logger logger.Interface,
) *IssueDeliveryOtpUseCase {
	return &IssueDeliveryOtpUseCase{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		notifier:  notifier,
		logger:    logger,
	}
}

func (uc *IssueDeliveryOtpUseCase) Execute(ctx context.Context, cmd IssueDeliveryOtpCommand) (*IssueDeliveryOtpResult, error) {
	if cmd.OrderID == 0 {
		return nil, errors.NewValidationError("order id is required")
	}

	o, err := uc.orderRepo.GetByID(ctx, cmd.OrderID)
	if err != nil {
		uc.logger.Errorw("failed to get order", "error", err, "order_id", cmd.OrderID)
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if o == nil {
		return nil, errors.NewNotFoundError("order not found")
	}

	if !cmd.IsAdmin && o.SellerID() != cmd.ActorID {
		return nil, errors.NewForbiddenError("only the seller can issue a delivery code")
	}

	challenge, code, err := otp.NewChallenge(otp.PurposeDeliveryConfirmation)
	if err != nil {
		uc.logger.Errorw("failed to generate delivery code", "error", err, "order_id", cmd.OrderID)
		return nil, fmt.Errorf("failed to generate delivery code: %w", err)
	}

	if err := o.BeginDeliveryConfirmation(challenge); err != nil {
		if stderrors.Is(err, order.ErrInvalidTransition) {
			return nil, errors.NewInvalidStateError(
				fmt.Sprintf("cannot issue a delivery code for an order with status %s", o.Status()))
		}
		return nil, fmt.Errorf("failed to begin delivery confirmation: %w", err)
	}

	if err := uc.orderRepo.Update(ctx, o); err != nil {
		uc.logger.Errorw("failed to update order", "error", err, "order_id", cmd.OrderID)
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	buyer, err := uc.userRepo.GetByID(ctx, o.BuyerID())
	if err != nil {
		uc.logger.Errorw("failed to resolve buyer", "error", err, "buyer_id", o.BuyerID())
		return nil, fmt.Errorf("failed to resolve buyer: %w", err)
	}
	if buyer == nil {
		return nil, errors.NewNotFoundError("buyer account not found")
	}

	if err := uc.notifier.SendDeliveryCode(ctx, buyer.Email().String(), buyer.Name(), code, challenge.ExpiresAt()); err != nil {
		uc.logger.Errorw("failed to send delivery code", "error", err, "order_id", cmd.OrderID)
		return nil, errors.NewInternalError("delivery code could not be sent, please retry")
	}

	uc.logger.Infow("delivery code issued",
		"order_id", cmd.OrderID,
		"buyer_id", o.BuyerID(),
		"expires_at", challenge.ExpiresAt(),
	)

	return &IssueDeliveryOtpResult{
		OrderID:   o.ID(),
		ExpiresAt: challenge.ExpiresAt(),
	}, nil
}
