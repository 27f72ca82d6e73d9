package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"farmgate/internal/application/order/dto"
	"farmgate/internal/domain/order"
	"farmgate/internal/shared/errors"
	"farmgate/internal/shared/logger"
)

type CancelOrderCommand struct {
	OrderID uint
	ActorID uint
	IsAdmin bool
}

type CancelOrderUseCase struct {
	orderRepo order.Repository
	logger    logger.Interface
}

func NewCancelOrderUseCase(orderRepo order.Repository, logger logger.Interface) *CancelOrderUseCase {
	return &CancelOrderUseCase{orderRepo: orderRepo, logger: logger}
}

func (uc *CancelOrderUseCase) Execute(ctx context.Context, cmd CancelOrderCommand) (*dto.OrderDTO, error) {
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

	// Either party may cancel a placed order.
	if !cmd.IsAdmin && o.BuyerID() != cmd.ActorID && o.SellerID() != cmd.ActorID {
		return nil, errors.NewForbiddenError("you are not a party to this order")
	}

	if err := o.Cancel(); err != nil {
		if stderrors.Is(err, order.ErrInvalidTransition) {
			return nil, errors.NewInvalidStateError(
				fmt.Sprintf("cannot cancel an order with status %s", o.Status()))
		}
		return nil, fmt.Errorf("failed to cancel order: %w", err)
	}

	if err := uc.orderRepo.Update(ctx, o); err != nil {
		uc.logger.Errorw("failed to update order", "error", err, "order_id", cmd.OrderID)
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	uc.logger.Infow("order cancelled", "order_id", cmd.OrderID, "actor_id", cmd.ActorID)

	return dto.ToOrderDTO(o), nil
}
