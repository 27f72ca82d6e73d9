package usecases

import (
	"context"
	"fmt"

	"farmgate/internal/application/order/dto"
	"farmgate/internal/domain/order"
	"farmgate/internal/shared/errors"
	"farmgate/internal/shared/logger"
)

type CreateOrderCommand struct {
	BuyerID     uint
	SellerID    uint
	Description string
	TotalCents  int64
}

type CreateOrderUseCase struct {
	orderRepo order.Repository
	logger    logger.Interface
}

func NewCreateOrderUseCase(orderRepo order.Repository, logger logger.Interface) *CreateOrderUseCase {
	return &CreateOrderUseCase{orderRepo: orderRepo, logger: logger}
}

func (uc *CreateOrderUseCase) Execute(ctx context.Context, cmd CreateOrderCommand) (*dto.OrderDTO, error) {
	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create order command", "error", err, "buyer_id", cmd.BuyerID)
		return nil, err
	}

	o, err := order.NewOrder(cmd.BuyerID, cmd.SellerID, cmd.Description, cmd.TotalCents)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.orderRepo.Save(ctx, o); err != nil {
		uc.logger.Errorw("failed to save order", "error", err, "buyer_id", cmd.BuyerID)
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	uc.logger.Infow("order created",
		"order_id", o.ID(),
		"buyer_id", cmd.BuyerID,
		"seller_id", cmd.SellerID,
		"total_cents", cmd.TotalCents,
	)

	return dto.ToOrderDTO(o), nil
}

func (uc *CreateOrderUseCase) validateCommand(cmd CreateOrderCommand) error {
	if cmd.BuyerID == 0 {
		return errors.NewValidationError("buyer id is required")
	}
	if cmd.SellerID == 0 {
		return errors.NewValidationError("seller id is required")
	}
	if cmd.BuyerID == cmd.SellerID {
		return errors.NewValidationError("buyer and seller cannot be the same user")
	}
	if cmd.Description == "" {
		return errors.NewValidationError("description is required")
	}
	if cmd.TotalCents <= 0 {
		return errors.NewValidationError("order total must be positive")
	}
	return nil
}
