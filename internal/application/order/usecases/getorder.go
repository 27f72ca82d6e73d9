package usecases

import (
	"context"
	"fmt"

	"farmgate/internal/application/order/dto"
	"farmgate/internal/domain/order"
	"farmgate/internal/shared/errors"
	"farmgate/internal/shared/logger"
)

type GetOrderQuery struct {
	OrderID uint
	ActorID uint
	IsAdmin bool
}

type GetOrderUseCase struct {
	orderRepo order.Repository
	logger    logger.Interface
}

func NewGetOrderUseCase(orderRepo order.Repository, logger logger.Interface) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: orderRepo, logger: logger}
}

func (uc *GetOrderUseCase) Execute(ctx context.Context, query GetOrderQuery) (*dto.OrderDTO, error) {
	if query.OrderID == 0 {
		return nil, errors.NewValidationError("order id is required")
	}

	o, err := uc.orderRepo.GetByID(ctx, query.OrderID)
	if err != nil {
		uc.logger.Errorw("failed to get order", "error", err, "order_id", query.OrderID)
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if o == nil {
		return nil, errors.NewNotFoundError("order not found")
	}

	if !query.IsAdmin && o.BuyerID() != query.ActorID && o.SellerID() != query.ActorID {
		return nil, errors.NewForbiddenError("you are not a party to this order")
	}

	return dto.ToOrderDTO(o), nil
}
