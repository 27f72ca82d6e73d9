package usecases

import (
	"context"
	"fmt"

	"farmgate/internal/application/order/dto"
	"farmgate/internal/domain/order"
	"farmgate/internal/shared/errors"
	"farmgate/internal/shared/logger"
)

const (
	PerspectiveBuyer  = "buyer"
	PerspectiveSeller = "seller"
)

type ListOrdersQuery struct {
	ActorID     uint
	IsAdmin     bool
	Perspective string
	Status      *string
	Page        int
	PageSize    int
}

type ListOrdersUseCase struct {
	orderRepo order.Repository
	logger    logger.Interface
}

func NewListOrdersUseCase(orderRepo order.Repository, logger logger.Interface) *ListOrdersUseCase {
	return &ListOrdersUseCase{orderRepo: orderRepo, logger: logger}
}

func (uc *ListOrdersUseCase) Execute(ctx context.Context, query ListOrdersQuery) ([]*dto.OrderDTO, int64, error) {
	filter := order.Filter{
		Status:   query.Status,
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	if !query.IsAdmin {
		switch query.Perspective {
		case PerspectiveSeller:
			actorID := query.ActorID
			filter.SellerID = &actorID
		case PerspectiveBuyer, "":
			actorID := query.ActorID
			filter.BuyerID = &actorID
		default:
			return nil, 0, errors.NewValidationError(
				fmt.Sprintf("invalid perspective: %s", query.Perspective))
		}
	}

	orders, total, err := uc.orderRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list orders", "error", err, "actor_id", query.ActorID)
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	return dto.ToOrderDTOs(orders), total, nil
}
