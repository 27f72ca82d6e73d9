package handlers

import (
	"context"

	orderdto "farmgate/internal/application/order/dto"
	"farmgate/internal/application/order/usecases"
)

// Use case interfaces for OrderHandler - enable unit testing with mocks.

type createOrderUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateOrderCommand) (*orderdto.OrderDTO, error)
}

type getOrderUseCase interface {
	Execute(ctx context.Context, query usecases.GetOrderQuery) (*orderdto.OrderDTO, error)
}

type listOrdersUseCase interface {
	Execute(ctx context.Context, query usecases.ListOrdersQuery) ([]*orderdto.OrderDTO, int64, error)
}

type cancelOrderUseCase interface {
	Execute(ctx context.Context, cmd usecases.CancelOrderCommand) (*orderdto.OrderDTO, error)
}

type issueDeliveryOtpUseCase interface {
	Execute(ctx context.Context, cmd usecases.IssueDeliveryOtpCommand) (*usecases.IssueDeliveryOtpResult, error)
}

type verifyDeliveryOtpUseCase interface {
	Execute(ctx context.Context, cmd usecases.VerifyDeliveryOtpCommand) (*orderdto.OrderDTO, error)
}
