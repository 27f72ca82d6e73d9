package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"farmgate/internal/application/order/usecases"
	"farmgate/internal/interfaces/http/middleware"
	"farmgate/internal/shared/logger"
	"farmgate/internal/shared/utils"
)

type OrderHandler struct {
	createOrderUC       createOrderUseCase
	getOrderUC          getOrderUseCase
	listOrdersUC        listOrdersUseCase
	cancelOrderUC       cancelOrderUseCase
	issueDeliveryOtpUC  issueDeliveryOtpUseCase
	verifyDeliveryOtpUC verifyDeliveryOtpUseCase
	logger              logger.Interface
}

func NewOrderHandler(
	createOrderUC createOrderUseCase,
	getOrderUC getOrderUseCase,
	listOrdersUC listOrdersUseCase,
	cancelOrderUC cancelOrderUseCase,
	issueDeliveryOtpUC issueDeliveryOtpUseCase,
	verifyDeliveryOtpUC verifyDeliveryOtpUseCase,
) *OrderHandler {
	return &OrderHandler{
		createOrderUC:       createOrderUC,
		getOrderUC:          getOrderUC,
		listOrdersUC:        listOrdersUC,
		cancelOrderUC:       cancelOrderUC,
		issueDeliveryOtpUC:  issueDeliveryOtpUC,
		verifyDeliveryOtpUC: verifyDeliveryOtpUC,
		logger:              logger.NewLogger(),
	}
}

type CreateOrderRequest struct {
	SellerID    uint   `json:"seller_id" binding:"required"`
	Description string `json:"description" binding:"required,max=2000"`
	TotalCents  int64  `json:"total_cents" binding:"required,min=1"`
}

type VerifyDeliveryCodeRequest struct {
	Code string `json:"code" binding:"required,len=6,numeric"`
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create order", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateOrderCommand{
		BuyerID:     middleware.ActorID(c),
		SellerID:    req.SellerID,
		Description: req.Description,
		TotalCents:  req.TotalCents,
	}

	result, err := h.createOrderUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "order placed")
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, err := utils.ParseIDParam(c, "id", "order")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetOrderQuery{
		OrderID: orderID,
		ActorID: middleware.ActorID(c),
		IsAdmin: middleware.IsAdmin(c),
	}

	result, err := h.getOrderUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "order retrieved", result)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	query := usecases.ListOrdersQuery{
		ActorID:     middleware.ActorID(c),
		IsAdmin:     middleware.IsAdmin(c),
		Perspective: c.Query("perspective"),
		Page:        page,
		PageSize:    pageSize,
	}
	if status := c.Query("status"); status != "" {
		query.Status = &status
	}

	orders, total, err := h.listOrdersUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, orders, total, page, pageSize, "orders retrieved")
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	orderID, err := utils.ParseIDParam(c, "id", "order")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CancelOrderCommand{
		OrderID: orderID,
		ActorID: middleware.ActorID(c),
		IsAdmin: middleware.IsAdmin(c),
	}

	result, err := h.cancelOrderUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "order cancelled", result)
}

func (h *OrderHandler) IssueDeliveryCode(c *gin.Context) {
	orderID, err := utils.ParseIDParam(c, "id", "order")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.IssueDeliveryOtpCommand{
		OrderID: orderID,
		ActorID: middleware.ActorID(c),
		IsAdmin: middleware.IsAdmin(c),
	}

	result, err := h.issueDeliveryOtpUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "delivery code sent to the buyer", result)
}

func (h *OrderHandler) VerifyDeliveryCode(c *gin.Context) {
	orderID, err := utils.ParseIDParam(c, "id", "order")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req VerifyDeliveryCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for verify delivery code", "error", err, "order_id", orderID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.VerifyDeliveryOtpCommand{
		OrderID: orderID,
		ActorID: middleware.ActorID(c),
		IsAdmin: middleware.IsAdmin(c),
		Code:    req.Code,
	}

	result, err := h.verifyDeliveryOtpUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "delivery confirmed", result)
}
