package http

import (
	"farmgate/internal/interfaces/http/handlers"
)

// allHandlers holds every HTTP handler instance.
type allHandlers struct {
	authHandler    *handlers.AuthHandler
	listingHandler *handlers.ListingHandler
	claimHandler   *handlers.ClaimHandler
	orderHandler   *handlers.OrderHandler
}

func (c *Container) initHandlers() {
	c.hdlrs = &allHandlers{
		authHandler: handlers.NewAuthHandler(
			c.ucs.registerUC,
			c.ucs.loginUC,
			c.ucs.verifyEmailUC,
			c.ucs.requestResetUC,
			c.ucs.resetPasswordUC,
			c.ucs.getUserUC,
		),
		listingHandler: handlers.NewListingHandler(
			c.ucs.createListingUC,
			c.ucs.getListingUC,
			c.ucs.listListingsUC,
			c.ucs.updateListingUC,
			c.ucs.delistListingUC,
		),
		claimHandler: handlers.NewClaimHandler(
			c.ucs.submitClaimUC,
			c.ucs.decideClaimUC,
			c.ucs.issueHandoverOtpUC,
			c.ucs.verifyHandoverOtpUC,
			c.ucs.getClaimUC,
			c.ucs.listClaimsUC,
		),
		orderHandler: handlers.NewOrderHandler(
			c.ucs.createOrderUC,
			c.ucs.getOrderUC,
			c.ucs.listOrdersUC,
			c.ucs.cancelOrderUC,
			c.ucs.issueDeliveryOtpUC,
			c.ucs.verifyDeliveryOtpUC,
		),
	}
}
