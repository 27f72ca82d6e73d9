package http

import (
	claimuc "farmgate/internal/application/claim/usecases"
	listinguc "farmgate/internal/application/listing/usecases"
	orderuc "farmgate/internal/application/order/usecases"
	useruc "farmgate/internal/application/user/usecases"
	"farmgate/internal/shared/services/markdown"
)

// allUseCases holds every use case instance wired into handlers and
// background services.
type allUseCases struct {
	// user
	registerUC      *useruc.RegisterUseCase
	loginUC         *useruc.LoginUseCase
	verifyEmailUC   *useruc.VerifyEmailUseCase
	requestResetUC  *useruc.RequestPasswordResetUseCase
	resetPasswordUC *useruc.ResetPasswordUseCase
	getUserUC       *useruc.GetUserUseCase

	// listing
	createListingUC *listinguc.CreateListingUseCase
	getListingUC    *listinguc.GetListingUseCase
	listListingsUC  *listinguc.ListListingsUseCase
	updateListingUC *listinguc.UpdateListingUseCase
	delistListingUC *listinguc.DelistListingUseCase

	// claim
	submitClaimUC       *claimuc.SubmitClaimUseCase
	decideClaimUC       *claimuc.DecideClaimUseCase
	issueHandoverOtpUC  *claimuc.IssueHandoverOtpUseCase
	verifyHandoverOtpUC *claimuc.VerifyHandoverOtpUseCase
	getClaimUC          *claimuc.GetClaimUseCase
	listClaimsUC        *claimuc.ListClaimsUseCase
	revertHandoversUC   *claimuc.RevertExpiredHandoversUseCase

	// order
	createOrderUC       *orderuc.CreateOrderUseCase
	getOrderUC          *orderuc.GetOrderUseCase
	listOrdersUC        *orderuc.ListOrdersUseCase
	cancelOrderUC       *orderuc.CancelOrderUseCase
	issueDeliveryOtpUC  *orderuc.IssueDeliveryOtpUseCase
	verifyDeliveryOtpUC *orderuc.VerifyDeliveryOtpUseCase
}

func (c *Container) initUseCases() {
	claimsCfg := &c.cfg.Claims
	markdownSvc := markdown.NewService()

	c.ucs = &allUseCases{
		registerUC:      useruc.NewRegisterUseCase(c.repos.userRepo, c.passwordHasher, c.emailService, c.log),
		loginUC:         useruc.NewLoginUseCase(c.repos.userRepo, c.passwordHasher, c.jwtService, c.log),
		verifyEmailUC:   useruc.NewVerifyEmailUseCase(c.repos.userRepo, c.log),
		requestResetUC:  useruc.NewRequestPasswordResetUseCase(c.repos.userRepo, c.emailService, c.log),
		resetPasswordUC: useruc.NewResetPasswordUseCase(c.repos.userRepo, c.passwordHasher, c.log),
		getUserUC:       useruc.NewGetUserUseCase(c.repos.userRepo, c.log),

		createListingUC: listinguc.NewCreateListingUseCase(c.repos.listingRepo, c.log),
		getListingUC:    listinguc.NewGetListingUseCase(c.repos.listingRepo, markdownSvc, c.log),
		listListingsUC:  listinguc.NewListListingsUseCase(c.repos.listingRepo, c.log),
		updateListingUC: listinguc.NewUpdateListingUseCase(c.repos.listingRepo, c.log),
		delistListingUC: listinguc.NewDelistListingUseCase(c.repos.listingRepo, c.log),

		submitClaimUC: claimuc.NewSubmitClaimUseCase(c.repos.claimRepo, c.repos.listingRepo, claimsCfg, c.log),
		decideClaimUC: claimuc.NewDecideClaimUseCase(
			c.repos.claimRepo, c.repos.listingRepo, c.repos.userRepo, c.txManager, c.emailService, c.log,
		),
		issueHandoverOtpUC: claimuc.NewIssueHandoverOtpUseCase(
			c.repos.claimRepo, c.repos.userRepo, c.emailService, c.log,
		),
		verifyHandoverOtpUC: claimuc.NewVerifyHandoverOtpUseCase(
			c.repos.claimRepo, c.repos.listingRepo, c.txManager, c.attemptLimiter, claimsCfg, c.log,
		),
		getClaimUC:        claimuc.NewGetClaimUseCase(c.repos.claimRepo, c.log),
		listClaimsUC:      claimuc.NewListClaimsUseCase(c.repos.claimRepo, c.log),
		revertHandoversUC: claimuc.NewRevertExpiredHandoversUseCase(c.repos.claimRepo, c.txManager, c.log),

		createOrderUC: orderuc.NewCreateOrderUseCase(c.repos.orderRepo, c.log),
		getOrderUC:    orderuc.NewGetOrderUseCase(c.repos.orderRepo, c.log),
		listOrdersUC:  orderuc.NewListOrdersUseCase(c.repos.orderRepo, c.log),
		cancelOrderUC: orderuc.NewCancelOrderUseCase(c.repos.orderRepo, c.log),
		issueDeliveryOtpUC: orderuc.NewIssueDeliveryOtpUseCase(
			c.repos.orderRepo, c.repos.userRepo, c.emailService, c.log,
		),
		verifyDeliveryOtpUC: orderuc.NewVerifyDeliveryOtpUseCase(
			c.repos.orderRepo, c.txManager, c.attemptLimiter, claimsCfg, c.log,
		),
	}
}
