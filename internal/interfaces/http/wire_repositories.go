package http

import (
	"farmgate/internal/domain/claim"
	"farmgate/internal/domain/listing"
	"farmgate/internal/domain/order"
	"farmgate/internal/domain/user"
	"farmgate/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo    user.Repository
	listingRepo listing.Repository
	claimRepo   claim.Repository
	orderRepo   order.Repository
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		userRepo:    repository.NewUserRepository(c.db, c.log),
		listingRepo: repository.NewListingRepository(c.db, c.log),
		claimRepo:   repository.NewClaimRepository(c.db, c.log),
		orderRepo:   repository.NewOrderRepository(c.db, c.log),
	}
}
