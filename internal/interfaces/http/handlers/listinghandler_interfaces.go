package handlers

import (
	"context"

	listingdto "farmgate/internal/application/listing/dto"
	"farmgate/internal/application/listing/usecases"
)

// Use case interfaces for ListingHandler - enable unit testing with mocks.

type createListingUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateListingCommand) (*listingdto.ListingDTO, error)
}

type getListingUseCase interface {
	Execute(ctx context.Context, listingID uint) (*listingdto.ListingDTO, error)
}

type listListingsUseCase interface {
	Execute(ctx context.Context, query usecases.ListListingsQuery) ([]*listingdto.ListingDTO, int64, error)
}

type updateListingUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateListingCommand) (*listingdto.ListingDTO, error)
}

type delistListingUseCase interface {
	Execute(ctx context.Context, cmd usecases.DelistListingCommand) (*listingdto.ListingDTO, error)
}
