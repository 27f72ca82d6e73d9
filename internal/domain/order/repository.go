package order

import "context"

// Filter narrows order queries.
type Filter struct {
	BuyerID  *uint
	SellerID *uint
	Status   *string
	Page     int
	PageSize int
}

type Repository interface {
	Save(ctx context.Context, o *Order) error
	Update(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id uint) (*Order, error)
	List(ctx context.Context, filter Filter) ([]*Order, int64, error)
}
