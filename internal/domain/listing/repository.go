package listing

import "context"

// Filter narrows listing queries.
type Filter struct {
	OwnerID  *uint
	Status   *string
	Location *string
	Page     int
	PageSize int
}

type Repository interface {
	Save(ctx context.Context, l *Listing) error
	Update(ctx context.Context, l *Listing) error
	GetByID(ctx context.Context, id uint) (*Listing, error)
	List(ctx context.Context, filter Filter) ([]*Listing, int64, error)
}
