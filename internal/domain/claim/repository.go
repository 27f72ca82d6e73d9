package claim

import (
	"context"
	"time"
)

// Filter narrows claim listings.
type Filter struct {
	ListingID  *uint
	ClaimantID *uint
	OwnerID    *uint
	Status     *string
	Page       int
	PageSize   int
}

// Repository is the persistence port for claims.
//
// ApproveExclusively is the single-winner primitive: it promotes the
// claim to approved only while it is still pending, and in the same
// transaction rejects every pending sibling on the listing. Callers run
// it inside a transaction so concurrent decisions serialize on the rows.
type Repository interface {
	Save(ctx context.Context, c *Claim) error

	// Update persists the aggregate with an optimistic version check;
	// returns ErrStaleClaim when another writer got there first.
	Update(ctx context.Context, c *Claim) error

	GetByID(ctx context.Context, id uint) (*Claim, error)

	// GetByIDForUpdate loads the claim holding a row lock for the rest of
	// the surrounding transaction.
	GetByIDForUpdate(ctx context.Context, id uint) (*Claim, error)

	List(ctx context.Context, filter Filter) ([]*Claim, int64, error)

	// ApproveExclusively conditionally flips the claim from pending to
	// approved and cascade-rejects its pending siblings. Returns the
	// number of siblings rejected, or ErrNotPending when the claim lost
	// the race (or was already decided).
	ApproveExclusively(ctx context.Context, claimID, listingID uint) (int64, error)

	// HasPendingByClaimant reports whether the claimant already holds a
	// pending claim on the listing (duplicate guard, config-gated).
	HasPendingByClaimant(ctx context.Context, listingID, claimantID uint) (bool, error)

	// ListExpiredHandovers returns claims sitting in handover whose
	// passcode expired before the given instant.
	ListExpiredHandovers(ctx context.Context, before time.Time) ([]*Claim, error)
}
