package claim

import "errors"

var (
	// ErrSelfClaim is returned when an owner tries to claim their own listing.
	ErrSelfClaim = errors.New("owner cannot claim their own listing")
	// ErrInvalidTransition is returned when a status change is not allowed
	// from the claim's current state.
	ErrInvalidTransition = errors.New("invalid claim status transition")
	// ErrNotPending is returned by the repository when a conditional
	// approval finds the claim no longer pending.
	ErrNotPending = errors.New("claim is no longer pending")
	// ErrStaleClaim is returned when an optimistic update lost to a
	// concurrent writer.
	ErrStaleClaim = errors.New("claim was modified concurrently")
)
