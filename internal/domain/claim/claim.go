// Package claim holds the claim aggregate: one claimant's bid to rent a
// land listing, arbitrated against competing claims so that at most one
// claim per listing ever completes.
package claim

import (
	"fmt"
	"time"

	vo "farmgate/internal/domain/claim/valueobjects"
	"farmgate/internal/domain/otp"
	"farmgate/internal/shared/biztime"
)

const maxMessageLength = 2000

type Claim struct {
	id         uint
	listingID  uint
	claimantID uint
	// ownerID is denormalized from the listing at claim time so decisions
	// can be authorized without loading the listing.
	ownerID    uint
	message    string
	months     int
	status     vo.ClaimStatus
	challenge  *otp.Challenge
	handoverAt *time.Time
	version    int
	createdAt  time.Time
	updatedAt  time.Time
}

func NewClaim(listingID, claimantID, ownerID uint, message string, months int) (*Claim, error) {
	if listingID == 0 {
		return nil, fmt.Errorf("listing ID is required")
	}
	if claimantID == 0 {
		return nil, fmt.Errorf("claimant ID is required")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if claimantID == ownerID {
		return nil, ErrSelfClaim
	}
	if months <= 0 {
		return nil, fmt.Errorf("proposed duration must be positive")
	}
	if len(message) > maxMessageLength {
		return nil, fmt.Errorf("message exceeds maximum length of %d characters", maxMessageLength)
	}

	now := biztime.NowUTC()
	return &Claim{
		listingID:  listingID,
		claimantID: claimantID,
		ownerID:    ownerID,
		message:    message,
		months:     months,
		status:     vo.StatusPending,
		version:    1,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructClaim(
	id uint,
	listingID, claimantID, ownerID uint,
	message string,
	months int,
	status vo.ClaimStatus,
	challenge *otp.Challenge,
	handoverAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*Claim, error) {
	if id == 0 {
		return nil, fmt.Errorf("claim ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid claim status: %s", status)
	}

	return &Claim{
		id:         id,
		listingID:  listingID,
		claimantID: claimantID,
		ownerID:    ownerID,
		message:    message,
		months:     months,
		status:     status,
		challenge:  challenge,
		handoverAt: handoverAt,
		version:    version,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (c *Claim) ID() uint {
	return c.id
}

func (c *Claim) ListingID() uint {
	return c.listingID
}

func (c *Claim) ClaimantID() uint {
	return c.claimantID
}

func (c *Claim) OwnerID() uint {
	return c.ownerID
}

func (c *Claim) Message() string {
	return c.message
}

func (c *Claim) Months() int {
	return c.months
}

func (c *Claim) Status() vo.ClaimStatus {
	return c.status
}

func (c *Claim) Challenge() *otp.Challenge {
	return c.challenge
}

func (c *Claim) HandoverAt() *time.Time {
	return c.handoverAt
}

func (c *Claim) Version() int {
	return c.version
}

func (c *Claim) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Claim) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Claim) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("claim ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("claim ID cannot be zero")
	}
	c.id = id
	return nil
}

// CanBeDecidedBy reports whether the actor may approve or reject this
// claim: the listing owner, or an administrator.
func (c *Claim) CanBeDecidedBy(actorID uint, isAdmin bool) bool {
	return isAdmin || c.ownerID == actorID
}

// Approve moves a pending claim to approved. Rejecting the losing
// siblings is the arbitration engine's job, not the aggregate's.
func (c *Claim) Approve() error {
	if !c.status.CanTransitionTo(vo.StatusApproved) {
		return fmt.Errorf("%w: cannot approve claim with status %s", ErrInvalidTransition, c.status)
	}

	c.status = vo.StatusApproved
	c.touch()
	return nil
}

// Reject moves a pending claim to the terminal rejected state.
func (c *Claim) Reject() error {
	if !c.status.CanTransitionTo(vo.StatusRejected) {
		return fmt.Errorf("%w: cannot reject claim with status %s", ErrInvalidTransition, c.status)
	}

	c.status = vo.StatusRejected
	c.touch()
	return nil
}

// BeginHandover attaches a freshly issued passcode challenge and moves an
// approved claim into handover. The status change and the challenge are
// one mutation: the claim is never in handover without an active code.
// Re-issuing from handover_in_progress overwrites the previous challenge.
func (c *Claim) BeginHandover(challenge *otp.Challenge) error {
	if challenge == nil {
		return fmt.Errorf("handover challenge is required")
	}
	if challenge.Expired(biztime.NowUTC()) {
		return fmt.Errorf("handover challenge is already expired")
	}

	switch {
	case c.status.IsHandoverInProgress():
		// fresh code replaces the outstanding one, state unchanged
	case c.status.CanTransitionTo(vo.StatusHandoverInProgress):
		c.status = vo.StatusHandoverInProgress
	default:
		return fmt.Errorf("%w: cannot begin handover for claim with status %s", ErrInvalidTransition, c.status)
	}

	c.challenge = challenge
	c.touch()
	return nil
}

// CompleteHandover verifies the submitted passcode and, on success, moves
// the claim to its terminal completed state, stamps the handover time and
// clears the challenge (single use). On any verification failure the
// claim is left untouched; the caller may re-issue a fresh code.
func (c *Claim) CompleteHandover(code string) error {
	if !c.status.IsHandoverInProgress() {
		return fmt.Errorf("%w: cannot complete handover for claim with status %s", ErrInvalidTransition, c.status)
	}

	if err := c.challenge.Verify(code); err != nil {
		return err
	}

	now := biztime.NowUTC()
	c.status = vo.StatusCompleted
	c.handoverAt = &now
	c.challenge = nil
	c.touch()
	return nil
}

// RevertExpiredHandover moves a claim stuck in handover with an expired
// (or missing) challenge back to approved. Returns true when the claim
// changed. Applied by the periodic sweep so the stall is surfaced as an
// explicit transition rather than silent drift.
func (c *Claim) RevertExpiredHandover(now time.Time) bool {
	if !c.status.IsHandoverInProgress() {
		return false
	}
	if !c.challenge.Expired(now) {
		return false
	}

	c.status = vo.StatusApproved
	c.challenge = nil
	c.touch()
	return true
}

func (c *Claim) touch() {
	c.updatedAt = biztime.NowUTC()
	c.version++
}
