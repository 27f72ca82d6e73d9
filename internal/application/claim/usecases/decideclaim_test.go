package usecases

import (
	"context"
	"testing"

	"farmgate/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecideClaim_ApproveRejectsSiblings(t *testing.T) {
	claimRepo := newMockClaimRepository()
	listingRepo := newMockListingRepository()
	userRepo := newMockUserRepository()
	notifier := &mockNotifier{}

	lst := newTestListing(t, listingRepo, 1)
	newTestUser(t, userRepo, 2, "winner@example.com")
	newTestUser(t, userRepo, 3, "loser@example.com")
	winner := newTestClaim(t, claimRepo, lst.ID(), 2, 1)
	loser := newTestClaim(t, claimRepo, lst.ID(), 3, 1)

	uc := NewDecideClaimUseCase(claimRepo, listingRepo, userRepo, &mockTxRunner{}, notifier, noopLogger{})

	result, err := uc.Execute(context.Background(), DecideClaimCommand{
		ClaimID: winner.ID(),
		ActorID: 1,
		Approve: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "approved", result.Status)

	sibling, err := claimRepo.GetByID(context.Background(), loser.ID())
	require.NoError(t, err)
	assert.True(t, sibling.Status().IsRejected())

	assert.Equal(t, 1, notifier.decisionCalls)
	assert.True(t, notifier.lastDecision)
}

func TestDecideClaim_ApproveAlreadyDecided(t *testing.T) {
	claimRepo := newMockClaimRepository()
	listingRepo := newMockListingRepository()
	userRepo := newMockUserRepository()

	lst := newTestListing(t, listingRepo, 1)
	newTestUser(t, userRepo, 2, "claimant@example.com")
	c := newTestClaim(t, claimRepo, lst.ID(), 2, 1)
	require.NoError(t, c.Reject())

	uc := NewDecideClaimUseCase(claimRepo, listingRepo, userRepo, &mockTxRunner{}, &mockNotifier{}, noopLogger{})

	result, err := uc.Execute(context.Background(), DecideClaimCommand{
		ClaimID: c.ID(),
		ActorID: 1,
		Approve: true,
	})

	assert.Nil(t, result)
	assert.True(t, errors.IsInvalidStateError(err))
}

func TestDecideClaim_Reject(t *testing.T) {
	claimRepo := newMockClaimRepository()
	listingRepo := newMockListingRepository()
	userRepo := newMockUserRepository()
	notifier := &mockNotifier{}

	lst := newTestListing(t, listingRepo, 1)
	newTestUser(t, userRepo, 2, "claimant@example.com")
	c := newTestClaim(t, claimRepo, lst.ID(), 2, 1)

	uc := NewDecideClaimUseCase(claimRepo, listingRepo, userRepo, &mockTxRunner{}, notifier, noopLogger{})

	result, err := uc.Execute(context.Background(), DecideClaimCommand{
		ClaimID: c.ID(),
		ActorID: 1,
		Approve: false,
	})

	require.NoError(t, err)
	assert.Equal(t, "rejected", result.Status)
	assert.Equal(t, 1, notifier.decisionCalls)
	assert.False(t, notifier.lastDecision)
}

func TestDecideClaim_NotOwnerForbidden(t *testing.T) {
	claimRepo := newMockClaimRepository()
	listingRepo := newMockListingRepository()
	userRepo := newMockUserRepository()

	lst := newTestListing(t, listingRepo, 1)
	c := newTestClaim(t, claimRepo, lst.ID(), 2, 1)

	uc := NewDecideClaimUseCase(claimRepo, listingRepo, userRepo, &mockTxRunner{}, &mockNotifier{}, noopLogger{})

	result, err := uc.Execute(context.Background(), DecideClaimCommand{
		ClaimID: c.ID(),
		ActorID: 5,
		Approve: true,
	})

	assert.Nil(t, result)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestDecideClaim_AdminMayDecide(t *testing.T) {
	claimRepo := newMockClaimRepository()
	listingRepo := newMockListingRepository()
	userRepo := newMockUserRepository()

	lst := newTestListing(t, listingRepo, 1)
	newTestUser(t, userRepo, 2, "claimant@example.com")
	c := newTestClaim(t, claimRepo, lst.ID(), 2, 1)

	uc := NewDecideClaimUseCase(claimRepo, listingRepo, userRepo, &mockTxRunner{}, &mockNotifier{}, noopLogger{})

	result, err := uc.Execute(context.Background(), DecideClaimCommand{
		ClaimID: c.ID(),
		ActorID: 99,
		IsAdmin: true,
		Approve: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "approved", result.Status)
}

func TestDecideClaim_NotifierFailureDoesNotFail(t *testing.T) {
	claimRepo := newMockClaimRepository()
	listingRepo := newMockListingRepository()
	userRepo := newMockUserRepository()
	notifier := &mockNotifier{sendDecisionErr: assert.AnError}

	lst := newTestListing(t, listingRepo, 1)
	newTestUser(t, userRepo, 2, "claimant@example.com")
	c := newTestClaim(t, claimRepo, lst.ID(), 2, 1)

	uc := NewDecideClaimUseCase(claimRepo, listingRepo, userRepo, &mockTxRunner{}, notifier, noopLogger{})

	result, err := uc.Execute(context.Background(), DecideClaimCommand{
		ClaimID: c.ID(),
		ActorID: 1,
		Approve: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "approved", result.Status)
}

func TestDecideClaim_NotFound(t *testing.T) {
	uc := NewDecideClaimUseCase(newMockClaimRepository(), newMockListingRepository(), newMockUserRepository(), &mockTxRunner{}, &mockNotifier{}, noopLogger{})

	result, err := uc.Execute(context.Background(), DecideClaimCommand{ClaimID: 42, ActorID: 1, Approve: true})

	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}
