package usecases

import (
	"context"
	"testing"
	"time"

	"farmgate/internal/domain/claim"
	"farmgate/internal/domain/otp"
	"farmgate/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// handoverFixture walks a claim through submit, approve and code issue so
// verification tests start from a realistic state. The plaintext code is
// captured from the notifier, the only place it ever appears.
type handoverFixture struct {
	claimRepo   *mockClaimRepository
	listingRepo *mockListingRepository
	userRepo    *mockUserRepository
	notifier    *mockNotifier
	claimID     uint
	listingID   uint
	code        string
}

func setupHandover(t *testing.T) *handoverFixture {
	t.Helper()

	f := &handoverFixture{
		claimRepo:   newMockClaimRepository(),
		listingRepo: newMockListingRepository(),
		userRepo:    newMockUserRepository(),
		notifier:    &mockNotifier{},
	}

	lst := newTestListing(t, f.listingRepo, 1)
	newTestUser(t, f.userRepo, 2, "claimant@example.com")
	f.listingID = lst.ID()

	submit := NewSubmitClaimUseCase(f.claimRepo, f.listingRepo, defaultClaimsConfig(), noopLogger{})
	submitted, err := submit.Execute(context.Background(), SubmitClaimCommand{
		ListingID:  lst.ID(),
		ClaimantID: 2,
		Message:    "keen to run sheep here",
		Months:     6,
	})
	require.NoError(t, err)
	f.claimID = submitted.ID

	decide := NewDecideClaimUseCase(f.claimRepo, f.listingRepo, f.userRepo, &mockTxRunner{}, f.notifier, noopLogger{})
	_, err = decide.Execute(context.Background(), DecideClaimCommand{ClaimID: f.claimID, ActorID: 1, Approve: true})
	require.NoError(t, err)

	issue := NewIssueHandoverOtpUseCase(f.claimRepo, f.userRepo, f.notifier, noopLogger{})
	_, err = issue.Execute(context.Background(), IssueHandoverOtpCommand{ClaimID: f.claimID, ActorID: 1})
	require.NoError(t, err)
	f.code = f.notifier.lastCode

	return f
}

func (f *handoverFixture) verifyUseCase(limiter AttemptLimiter) *VerifyHandoverOtpUseCase {
	return NewVerifyHandoverOtpUseCase(f.claimRepo, f.listingRepo, &mockTxRunner{}, limiter, defaultClaimsConfig(), noopLogger{})
}

func TestVerifyHandoverOtp_CompletesClaimAndRentsListing(t *testing.T) {
	f := setupHandover(t)

	uc := f.verifyUseCase(&mockLimiter{allowed: true})
	result, err := uc.Execute(context.Background(), VerifyHandoverOtpCommand{
		ClaimID: f.claimID,
		ActorID: 1,
		Code:    f.code,
	})

	require.NoError(t, err)
	assert.Equal(t, "completed", result.Status)
	require.NotNil(t, result.HandoverAt)
	assert.WithinDuration(t, time.Now(), *result.HandoverAt, 5*time.Second)
	assert.Nil(t, result.CodeExpiresAt)

	lst, err := f.listingRepo.GetByID(context.Background(), f.listingID)
	require.NoError(t, err)
	assert.True(t, lst.Status().IsRented())
}

func TestVerifyHandoverOtp_WrongCodeDoesNotConsume(t *testing.T) {
	f := setupHandover(t)
	uc := f.verifyUseCase(&mockLimiter{allowed: true})

	result, err := uc.Execute(context.Background(), VerifyHandoverOtpCommand{
		ClaimID: f.claimID,
		ActorID: 1,
		Code:    "000000",
	})
	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInvalidCode, appErr.Type)

	c, err := f.claimRepo.GetByID(context.Background(), f.claimID)
	require.NoError(t, err)
	assert.True(t, c.Status().IsHandoverInProgress())

	// The outstanding code survives the failed attempt.
	result, err = uc.Execute(context.Background(), VerifyHandoverOtpCommand{
		ClaimID: f.claimID,
		ActorID: 1,
		Code:    f.code,
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", result.Status)
}

func TestVerifyHandoverOtp_ExpiredCode(t *testing.T) {
	claimRepo := newMockClaimRepository()
	listingRepo := newMockListingRepository()
	lst := newTestListing(t, listingRepo, 1)

	expired := otp.ReconstructChallenge("deadbeef", "salt", time.Now().Add(-time.Minute))
	c, err := claim.ReconstructClaim(
		1, lst.ID(), 2, 1, "", 6,
		"handover_in_progress", expired, nil, 3,
		time.Now().Add(-time.Hour), time.Now().Add(-time.Minute),
	)
	require.NoError(t, err)
	require.NoError(t, claimRepo.Update(context.Background(), c))

	uc := NewVerifyHandoverOtpUseCase(claimRepo, listingRepo, &mockTxRunner{}, &mockLimiter{allowed: true}, defaultClaimsConfig(), noopLogger{})

	result, err := uc.Execute(context.Background(), VerifyHandoverOtpCommand{ClaimID: 1, ActorID: 1, Code: "123456"})

	assert.Nil(t, result)
	assert.True(t, errors.IsCodeExpiredError(err))
}

func TestVerifyHandoverOtp_NoActiveCode(t *testing.T) {
	f := setupHandover(t)

	// Force the claim back to approved, clearing the challenge.
	c, err := f.claimRepo.GetByID(context.Background(), f.claimID)
	require.NoError(t, err)
	require.True(t, c.RevertExpiredHandover(time.Now().Add(time.Hour)))

	uc := f.verifyUseCase(&mockLimiter{allowed: true})
	result, err := uc.Execute(context.Background(), VerifyHandoverOtpCommand{ClaimID: f.claimID, ActorID: 1, Code: f.code})

	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}

// The claimant holds the code, so letting them submit it would prove
// nothing about the owner being present.
func TestVerifyHandoverOtp_ClaimantCannotComplete(t *testing.T) {
	f := setupHandover(t)
	uc := f.verifyUseCase(&mockLimiter{allowed: true})

	result, err := uc.Execute(context.Background(), VerifyHandoverOtpCommand{ClaimID: f.claimID, ActorID: 2, Code: f.code})

	assert.Nil(t, result)
	assert.True(t, errors.IsForbiddenError(err))

	c, err := f.claimRepo.GetByID(context.Background(), f.claimID)
	require.NoError(t, err)
	assert.True(t, c.Status().IsHandoverInProgress())
}

func TestVerifyHandoverOtp_AdminCanComplete(t *testing.T) {
	f := setupHandover(t)
	uc := f.verifyUseCase(&mockLimiter{allowed: true})

	result, err := uc.Execute(context.Background(), VerifyHandoverOtpCommand{ClaimID: f.claimID, ActorID: 99, IsAdmin: true, Code: f.code})

	require.NoError(t, err)
	assert.Equal(t, "completed", result.Status)
}

func TestVerifyHandoverOtp_RateLimited(t *testing.T) {
	f := setupHandover(t)
	limiter := &mockLimiter{allowed: false}
	uc := f.verifyUseCase(limiter)

	result, err := uc.Execute(context.Background(), VerifyHandoverOtpCommand{ClaimID: f.claimID, ActorID: 1, Code: f.code})

	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeRateLimited, appErr.Type)
	assert.Equal(t, 1, limiter.calls)
}

func TestVerifyHandoverOtp_LimiterFailureFailsOpen(t *testing.T) {
	f := setupHandover(t)
	uc := f.verifyUseCase(&mockLimiter{err: assert.AnError})

	result, err := uc.Execute(context.Background(), VerifyHandoverOtpCommand{ClaimID: f.claimID, ActorID: 1, Code: f.code})

	require.NoError(t, err)
	assert.Equal(t, "completed", result.Status)
}
