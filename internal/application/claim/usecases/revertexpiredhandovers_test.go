package usecases

import (
	"context"
	"testing"
	"time"

	"farmgate/internal/domain/claim"
	"farmgate/internal/domain/otp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reconstructHandoverClaim(t *testing.T, repo *mockClaimRepository, id uint, expiresAt time.Time) *claim.Claim {
	t.Helper()
	ch := otp.ReconstructChallenge("deadbeef", "salt", expiresAt)
	c, err := claim.ReconstructClaim(
		id, 1, 2, 3, "", 6,
		"handover_in_progress", ch, nil, 3,
		time.Now().Add(-time.Hour), time.Now(),
	)
	require.NoError(t, err)
	require.NoError(t, repo.Update(context.Background(), c))
	return c
}

func TestRevertExpiredHandovers(t *testing.T) {
	claimRepo := newMockClaimRepository()

	stale := reconstructHandoverClaim(t, claimRepo, 1, time.Now().Add(-time.Minute))
	fresh := reconstructHandoverClaim(t, claimRepo, 2, time.Now().Add(10*time.Minute))

	uc := NewRevertExpiredHandoversUseCase(claimRepo, &mockTxRunner{}, noopLogger{})

	count, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.True(t, stale.Status().IsApproved())
	assert.Nil(t, stale.Challenge())
	assert.True(t, fresh.Status().IsHandoverInProgress())
}

func TestRevertExpiredHandovers_Empty(t *testing.T) {
	uc := NewRevertExpiredHandoversUseCase(newMockClaimRepository(), &mockTxRunner{}, noopLogger{})

	count, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Zero(t, count)
}
