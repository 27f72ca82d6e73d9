package usecases

import (
	"context"
	"testing"

	"farmgate/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClaim_PartiesAndAdminOnly(t *testing.T) {
	claimRepo := newMockClaimRepository()
	c := newTestClaim(t, claimRepo, 1, 2, 3)

	uc := NewGetClaimUseCase(claimRepo, noopLogger{})

	tests := []struct {
		name    string
		actorID uint
		isAdmin bool
		wantErr bool
	}{
		{"claimant", 2, false, false},
		{"owner", 3, false, false},
		{"admin", 99, true, false},
		{"stranger", 7, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := uc.Execute(context.Background(), GetClaimQuery{
				ClaimID: c.ID(),
				ActorID: tt.actorID,
				IsAdmin: tt.isAdmin,
			})
			if tt.wantErr {
				assert.Nil(t, result)
				assert.True(t, errors.IsForbiddenError(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, c.ID(), result.ID)
			}
		})
	}
}

func TestGetClaim_NotFound(t *testing.T) {
	uc := NewGetClaimUseCase(newMockClaimRepository(), noopLogger{})

	result, err := uc.Execute(context.Background(), GetClaimQuery{ClaimID: 42, ActorID: 1})

	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestListClaims_ScopedByPerspective(t *testing.T) {
	claimRepo := newMockClaimRepository()
	newTestClaim(t, claimRepo, 1, 2, 3)
	newTestClaim(t, claimRepo, 1, 4, 3)
	newTestClaim(t, claimRepo, 5, 3, 6)

	uc := NewListClaimsUseCase(claimRepo, noopLogger{})

	// User 3 as claimant sees only the claim they submitted.
	asClaimant, total, err := uc.Execute(context.Background(), ListClaimsQuery{ActorID: 3})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, asClaimant, 1)
	assert.Equal(t, uint(3), asClaimant[0].ClaimantID)

	// User 3 as owner sees the two claims on their listing.
	asOwner, total, err := uc.Execute(context.Background(), ListClaimsQuery{ActorID: 3, Perspective: PerspectiveOwner})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, asOwner, 2)
}

func TestListClaims_AdminUnscoped(t *testing.T) {
	claimRepo := newMockClaimRepository()
	newTestClaim(t, claimRepo, 1, 2, 3)
	newTestClaim(t, claimRepo, 5, 4, 6)

	uc := NewListClaimsUseCase(claimRepo, noopLogger{})

	all, total, err := uc.Execute(context.Background(), ListClaimsQuery{ActorID: 99, IsAdmin: true})

	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, all, 2)
}

func TestListClaims_InvalidPerspective(t *testing.T) {
	uc := NewListClaimsUseCase(newMockClaimRepository(), noopLogger{})

	result, _, err := uc.Execute(context.Background(), ListClaimsQuery{ActorID: 1, Perspective: "bystander"})

	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}
