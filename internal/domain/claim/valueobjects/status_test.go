package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClaimStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ClaimStatus
		wantErr bool
	}{
		{"valid pending", "pending", StatusPending, false},
		{"valid approved", "approved", StatusApproved, false},
		{"valid rejected", "rejected", StatusRejected, false},
		{"valid handover_in_progress", "handover_in_progress", StatusHandoverInProgress, false},
		{"valid completed", "completed", StatusCompleted, false},
		{"invalid status", "negotiating", "", true},
		{"empty string", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewClaimStatus(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestClaimStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from ClaimStatus
		to   ClaimStatus
		want bool
	}{
		{"pending to approved", StatusPending, StatusApproved, true},
		{"pending to rejected", StatusPending, StatusRejected, true},
		{"pending to completed", StatusPending, StatusCompleted, false},
		{"pending to handover", StatusPending, StatusHandoverInProgress, false},
		{"approved to handover", StatusApproved, StatusHandoverInProgress, true},
		{"approved to rejected", StatusApproved, StatusRejected, false},
		{"approved to completed", StatusApproved, StatusCompleted, false},
		{"handover to completed", StatusHandoverInProgress, StatusCompleted, true},
		{"handover reverts to approved", StatusHandoverInProgress, StatusApproved, true},
		{"handover to rejected", StatusHandoverInProgress, StatusRejected, false},
		{"rejected is terminal", StatusRejected, StatusPending, false},
		{"completed is terminal", StatusCompleted, StatusApproved, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestClaimStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusApproved.IsTerminal())
	assert.False(t, StatusHandoverInProgress.IsTerminal())
}
