package otp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCode(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := GenerateCode()
		require.NoError(t, err)
		assert.Len(t, code, 6)
		assert.GreaterOrEqual(t, code, "100000")
		assert.LessOrEqual(t, code, "999999")
	}
}

func TestPurpose_Window(t *testing.T) {
	tests := []struct {
		name    string
		purpose Purpose
		want    time.Duration
	}{
		{"email verification uses 10 minutes", PurposeEmailVerification, 10 * time.Minute},
		{"password reset uses 10 minutes", PurposePasswordReset, 10 * time.Minute},
		{"delivery confirmation uses 10 minutes", PurposeDeliveryConfirmation, 10 * time.Minute},
		{"land handover uses 15 minutes", PurposeLandHandover, 15 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.purpose.Window())
		})
	}
}

func TestNewPurpose(t *testing.T) {
	got, err := NewPurpose("land_handover")
	require.NoError(t, err)
	assert.Equal(t, PurposeLandHandover, got)

	_, err = NewPurpose("carrier_pigeon")
	assert.Error(t, err)
}

func TestNewChallenge(t *testing.T) {
	before := time.Now()
	ch, code, err := NewChallenge(PurposeLandHandover)
	require.NoError(t, err)
	require.NotNil(t, ch)

	assert.Len(t, code, 6)
	assert.NotEmpty(t, ch.Hash())
	assert.NotEmpty(t, ch.Salt())
	assert.NotContains(t, ch.Hash(), code)

	// expiry lands at issuance + 15 minute handover window
	assert.WithinDuration(t, before.Add(15*time.Minute), ch.ExpiresAt(), 2*time.Second)
}

func TestNewChallenge_InvalidPurpose(t *testing.T) {
	_, _, err := NewChallenge(Purpose("bogus"))
	assert.Error(t, err)
}

func TestChallenge_Verify(t *testing.T) {
	ch, code, err := NewChallenge(PurposeDeliveryConfirmation)
	require.NoError(t, err)

	t.Run("correct code verifies", func(t *testing.T) {
		assert.NoError(t, ch.Verify(code))
	})

	t.Run("wrong code fails", func(t *testing.T) {
		wrong := "000000"
		if wrong == code {
			wrong = "000001"
		}
		assert.ErrorIs(t, ch.Verify(wrong), ErrCodeInvalid)
	})

	t.Run("nil challenge fails with no active code", func(t *testing.T) {
		var none *Challenge
		assert.ErrorIs(t, none.Verify(code), ErrNoActiveCode)
	})
}

func TestChallenge_Verify_ExpiryBoundary(t *testing.T) {
	ch, code, err := NewChallenge(PurposeLandHandover)
	require.NoError(t, err)

	t.Run("one second before expiry succeeds", func(t *testing.T) {
		fresh := ReconstructChallenge(ch.Hash(), ch.Salt(), time.Now().Add(time.Second))
		assert.NoError(t, fresh.Verify(code))
	})

	t.Run("one second after expiry fails expired", func(t *testing.T) {
		stale := ReconstructChallenge(ch.Hash(), ch.Salt(), time.Now().Add(-time.Second))
		assert.ErrorIs(t, stale.Verify(code), ErrCodeExpired)
	})

	t.Run("expired beats invalid for wrong codes", func(t *testing.T) {
		stale := ReconstructChallenge(ch.Hash(), ch.Salt(), time.Now().Add(-time.Second))
		assert.ErrorIs(t, stale.Verify("999999"), ErrCodeExpired)
	})
}

func TestReconstructChallenge_PartialRecords(t *testing.T) {
	t.Run("missing hash yields nil", func(t *testing.T) {
		assert.Nil(t, ReconstructChallenge("", "salt", time.Now()))
	})

	t.Run("missing expiry yields nil", func(t *testing.T) {
		assert.Nil(t, ReconstructChallenge("hash", "salt", time.Time{}))
	})
}

func TestChallenge_Expired(t *testing.T) {
	ch := ReconstructChallenge("hash", "salt", time.Now().Add(time.Minute))
	assert.False(t, ch.Expired(time.Now()))
	assert.True(t, ch.Expired(time.Now().Add(2*time.Minute)))

	var none *Challenge
	assert.True(t, none.Expired(time.Now()))
}
