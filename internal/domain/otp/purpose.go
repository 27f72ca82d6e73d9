package otp

import (
	"fmt"
	"time"
)

// Purpose identifies what a one-time passcode protects. The validity
// window is purpose-specific.
type Purpose string

const (
	PurposeEmailVerification    Purpose = "email_verification"
	PurposePasswordReset        Purpose = "password_reset"
	PurposeLandHandover         Purpose = "land_handover"
	PurposeDeliveryConfirmation Purpose = "delivery_confirmation"
)

var validPurposes = map[Purpose]bool{
	PurposeEmailVerification:    true,
	PurposePasswordReset:        true,
	PurposeLandHandover:         true,
	PurposeDeliveryConfirmation: true,
}

func (p Purpose) String() string {
	return string(p)
}

func (p Purpose) IsValid() bool {
	return validPurposes[p]
}

// Window returns how long a code issued for this purpose stays valid.
// In-person land handovers get a longer window than the email flows.
func (p Purpose) Window() time.Duration {
	if p == PurposeLandHandover {
		return 15 * time.Minute
	}
	return 10 * time.Minute
}

func NewPurpose(s string) (Purpose, error) {
	p := Purpose(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid otp purpose: %s", s)
	}
	return p, nil
}
