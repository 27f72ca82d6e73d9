// Package otp implements the one-time passcode primitive shared by the
// account, handover and delivery flows. A Challenge is embedded in the
// aggregate it secures; only a salted hash of the code is ever stored.
package otp

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"farmgate/internal/shared/biztime"
)

var (
	// ErrNoActiveCode is returned when no challenge exists or its expiry
	// was never set. Such a record is indistinguishable from "no code".
	ErrNoActiveCode = errors.New("no active code")
	// ErrCodeInvalid is returned when the submitted code does not match.
	ErrCodeInvalid = errors.New("invalid code")
	// ErrCodeExpired is returned when the code is past its window.
	ErrCodeExpired = errors.New("code expired")
)

// Challenge holds the verification state for one issued code: a salted
// SHA-256 hash and an expiry. The plaintext code exists only in the
// return value of NewChallenge and is never persisted.
type Challenge struct {
	codeHash  string
	salt      string
	expiresAt time.Time
}

// NewChallenge issues a fresh challenge for the given purpose and returns
// it together with the plaintext code for out-of-band dispatch.
func NewChallenge(purpose Purpose) (*Challenge, string, error) {
	if !purpose.IsValid() {
		return nil, "", fmt.Errorf("invalid otp purpose: %s", purpose)
	}

	code, err := GenerateCode()
	if err != nil {
		return nil, "", err
	}

	saltBytes := make([]byte, 16)
	if _, err := rand.Read(saltBytes); err != nil {
		return nil, "", fmt.Errorf("failed to generate salt: %w", err)
	}
	salt := hex.EncodeToString(saltBytes)

	return &Challenge{
		codeHash:  hashCode(salt, code),
		salt:      salt,
		expiresAt: biztime.NowUTC().Add(purpose.Window()),
	}, code, nil
}

// ReconstructChallenge rebuilds a challenge from persistence. Returns nil
// when the stored fields do not describe an issued challenge, so callers
// can treat partial records as "no active code".
func ReconstructChallenge(codeHash, salt string, expiresAt time.Time) *Challenge {
	if codeHash == "" || expiresAt.IsZero() {
		return nil
	}
	return &Challenge{
		codeHash:  codeHash,
		salt:      salt,
		expiresAt: expiresAt,
	}
}

// Verify checks a submitted code against the challenge. Safe to call on a
// nil challenge, which fails with ErrNoActiveCode. Expiry is checked
// before the hash comparison so an expired record never validates.
func (c *Challenge) Verify(code string) error {
	if c == nil || c.codeHash == "" || c.expiresAt.IsZero() {
		return ErrNoActiveCode
	}

	if biztime.NowUTC().After(c.expiresAt) {
		return ErrCodeExpired
	}

	if subtle.ConstantTimeCompare([]byte(hashCode(c.salt, code)), []byte(c.codeHash)) != 1 {
		return ErrCodeInvalid
	}

	return nil
}

// Expired reports whether the challenge is past its window.
func (c *Challenge) Expired(now time.Time) bool {
	return c == nil || now.After(c.expiresAt)
}

func (c *Challenge) Hash() string {
	return c.codeHash
}

func (c *Challenge) Salt() string {
	return c.salt
}

func (c *Challenge) ExpiresAt() time.Time {
	return c.expiresAt
}

func hashCode(salt, code string) string {
	sum := sha256.Sum256([]byte(salt + ":" + code))
	return hex.EncodeToString(sum[:])
}
