package usecases

import (
	"context"
	"time"
)

// TransactionRunner executes a function inside a database transaction.
// Satisfied by db.TransactionManager; injected as an interface so tests
// can run the function directly.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ClaimNotifier delivers claim lifecycle mail to claimants. Passcodes are
// dispatched out-of-band only; they are never returned through the API.
type ClaimNotifier interface {
	// SendHandoverCode mails the plaintext handover passcode to the claimant.
	SendHandoverCode(ctx context.Context, email, name, code string, expiresAt time.Time) error

	// SendClaimDecision mails an approval or rejection notice.
	SendClaimDecision(ctx context.Context, email, name, listingTitle string, approved bool) error
}

// AttemptLimiter throttles passcode verification attempts per subject key.
type AttemptLimiter interface {
	// Allow reports whether one more attempt is permitted for the key.
	Allow(ctx context.Context, key string) (bool, error)
}
