package usecases

import (
	"context"
	"time"
)

// TransactionRunner executes a function inside a database transaction.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// DeliveryNotifier mails delivery passcodes to buyers. Unlike claim
// decision notices, code dispatch here is load-bearing: the buyer cannot
// confirm a delivery without the mail, so senders must report failure.
type DeliveryNotifier interface {
	SendDeliveryCode(ctx context.Context, email, name, code string, expiresAt time.Time) error
}

// AttemptLimiter throttles passcode verification attempts per subject key.
type AttemptLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
