// Package db carries the transaction plumbing shared by the use cases
// and repositories. A transaction opened by a use case travels down to
// the repositories through the context, so the approval cascade and the
// passcode verifications read and write through one gorm.DB handle.
package db

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// TransactionManager satisfies the use cases' TransactionRunner port.
type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction runs fn inside a transaction, committing on nil and
// rolling back on error. The transaction handle is stashed in the
// context fn receives, where GetTxFromContext picks it up.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txKey{}, tx)
		return fn(txCtx)
	})
}

// GetTxFromContext returns the in-flight transaction carried by ctx, or
// defaultDB when the caller is running outside one. Repositories route
// every query through this so they join whichever transaction the use
// case opened.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
