// Package db provides database utilities including transaction management.
package db

import (
	"context"

	"gorm.io/gorm"
)

// txKey is the context key for storing transaction.
type txKey struct{}

// WithTx returns a context carrying the given transaction. Repositories
// resolve it through GetTxFromContext so multiple writes can share one
// unit of work.
func WithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetTxFromContext returns the transaction from context if available.
// Otherwise it returns a session scoped to the given context, so every
// repository call is bound to the lifetime of its unit of work.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
