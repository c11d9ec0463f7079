package service

import (
	"context"

	"gorm.io/gorm"
)

// runTx wraps fn in a database transaction. With a nil db (unit tests on
// stub repositories) fn runs directly with a nil handle.
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}
