package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// TransactionManager opens company-scoped transactions
type TransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager creates a new transaction manager
func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// WithinCompanyTx runs fn in a transaction holding a Postgres advisory lock keyed
// by the company id. Concurrent calls for the same company run one after the
// other, so lookup-or-create plus count-and-insert sequences cannot interleave.
// The lock is released when the transaction commits or rolls back.
func (m *TransactionManager) WithinCompanyTx(ctx context.Context, companyID string, fn func(repos Repositories) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", companyID).Error; err != nil {
			return fmt.Errorf("lock company %q: %w", companyID, err)
		}
		return fn(Repositories{
			Companies: NewCompanyRepository(tx),
			Users:     NewUserRepository(tx),
		})
	})
}
