// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"poolscout/internal/domain/repository"
	"poolscout/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface
// for the master store using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object (*gorm.Tx) and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object *gorm.Tx is also a *gorm.DB
}

// NewPropertyRepository creates a property repository bound to the transaction.
func (f *gormRepositoryFactory) NewPropertyRepository() repository.PropertyRepository {
	return NewPropertyRepository(f.tx)
}

// NewPoolRepository creates a pool repository bound to the transaction.
func (f *gormRepositoryFactory) NewPoolRepository() repository.PoolRepository {
	return NewPoolRepository(f.tx)
}

// NewMasterListingRepository creates a master listing repository bound to the transaction.
func (f *gormRepositoryFactory) NewMasterListingRepository() repository.MasterListingRepository {
	return NewMasterListingRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return inTransaction(ctx, tm.db, func(tx *gorm.DB) error {
		return fn(&gormRepositoryFactory{tx: tx})
	})
}

// gormListingTransactionManager runs listing store work in one transaction.
type gormListingTransactionManager struct {
	db *gorm.DB
}

// NewListingTransactionManager is the constructor for the listing store transaction manager.
func NewListingTransactionManager(db *gorm.DB) repository.ListingTransactionManager {
	return &gormListingTransactionManager{db: db}
}

// Execute runs fn with a listing repository bound to a single transaction.
func (tm *gormListingTransactionManager) Execute(ctx context.Context, fn func(repo repository.ListingRepository) error) error {
	return inTransaction(ctx, tm.db, func(tx *gorm.DB) error {
		return fn(NewListingRepository(tx))
	})
}

func inTransaction(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	// Begin a new transaction
	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// Roll back on panic, then re-panic so Fx or middleware can handle it.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Return the original, more meaningful business error.
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
