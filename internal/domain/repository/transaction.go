package repository

import "context"

// TransactionManager defines the interface for managing master store transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides master store repositories bound to a specific transaction.
type RepositoryFactory interface {
	// NewPropertyRepository returns a PropertyRepository bound to the current transaction.
	NewPropertyRepository() PropertyRepository

	// NewPoolRepository returns a PoolRepository bound to the current transaction.
	NewPoolRepository() PoolRepository

	// NewMasterListingRepository returns a MasterListingRepository bound to the current transaction.
	NewMasterListingRepository() MasterListingRepository
}
