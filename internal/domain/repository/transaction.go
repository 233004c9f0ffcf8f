package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This lets the use case layer run multi-step writes atomically without
// depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back;
	// otherwise it is committed. All repository operations within the
	// function share the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so every operation inside Execute shares one connection.
type RepositoryFactory interface {
	// ProductRepo returns a ProductRepository bound to the current transaction.
	ProductRepo() ProductRepository

	// SaleRepo returns a SaleRepository bound to the current transaction.
	SaleRepo() SaleRepository

	// AdminRepo returns an AdminRepository bound to the current transaction.
	AdminRepo() AdminRepository
}
