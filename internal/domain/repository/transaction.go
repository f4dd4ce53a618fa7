package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// Every multi-record update (like insert + counter patch + points patch +
// ledger insert) runs inside one Execute call so the store either applies all
// of its writes or none of them.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction. This ensures all repository operations within a transaction
// use the same database connection.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// ProfileRepo returns a ProfileRepository bound to the current transaction.
	ProfileRepo() ProfileRepository

	// PostRepo returns a PostRepository bound to the current transaction.
	PostRepo() PostRepository

	// CommentRepo returns a CommentRepository bound to the current transaction.
	CommentRepo() CommentRepository

	// LikeRepo returns a LikeRepository bound to the current transaction.
	LikeRepo() LikeRepository

	// FollowRepo returns a FollowRepository bound to the current transaction.
	FollowRepo() FollowRepository

	// PointRepo returns a PointTransactionRepository bound to the current transaction.
	PointRepo() PointTransactionRepository
}
