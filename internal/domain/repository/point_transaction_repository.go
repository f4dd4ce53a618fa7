package repository

import (
	"context"

	"vhiem/internal/domain/entity"
)

// PointTransactionRepository defines the operations for the point ledger.
// The ledger is append-only: there are deliberately no update or delete
// methods, and nothing in the system reads rows back to recompute totals.
type PointTransactionRepository interface {
	// Create appends one ledger row.
	Create(ctx context.Context, tx *entity.PointTransaction) error
}
