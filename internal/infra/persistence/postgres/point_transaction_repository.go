package postgres

import (
	"context"

	"vhiem/internal/domain/entity"
	domainerrors "vhiem/internal/domain/errors"
	"vhiem/internal/domain/repository"
	"vhiem/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// pointTransactionRepository implements the domain.PointTransactionRepository
// interface using GORM. The ledger is append-only; only Create exists.
type pointTransactionRepository struct {
	db *gorm.DB
}

// NewPointTransactionRepository is the constructor for pointTransactionRepository.
func NewPointTransactionRepository(db *gorm.DB) repository.PointTransactionRepository {
	return &pointTransactionRepository{db: db}
}

// Create appends one ledger row.
func (repo *pointTransactionRepository) Create(ctx context.Context, tx *entity.PointTransaction) error {
	txM := &model.PointTransactionModel{
		UserID:      tx.UserID,
		Points:      tx.Points,
		Action:      tx.Action,
		Description: tx.Description,
	}

	if err := repo.db.WithContext(ctx).Create(txM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append point transaction")
	}

	tx.ID = txM.ID
	tx.CreatedAt = txM.CreatedAt

	return nil
}
