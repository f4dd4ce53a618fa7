package model

import (
	"time"

	"github.com/google/uuid"
)

// PointTransactionModel mirrors the 'point_transactions' table. Insert-only.
type PointTransactionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_point_transactions_user"`
	Points      int       `gorm:"not null"`
	Action      string    `gorm:"type:varchar(64);not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PointTransactionModel) TableName() string {
	return "point_transactions"
}
