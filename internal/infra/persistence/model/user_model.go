// Package model contains the GORM persistence models mirroring the database
// tables. They are kept separate from the domain entities so that storage
// concerns (tags, indexes, table names) never leak into the domain layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProviderUserID string    `gorm:"type:varchar(255);uniqueIndex:idx_users_provider;not null"`
	Name           string    `gorm:"type:varchar(100);not null"`
	Email          string    `gorm:"type:varchar(255);not null"`
	ProfilePhoto   string    `gorm:"type:text"`
	Nickname       string    `gorm:"type:varchar(100)"`
	GivenName      string    `gorm:"type:varchar(100)"`
	FamilyName     string    `gorm:"type:varchar(100)"`
	PhoneNumber    string    `gorm:"type:varchar(32)"`
	EmailVerified  bool
	PhoneVerified  bool
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Profile *ProfileModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
