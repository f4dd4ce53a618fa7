package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. UserID references users.id and
// is the primary key: one profile per user, enforced by the schema on top of
// the application's lookup-before-insert guard.
type ProfileModel struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role        string    `gorm:"type:varchar(32);not null"`
	DisplayName string    `gorm:"type:varchar(100);not null;index:idx_profiles_display_name"`
	Bio         string    `gorm:"type:text"`
	Points      int       `gorm:"not null;index:idx_profiles_points"`
	Level       int       `gorm:"not null"`
	Badges      []string  `gorm:"serializer:json"`
	JoinedAt    time.Time `gorm:"not null"`
	PhotoKey    string    `gorm:"type:varchar(255)"`

	Location string `gorm:"type:varchar(255)"`
	Website  string `gorm:"type:varchar(255)"`
	Phone    string `gorm:"type:varchar(32)"`

	BusinessName     string   `gorm:"type:varchar(255)"`
	BusinessCategory string   `gorm:"type:varchar(100)"`
	BusinessHours    string   `gorm:"type:varchar(255)"`
	BusinessServices []string `gorm:"serializer:json"`

	VehicleType    string  `gorm:"type:varchar(100)"`
	DeliveryRadius float64 `gorm:""`
	Availability   string  `gorm:"type:varchar(100)"`

	Interests      []string `gorm:"serializer:json"`
	FavoriteVerses []string `gorm:"serializer:json"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
