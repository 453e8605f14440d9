package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShipModel is the GORM-specific struct for the 'ships' table.
// The registry owns the row; the engine writes only status and last_ship_notification_id.
type ShipModel struct {
	ID                     uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Code                   string     `gorm:"type:varchar(64);not null;uniqueIndex"`
	Name                   string     `gorm:"type:text;not null"`
	OwnerUserID            *uuid.UUID `gorm:"type:uuid;index"`
	Status                 string     `gorm:"type:varchar(32);not null;default:'DISCONNECTED'"`
	LastShipNotificationID *uuid.UUID `gorm:"type:uuid"`
	TrackingEnabled        bool       `gorm:"not null;default:false"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShipModel) TableName() string {
	return "ships"
}

// BeforeCreate assigns an ID when none was set.
func (m *ShipModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:text;not null"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns an ID when none was set.
func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// UserPushTokenModel is the GORM-specific struct for the 'user_push_tokens' table.
// It represents a device registered by a user for push notifications.
type UserPushTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Token     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Platform  string    `gorm:"type:varchar(50);not null"`
	IsActive  bool      `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserPushTokenModel) TableName() string {
	return "user_push_tokens"
}

// BeforeCreate assigns an ID when none was set.
func (m *UserPushTokenModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
