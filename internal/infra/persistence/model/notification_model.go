package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationTypeModel is the GORM-specific struct for the 'notification_types' table.
type NotificationTypeModel struct {
	ID                     uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Code                   string     `gorm:"type:varchar(64);not null;uniqueIndex"`
	Name                   string     `gorm:"type:text;not null"`
	Form                   string     `gorm:"type:varchar(64)"`
	Icon                   string     `gorm:"type:varchar(64)"`
	Color                  string     `gorm:"type:varchar(16)"`
	Priority               int        `gorm:"not null;default:0"`
	NextAction             *string    `gorm:"type:varchar(64)"`
	NextNotificationTypeID *uuid.UUID `gorm:"type:uuid"`
	TitleTemplate          string     `gorm:"type:text;not null"`
	BodyTemplate           string     `gorm:"type:text;not null"`
	MaxRetry               int        `gorm:"not null;default:0"`
	RepeatUntilResolved    bool       `gorm:"not null;default:false"`
	RepeatDaily            bool       `gorm:"not null;default:false"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationTypeModel) TableName() string {
	return "notification_types"
}

// BeforeCreate assigns an ID when none was set.
func (m *NotificationTypeModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// Status changes are conditional updates; see the repository for the guards.
type NotificationModel struct {
	ID                     uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ShipID                 uuid.UUID  `gorm:"type:uuid;not null;index:idx_notifications_ship_code,priority:1"`
	NotificationTypeID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status                 string     `gorm:"type:varchar(16);not null;index:idx_notifications_due,priority:1"`
	Reason                 *string    `gorm:"type:varchar(32)"`
	RetryNumber            int        `gorm:"not null;default:0"`
	MaxRetry               int        `gorm:"not null;default:0"`
	NextRetry              *time.Time `gorm:"index:idx_notifications_due,priority:2"`
	BoundaryCrossed        bool       `gorm:"not null;default:false"`
	BoundaryNearWarning    bool       `gorm:"not null;default:false"`
	BoundaryStatusCode     string     `gorm:"type:varchar(128);index:idx_notifications_ship_code,priority:2"`
	Active                 bool       `gorm:"not null"`
	RepeatDaily            bool       `gorm:"not null;default:false"`
	RepeatUntilResolved    bool       `gorm:"not null;default:false"`
	ResolvedAt             *time.Time
	PreviousNotificationID *uuid.UUID `gorm:"type:uuid;index"`
	NextNotificationID     *uuid.UUID `gorm:"type:uuid"`
	NextNotificationTypeID *uuid.UUID `gorm:"type:uuid"`
	Priority               int        `gorm:"not null;default:0"`
	IsViewed               bool       `gorm:"not null;default:false"`
	ViewedAt               *time.Time
	Title                  string   `gorm:"type:text;not null"`
	FormattedMessage       string   `gorm:"type:text;not null"`
	Latitude               *float64 `gorm:"type:decimal(10,8)"`
	Longitude              *float64 `gorm:"type:decimal(11,8)"`
	DistanceMeters         *float64
	ClaimToken             string `gorm:"type:varchar(64);not null;default:''"`
	ClaimedAt              *time.Time
	LastAttemptAt          *time.Time
	SentAt                 *time.Time
	DeliveredAt            *time.Time
	CreatedAt              time.Time `gorm:"index"`
	UpdatedAt              time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// BeforeCreate assigns an ID when none was set.
func (m *NotificationModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// NotificationAttemptModel is the GORM-specific struct for the 'notification_attempts' table.
// It records the outcome of one delivery attempt to one device token.
type NotificationAttemptModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	NotificationID uuid.UUID `gorm:"type:uuid;not null;index"`
	AttemptNumber  int       `gorm:"not null"`
	Token          string    `gorm:"type:varchar(255);not null"`
	Outcome        string    `gorm:"type:varchar(32);not null"`
	ErrorMessage   string    `gorm:"type:text"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationAttemptModel) TableName() string {
	return "notification_attempts"
}

// BeforeCreate assigns an ID when none was set.
func (m *NotificationAttemptModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
