package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserPushToken represents a device token registered by a user for push notifications.
type UserPushToken struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the token record.
	UserID    uuid.UUID `json:"user_id"`    // The ID of the user who owns this device.
	Token     string    `json:"token"`      // Provider token; unique across all users.
	Platform  string    `json:"platform"`   // Device platform (ios, android).
	IsActive  bool      `json:"is_active"`  // Indicates if this token should receive notifications.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this token was registered.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}
