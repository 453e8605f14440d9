package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType is reference data describing a class of notification.
type NotificationType struct {
	ID   uuid.UUID `json:"id"`
	Code string    `json:"code"`
	Name string    `json:"name"`
	// Form the mobile app opens for this notification.
	Form     string `json:"form,omitempty"`
	Icon     string `json:"icon,omitempty"`
	Color    string `json:"color,omitempty"`
	Priority int    `json:"priority"`
	// NextAction, when set, chains a follow-up after delivery.
	NextAction             *string    `json:"next_action,omitempty"`
	NextNotificationTypeID *uuid.UUID `json:"next_notification_type_id,omitempty"`
	TitleTemplate          string     `json:"title_template"`
	BodyTemplate           string     `json:"body_template"`
	MaxRetry               int        `json:"max_retry"`
	RepeatUntilResolved    bool       `json:"repeat_until_resolved"`
	RepeatDaily            bool       `json:"repeat_daily"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

// HasNextAction reports whether delivery of this type chains a follow-up.
func (t *NotificationType) HasNextAction() bool {
	return t.NextAction != nil && *t.NextAction != ""
}
