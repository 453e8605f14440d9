package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a read-only view of a platform user who can own ships.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
