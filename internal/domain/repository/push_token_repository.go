package repository

import (
	"context"

	"vesselwatch/internal/domain/entity"

	"github.com/google/uuid"
)

// PushTokenRepository reads registered device tokens. Token lifecycle belongs to another service.
type PushTokenRepository interface {
	// FindActiveByUser retrieves all active tokens for a user.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserPushToken, error)
}
