package postgres

import (
	"context"

	"vesselwatch/internal/domain/entity"
	"vesselwatch/internal/domain/repository"
	"vesselwatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID. Soft-deleted users are not found.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return &entity.User{
		ID:        userM.ID,
		Name:      userM.Name,
		Email:     userM.Email,
		CreatedAt: userM.CreatedAt,
	}, nil
}

// pushTokenRepository implements the repository.PushTokenRepository interface.
type pushTokenRepository struct {
	db *gorm.DB
}

// NewPushTokenRepository is the constructor for pushTokenRepository.
func NewPushTokenRepository(db *gorm.DB) repository.PushTokenRepository {
	return &pushTokenRepository{
		db: db,
	}
}

// FindActiveByUser retrieves the active, non-deleted tokens of a user, oldest first.
func (repo *pushTokenRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserPushToken, error) {
	var tokenModels []*model.UserPushTokenModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at ASC").
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active push tokens")
	}

	tokens := make([]*entity.UserPushToken, 0, len(tokenModels))
	for _, tokenM := range tokenModels {
		tokens = append(tokens, &entity.UserPushToken{
			ID:        tokenM.ID,
			UserID:    tokenM.UserID,
			Token:     tokenM.Token,
			Platform:  tokenM.Platform,
			IsActive:  tokenM.IsActive,
			CreatedAt: tokenM.CreatedAt,
			UpdatedAt: tokenM.UpdatedAt,
		})
	}

	return tokens, nil
}
