package postgres

import (
	"context"

	"vesselwatch/internal/domain/entity"
	domainerrors "vesselwatch/internal/domain/errors"
	"vesselwatch/internal/domain/repository"
	"vesselwatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationTypeRepository implements the repository.NotificationTypeRepository interface.
type notificationTypeRepository struct {
	db *gorm.DB
}

// NewNotificationTypeRepository is the constructor for notificationTypeRepository.
func NewNotificationTypeRepository(db *gorm.DB) repository.NotificationTypeRepository {
	return &notificationTypeRepository{
		db: db,
	}
}

// Create persists a new notification type.
func (repo *notificationTypeRepository) Create(ctx context.Context, notificationType *entity.NotificationType) error {
	typeM := fromNotificationTypeDomain(notificationType)

	if err := repo.db.WithContext(ctx).Create(typeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateNotificationType
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification type")
	}

	notificationType.ID = typeM.ID
	notificationType.CreatedAt = typeM.CreatedAt
	notificationType.UpdatedAt = typeM.UpdatedAt

	return nil
}

// Update overwrites every editable field of a notification type.
func (repo *notificationTypeRepository) Update(ctx context.Context, notificationType *entity.NotificationType) error {
	typeM := fromNotificationTypeDomain(notificationType)

	result := repo.db.WithContext(ctx).
		Model(&model.NotificationTypeModel{}).
		Where("id = ?", notificationType.ID).
		Select("code", "name", "form", "icon", "color", "priority", "next_action",
			"next_notification_type_id", "title_template", "body_template", "max_retry",
			"repeat_until_resolved", "repeat_daily", "updated_at").
		Updates(typeM)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateNotificationType
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update notification type")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationTypeNotFound
	}

	notificationType.UpdatedAt = typeM.UpdatedAt

	return nil
}

// Delete removes a notification type.
func (repo *notificationTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.NotificationTypeModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WithDetails("notification type is still referenced")
		}

		return errors.Wrap(result.Error, "failed to delete notification type")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationTypeNotFound
	}

	return nil
}

// FindByID retrieves a notification type by its unique ID.
func (repo *notificationTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.NotificationType, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByCode retrieves a notification type by its code.
func (repo *notificationTypeRepository) FindByCode(ctx context.Context, code string) (*entity.NotificationType, error) {
	return repo.findOne(ctx, "code = ?", code)
}

func (repo *notificationTypeRepository) findOne(ctx context.Context, condition string, value any) (*entity.NotificationType, error) {
	var typeM model.NotificationTypeModel

	if err := repo.db.WithContext(ctx).
		Where(condition, value).
		First(&typeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationTypeNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification type")
	}

	return toNotificationTypeDomain(&typeM), nil
}

// List returns every notification type ordered by code.
func (repo *notificationTypeRepository) List(ctx context.Context) ([]*entity.NotificationType, error) {
	var typeModels []*model.NotificationTypeModel

	if err := repo.db.WithContext(ctx).
		Order("code ASC").
		Find(&typeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notification types")
	}

	types := make([]*entity.NotificationType, 0, len(typeModels))
	for _, typeM := range typeModels {
		types = append(types, toNotificationTypeDomain(typeM))
	}

	return types, nil
}

// --- Mapper Functions ---

func toNotificationTypeDomain(data *model.NotificationTypeModel) *entity.NotificationType {
	if data == nil {
		return nil
	}

	return &entity.NotificationType{
		ID:                     data.ID,
		Code:                   data.Code,
		Name:                   data.Name,
		Form:                   data.Form,
		Icon:                   data.Icon,
		Color:                  data.Color,
		Priority:               data.Priority,
		NextAction:             data.NextAction,
		NextNotificationTypeID: data.NextNotificationTypeID,
		TitleTemplate:          data.TitleTemplate,
		BodyTemplate:           data.BodyTemplate,
		MaxRetry:               data.MaxRetry,
		RepeatUntilResolved:    data.RepeatUntilResolved,
		RepeatDaily:            data.RepeatDaily,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
}

func fromNotificationTypeDomain(data *entity.NotificationType) *model.NotificationTypeModel {
	if data == nil {
		return nil
	}

	return &model.NotificationTypeModel{
		ID:                     data.ID,
		Code:                   data.Code,
		Name:                   data.Name,
		Form:                   data.Form,
		Icon:                   data.Icon,
		Color:                  data.Color,
		Priority:               data.Priority,
		NextAction:             data.NextAction,
		NextNotificationTypeID: data.NextNotificationTypeID,
		TitleTemplate:          data.TitleTemplate,
		BodyTemplate:           data.BodyTemplate,
		MaxRetry:               data.MaxRetry,
		RepeatUntilResolved:    data.RepeatUntilResolved,
		RepeatDaily:            data.RepeatDaily,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
}
