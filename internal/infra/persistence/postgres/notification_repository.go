package postgres

import (
	"context"
	"time"

	"vesselwatch/internal/domain/entity"
	domainerrors "vesselwatch/internal/domain/errors"
	"vesselwatch/internal/domain/repository"
	"vesselwatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const attemptInsertBatchSize = 100

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create persists a new notification.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrNotificationExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotificationCreationFailed.WrapMessage("invalid ship or notification type reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrNotificationCreationFailed.WrapMessage("missing required notification information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt
	notification.UpdatedAt = notificationM.UpdatedAt

	return nil
}

// FindByID retrieves a notification by its unique ID.
func (repo *notificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// List returns a page of notifications, newest first, plus the unpaginated total.
func (repo *notificationRepository) List(ctx context.Context, filter *entity.NotificationFilter) ([]*entity.Notification, int64, error) {
	// listings tolerate replica lag
	query := repo.db.WithContext(ctx).Clauses(dbresolver.Read).Model(&model.NotificationModel{})

	if filter != nil {
		if filter.ShipID != nil {
			query = query.Where("ship_id = ?", *filter.ShipID)
		}
		if len(filter.Statuses) > 0 {
			statuses := make([]string, 0, len(filter.Statuses))
			for _, status := range filter.Statuses {
				statuses = append(statuses, string(status))
			}
			query = query.Where("status IN ?", statuses)
		}
		if filter.BoundaryCrossed != nil {
			query = query.Where("boundary_crossed = ?", *filter.BoundaryCrossed)
		}
		if filter.BoundaryNearWarning != nil {
			query = query.Where("boundary_near_warning = ?", *filter.BoundaryNearWarning)
		}
		if filter.From != nil {
			query = query.Where("created_at >= ?", *filter.From)
		}
		if filter.To != nil {
			query = query.Where("created_at < ?", *filter.To)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count notifications")
	}

	query = query.Order("created_at DESC").Order("id DESC")
	if filter != nil && filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter != nil && filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var notificationModels []*model.NotificationModel
	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list notifications")
	}

	return toNotificationDomains(notificationModels), total, nil
}

// FindDue returns the notifications a sweep may claim at now.
func (repo *notificationRepository) FindDue(ctx context.Context, now time.Time, limit int) ([]*entity.Notification, error) {
	query := repo.db.WithContext(ctx).
		Where("active = ? AND resolved_at IS NULL", true).
		Where(repo.db.
			Where("status = ?", string(entity.NotificationStatusQueued)).
			Or("status = ? AND next_retry IS NOT NULL AND retry_number <= max_retry", string(entity.NotificationStatusFailed))).
		Where("next_retry IS NULL OR next_retry <= ?", now).
		Order("priority DESC").
		Order("COALESCE(next_retry, created_at) ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	var notificationModels []*model.NotificationModel
	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find due notifications")
	}

	return toNotificationDomains(notificationModels), nil
}

// Claim moves a notification to SENDING only while it still has the expected status
// and has not been resolved or deactivated.
func (repo *notificationRepository) Claim(ctx context.Context, id uuid.UUID, expected entity.NotificationStatus, claimToken string, claimedAt time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND status = ?", id, string(expected)).
		Where("active = ? AND resolved_at IS NULL", true).
		Updates(map[string]any{
			"status":      string(entity.NotificationStatusSending),
			"claim_token": claimToken,
			"claimed_at":  claimedAt,
			"updated_at":  claimedAt,
		})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to claim notification")
	}

	return result.RowsAffected == 1, nil
}

// Transition applies a status change guarded by the expected status and claim token.
func (repo *notificationRepository) Transition(ctx context.Context, transition *repository.StatusTransition) (bool, error) {
	updates := map[string]any{
		"status":       string(transition.To),
		"reason":       nil,
		"retry_number": transition.RetryNumber,
		"next_retry":   transition.NextRetry,
		"claim_token":  "",
		"claimed_at":   nil,
		"updated_at":   transition.At,
	}
	if transition.Reason != nil {
		updates["reason"] = string(*transition.Reason)
	}
	if transition.From == entity.NotificationStatusSending {
		updates["last_attempt_at"] = transition.At
	}
	switch transition.To {
	case entity.NotificationStatusSent:
		updates["sent_at"] = transition.At
	case entity.NotificationStatusDelivered:
		updates["sent_at"] = transition.At
		updates["delivered_at"] = transition.At
	}

	query := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND status = ?", transition.ID, string(transition.From))
	if transition.From == entity.NotificationStatusSending {
		query = query.Where("claim_token = ?", transition.ClaimToken)
	}

	result := query.Updates(updates)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to transition notification")
	}

	return result.RowsAffected == 1, nil
}

// FindEarlierOpen returns the earliest open sibling of target within the window.
func (repo *notificationRepository) FindEarlierOpen(ctx context.Context, target *entity.Notification, since time.Time) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	err := repo.db.WithContext(ctx).
		Where("ship_id = ? AND boundary_status_code = ? AND id <> ?", target.ShipID, target.BoundaryStatusCode, target.ID).
		Where("created_at >= ?", since).
		Where("created_at < ? OR (created_at = ? AND id < ?)", target.CreatedAt, target.CreatedAt, target.ID).
		Where("active = ? AND resolved_at IS NULL", true).
		Where("status <> ?", string(entity.NotificationStatusDuplicate)).
		Where("status <> ? OR next_retry IS NOT NULL", string(entity.NotificationStatusFailed)).
		Order("created_at ASC").
		Order("id ASC").
		First(&notificationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find earlier open notification")
	}

	return toNotificationDomain(&notificationM), nil
}

// RecoverOrphans returns stale SENDING claims to QUEUED without touching retry_number.
func (repo *notificationRepository) RecoverOrphans(ctx context.Context, claimedBefore time.Time, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("status = ? AND claimed_at < ?", string(entity.NotificationStatusSending), claimedBefore).
		Updates(map[string]any{
			"status":      string(entity.NotificationStatusQueued),
			"claim_token": "",
			"claimed_at":  nil,
			"updated_at":  now,
		})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to recover orphaned claims")
	}

	return result.RowsAffected, nil
}

// LinkNext sets the forward link of origin if it is still unset.
func (repo *notificationRepository) LinkNext(ctx context.Context, originID, nextID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND next_notification_id IS NULL", originID).
		UpdateColumn("next_notification_id", nextID)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to link follow-up notification")
	}

	return result.RowsAffected == 1, nil
}

// Resolve deactivates a notification that has not been resolved yet.
func (repo *notificationRepository) Resolve(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND resolved_at IS NULL", id).
		Updates(map[string]any{
			"active":      false,
			"resolved_at": at,
			"updated_at":  at,
		})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to resolve notification")
	}

	return result.RowsAffected == 1, nil
}

// MarkViewed records the operator acknowledgement without touching delivery fields.
func (repo *notificationRepository) MarkViewed(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"is_viewed": true,
			"viewed_at": at,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification viewed")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// CreateAttempts persists the per-token audit rows of one attempt in batches.
func (repo *notificationRepository) CreateAttempts(ctx context.Context, attempts []*entity.NotificationAttempt) error {
	if len(attempts) == 0 {
		return nil
	}

	attemptModels := make([]*model.NotificationAttemptModel, 0, len(attempts))
	for _, attempt := range attempts {
		attemptModels = append(attemptModels, fromAttemptDomain(attempt))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(attemptModels, attemptInsertBatchSize).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotificationNotFound.WrapMessage("attempt references an unknown notification")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification attempts")
	}

	for i, attemptM := range attemptModels {
		attempts[i].ID = attemptM.ID
		attempts[i].CreatedAt = attemptM.CreatedAt
	}

	return nil
}

// FindAttempts lists the audit rows of a notification, oldest first.
func (repo *notificationRepository) FindAttempts(ctx context.Context, notificationID uuid.UUID) ([]*entity.NotificationAttempt, error) {
	var attemptModels []*model.NotificationAttemptModel

	if err := repo.db.WithContext(ctx).
		Where("notification_id = ?", notificationID).
		Order("attempt_number ASC").
		Order("created_at ASC").
		Find(&attemptModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notification attempts")
	}

	attempts := make([]*entity.NotificationAttempt, 0, len(attemptModels))
	for _, attemptM := range attemptModels {
		attempts = append(attempts, toAttemptDomain(attemptM))
	}

	return attempts, nil
}

// --- Mapper Functions ---

func toNotificationDomains(notificationModels []*model.NotificationModel) []*entity.Notification {
	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications
}

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	var reason *entity.FailureReason
	if data.Reason != nil {
		r := entity.FailureReason(*data.Reason)
		reason = &r
	}

	return &entity.Notification{
		ID:                     data.ID,
		ShipID:                 data.ShipID,
		NotificationTypeID:     data.NotificationTypeID,
		Status:                 entity.NotificationStatus(data.Status),
		Reason:                 reason,
		RetryNumber:            data.RetryNumber,
		MaxRetry:               data.MaxRetry,
		NextRetry:              data.NextRetry,
		BoundaryCrossed:        data.BoundaryCrossed,
		BoundaryNearWarning:    data.BoundaryNearWarning,
		BoundaryStatusCode:     data.BoundaryStatusCode,
		Active:                 data.Active,
		RepeatDaily:            data.RepeatDaily,
		RepeatUntilResolved:    data.RepeatUntilResolved,
		ResolvedAt:             data.ResolvedAt,
		PreviousNotificationID: data.PreviousNotificationID,
		NextNotificationID:     data.NextNotificationID,
		NextNotificationTypeID: data.NextNotificationTypeID,
		Priority:               data.Priority,
		IsViewed:               data.IsViewed,
		ViewedAt:               data.ViewedAt,
		Title:                  data.Title,
		FormattedMessage:       data.FormattedMessage,
		Latitude:               data.Latitude,
		Longitude:              data.Longitude,
		DistanceMeters:         data.DistanceMeters,
		ClaimToken:             data.ClaimToken,
		ClaimedAt:              data.ClaimedAt,
		LastAttemptAt:          data.LastAttemptAt,
		SentAt:                 data.SentAt,
		DeliveredAt:            data.DeliveredAt,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	var reason *string
	if data.Reason != nil {
		r := string(*data.Reason)
		reason = &r
	}

	return &model.NotificationModel{
		ID:                     data.ID,
		ShipID:                 data.ShipID,
		NotificationTypeID:     data.NotificationTypeID,
		Status:                 string(data.Status),
		Reason:                 reason,
		RetryNumber:            data.RetryNumber,
		MaxRetry:               data.MaxRetry,
		NextRetry:              data.NextRetry,
		BoundaryCrossed:        data.BoundaryCrossed,
		BoundaryNearWarning:    data.BoundaryNearWarning,
		BoundaryStatusCode:     data.BoundaryStatusCode,
		Active:                 data.Active,
		RepeatDaily:            data.RepeatDaily,
		RepeatUntilResolved:    data.RepeatUntilResolved,
		ResolvedAt:             data.ResolvedAt,
		PreviousNotificationID: data.PreviousNotificationID,
		NextNotificationID:     data.NextNotificationID,
		NextNotificationTypeID: data.NextNotificationTypeID,
		Priority:               data.Priority,
		IsViewed:               data.IsViewed,
		ViewedAt:               data.ViewedAt,
		Title:                  data.Title,
		FormattedMessage:       data.FormattedMessage,
		Latitude:               data.Latitude,
		Longitude:              data.Longitude,
		DistanceMeters:         data.DistanceMeters,
		ClaimToken:             data.ClaimToken,
		ClaimedAt:              data.ClaimedAt,
		LastAttemptAt:          data.LastAttemptAt,
		SentAt:                 data.SentAt,
		DeliveredAt:            data.DeliveredAt,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
}

func toAttemptDomain(data *model.NotificationAttemptModel) *entity.NotificationAttempt {
	return &entity.NotificationAttempt{
		ID:             data.ID,
		NotificationID: data.NotificationID,
		AttemptNumber:  data.AttemptNumber,
		Token:          data.Token,
		Outcome:        data.Outcome,
		Error:          data.ErrorMessage,
		CreatedAt:      data.CreatedAt,
	}
}

func fromAttemptDomain(data *entity.NotificationAttempt) *model.NotificationAttemptModel {
	return &model.NotificationAttemptModel{
		ID:             data.ID,
		NotificationID: data.NotificationID,
		AttemptNumber:  data.AttemptNumber,
		Token:          data.Token,
		Outcome:        data.Outcome,
		ErrorMessage:   data.Error,
		CreatedAt:      data.CreatedAt,
	}
}
