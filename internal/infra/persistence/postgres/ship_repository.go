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

// shipRepository implements the repository.ShipRepository interface.
type shipRepository struct {
	db *gorm.DB
}

// NewShipRepository is the constructor for shipRepository.
func NewShipRepository(db *gorm.DB) repository.ShipRepository {
	return &shipRepository{
		db: db,
	}
}

// FindByID retrieves a single ship by its unique ID.
func (repo *shipRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Ship, error) {
	var shipM model.ShipModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&shipM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShipNotFound
		}

		return nil, errors.Wrap(err, "failed to find ship by ID")
	}

	return toShipDomain(&shipM), nil
}

// FindTracked returns every tracking-enabled ship that is not deregistered.
func (repo *shipRepository) FindTracked(ctx context.Context) ([]*entity.Ship, error) {
	var shipModels []*model.ShipModel

	if err := repo.db.WithContext(ctx).
		Where("tracking_enabled = ? AND status <> ?", true, string(entity.ShipStatusInactive)).
		Order("code ASC").
		Find(&shipModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find tracked ships")
	}

	ships := make([]*entity.Ship, 0, len(shipModels))
	for _, shipM := range shipModels {
		ships = append(ships, toShipDomain(shipM))
	}

	return ships, nil
}

// UpdateStatus changes the status of a ship.
func (repo *shipRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ShipStatus) error {
	return repo.updateColumn(ctx, id, "status", string(status))
}

// UpdateLastNotification points the ship at its most recent notification.
func (repo *shipRepository) UpdateLastNotification(ctx context.Context, id, notificationID uuid.UUID) error {
	return repo.updateColumn(ctx, id, "last_ship_notification_id", notificationID)
}

func (repo *shipRepository) updateColumn(ctx context.Context, id uuid.UUID, column string, value any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShipModel{}).
		Where("id = ?", id).
		Update(column, value)

	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to update ship %s", column)
	}

	if result.RowsAffected == 0 {
		return repository.ErrShipNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toShipDomain converts a GORM ShipModel to a domain Ship entity.
func toShipDomain(data *model.ShipModel) *entity.Ship {
	if data == nil {
		return nil
	}

	return &entity.Ship{
		ID:                     data.ID,
		Code:                   data.Code,
		Name:                   data.Name,
		OwnerUserID:            data.OwnerUserID,
		Status:                 entity.ShipStatus(data.Status),
		LastShipNotificationID: data.LastShipNotificationID,
		TrackingEnabled:        data.TrackingEnabled,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
}
