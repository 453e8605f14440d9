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

const borderPointInsertBatchSize = 500

// borderPointRepository implements the repository.BorderPointRepository interface.
type borderPointRepository struct {
	db *gorm.DB
}

// NewBorderPointRepository is the constructor for borderPointRepository.
func NewBorderPointRepository(db *gorm.DB) repository.BorderPointRepository {
	return &borderPointRepository{
		db: db,
	}
}

// Create persists a new border point.
func (repo *borderPointRepository) Create(ctx context.Context, point *entity.BorderPoint) error {
	pointM := fromBorderPointDomain(point)

	if err := repo.db.WithContext(ctx).Create(pointM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WithDetails("a point with this boundary code and sequence already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create border point")
	}

	point.ID = pointM.ID
	point.CreatedAt = pointM.CreatedAt
	point.UpdatedAt = pointM.UpdatedAt

	return nil
}

// Update overwrites the editable fields of a border point.
func (repo *borderPointRepository) Update(ctx context.Context, point *entity.BorderPoint) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BorderPointModel{}).
		Where("id = ?", point.ID).
		Updates(map[string]any{
			"boundary_code": point.BoundaryCode,
			"sequence":      point.Sequence,
			"latitude":      point.Latitude,
			"longitude":     point.Longitude,
			"closed":        point.Closed,
			"note":          point.Note,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WithDetails("a point with this boundary code and sequence already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update border point")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBorderPointNotFound
	}

	return nil
}

// Delete removes a border point.
func (repo *borderPointRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BorderPointModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete border point")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBorderPointNotFound
	}

	return nil
}

// FindByID retrieves a border point by its unique ID.
func (repo *borderPointRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BorderPoint, error) {
	var pointM model.BorderPointModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&pointM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBorderPointNotFound
		}

		return nil, errors.Wrap(err, "failed to find border point by ID")
	}

	return toBorderPointDomain(&pointM), nil
}

// List returns points ordered by boundary code then sequence.
func (repo *borderPointRepository) List(ctx context.Context, boundaryCode string) ([]*entity.BorderPoint, error) {
	var pointModels []*model.BorderPointModel

	query := repo.db.WithContext(ctx)
	if boundaryCode != "" {
		query = query.Where("boundary_code = ?", boundaryCode)
	}

	if err := query.
		Order("boundary_code ASC").
		Order("sequence ASC").
		Find(&pointModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list border points")
	}

	points := make([]*entity.BorderPoint, 0, len(pointModels))
	for _, pointM := range pointModels {
		points = append(points, toBorderPointDomain(pointM))
	}

	return points, nil
}

// ReplaceBoundary deletes every point of a boundary and inserts the given set.
// Callers run it inside a transaction so readers never see a half-written boundary.
func (repo *borderPointRepository) ReplaceBoundary(ctx context.Context, boundaryCode string, points []*entity.BorderPoint) error {
	if err := repo.db.WithContext(ctx).
		Where("boundary_code = ?", boundaryCode).
		Delete(&model.BorderPointModel{}).Error; err != nil {
		return errors.Wrapf(err, "failed to clear boundary %s", boundaryCode)
	}

	if len(points) == 0 {
		return nil
	}

	pointModels := make([]*model.BorderPointModel, 0, len(points))
	for _, point := range points {
		pointM := fromBorderPointDomain(point)
		pointM.BoundaryCode = boundaryCode
		pointModels = append(pointModels, pointM)
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(pointModels, borderPointInsertBatchSize).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrBorderImportFailed.WithDetails("duplicate sequence in boundary " + boundaryCode)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert boundary points")
	}

	for i, pointM := range pointModels {
		points[i].ID = pointM.ID
		points[i].BoundaryCode = pointM.BoundaryCode
		points[i].CreatedAt = pointM.CreatedAt
		points[i].UpdatedAt = pointM.UpdatedAt
	}

	return nil
}

// --- Mapper Functions ---

func toBorderPointDomain(data *model.BorderPointModel) *entity.BorderPoint {
	if data == nil {
		return nil
	}

	return &entity.BorderPoint{
		ID:           data.ID,
		BoundaryCode: data.BoundaryCode,
		Sequence:     data.Sequence,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		Closed:       data.Closed,
		Note:         data.Note,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromBorderPointDomain(data *entity.BorderPoint) *model.BorderPointModel {
	if data == nil {
		return nil
	}

	return &model.BorderPointModel{
		ID:           data.ID,
		BoundaryCode: data.BoundaryCode,
		Sequence:     data.Sequence,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		Closed:       data.Closed,
		Note:         data.Note,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
