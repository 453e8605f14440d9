package impl

import (
	"context"
	"testing"

	"vesselwatch/internal/domain/entity"
	domainerrors "vesselwatch/internal/domain/errors"
	"vesselwatch/internal/domain/repository"
	mockRepo "vesselwatch/internal/mocks/repository"
	mockSvc "vesselwatch/internal/mocks/service"
	"vesselwatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type borderFixture struct {
	service    usecase.BorderUsecase
	txManager  *mockRepo.MockTransactionManager
	factory    *mockRepo.MockRepositoryFactory
	borderRepo *mockRepo.MockBorderPointRepository
	loader     *mockSvc.MockBoundaryLoader
}

func createTestBorderService(t *testing.T) *borderFixture {
	fx := &borderFixture{
		txManager:  mockRepo.NewMockTransactionManager(t),
		factory:    mockRepo.NewMockRepositoryFactory(t),
		borderRepo: mockRepo.NewMockBorderPointRepository(t),
		loader:     mockSvc.NewMockBoundaryLoader(t),
	}
	fx.service = NewBorderService(newDiscardLogger(), newTestConfig(), fx.txManager, fx.borderRepo, fx.loader)

	return fx
}

func TestBorderService_CreatePoint(t *testing.T) {
	fx := createTestBorderService(t)
	ctx := context.Background()
	point := &entity.BorderPoint{BoundaryCode: "EEZ", Sequence: 1, Latitude: 25, Longitude: 121}

	fx.borderRepo.EXPECT().Create(ctx, point).Return(nil)

	created, err := fx.service.CreatePoint(ctx, point)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestBorderService_UpdatePoint_NotFound(t *testing.T) {
	fx := createTestBorderService(t)
	ctx := context.Background()
	point := &entity.BorderPoint{ID: uuid.New()}

	fx.borderRepo.EXPECT().FindByID(ctx, point.ID).Return(nil, repository.ErrBorderPointNotFound)

	_, err := fx.service.UpdatePoint(ctx, point)

	assert.ErrorIs(t, err, domainerrors.ErrBorderPointNotFound)
}

func TestBorderService_DeletePoint_NotFound(t *testing.T) {
	fx := createTestBorderService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.borderRepo.EXPECT().Delete(ctx, id).Return(repository.ErrBorderPointNotFound)

	assert.ErrorIs(t, fx.service.DeletePoint(ctx, id), domainerrors.ErrBorderPointNotFound)
}

func TestBorderService_Import(t *testing.T) {
	fx := createTestBorderService(t)
	ctx := context.Background()
	url := "mem://boundaries/eez.geojson"

	fx.loader.EXPECT().Load(ctx, url, "EEZ").Return([]*entity.BorderPoint{
		{BoundaryCode: "EEZ-SOUTH", Sequence: 1, Latitude: 21, Longitude: 119},
		{BoundaryCode: "EEZ-SOUTH", Sequence: 2, Latitude: 21, Longitude: 120},
		{BoundaryCode: "EEZ-NORTH", Sequence: 1, Latitude: 26, Longitude: 121},
		{BoundaryCode: "EEZ-NORTH", Sequence: 2, Latitude: 26, Longitude: 122},
	}, nil)
	fx.txManager.EXPECT().Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
	fx.factory.EXPECT().NewBorderPointRepository().Return(fx.borderRepo)
	fx.borderRepo.EXPECT().ReplaceBoundary(ctx, "EEZ-NORTH", mock.MatchedBy(func(p []*entity.BorderPoint) bool {
		return len(p) == 2 && p[0].ID != uuid.Nil
	})).Return(nil)
	fx.borderRepo.EXPECT().ReplaceBoundary(ctx, "EEZ-SOUTH", mock.Anything).Return(nil)

	result, err := fx.service.Import(ctx, url, "EEZ")

	require.NoError(t, err)
	assert.Equal(t, []string{"EEZ-NORTH", "EEZ-SOUTH"}, result.Boundaries)
	assert.Equal(t, 4, result.Points)
}

func TestBorderService_Import_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("scheme not allowed", func(t *testing.T) {
		fx := createTestBorderService(t)

		_, err := fx.service.Import(ctx, "https://example.com/eez.geojson", "EEZ")

		assert.ErrorIs(t, err, domainerrors.ErrBorderImportFailed)
	})

	t.Run("missing scheme", func(t *testing.T) {
		fx := createTestBorderService(t)

		_, err := fx.service.Import(ctx, "eez.geojson", "EEZ")

		assert.ErrorIs(t, err, domainerrors.ErrBorderImportFailed)
	})

	t.Run("loader failure", func(t *testing.T) {
		fx := createTestBorderService(t)
		fx.loader.EXPECT().Load(ctx, "file:///data/eez.geojson", "EEZ").Return(nil, errors.New("not geojson"))

		_, err := fx.service.Import(ctx, "file:///data/eez.geojson", "EEZ")

		assert.ErrorIs(t, err, domainerrors.ErrBorderImportFailed)
	})

	t.Run("empty file", func(t *testing.T) {
		fx := createTestBorderService(t)
		fx.loader.EXPECT().Load(ctx, "mem://empty", "EEZ").Return(nil, nil)

		_, err := fx.service.Import(ctx, "mem://empty", "EEZ")

		assert.ErrorIs(t, err, domainerrors.ErrBorderImportFailed)
	})
}
