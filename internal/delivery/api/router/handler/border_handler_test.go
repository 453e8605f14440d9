package handler

import (
	"context"
	"net/http"
	"testing"

	"vesselwatch/internal/domain/entity"
	domainerrors "vesselwatch/internal/domain/errors"
	usecasemocks "vesselwatch/internal/mocks/usecase"
	"vesselwatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBorderHandler(t *testing.T) (*BorderHandler, *usecasemocks.MockBorderUsecase) {
	borderUC := usecasemocks.NewMockBorderUsecase(t)

	return NewBorderHandler(BorderHandlerParams{BorderUC: borderUC, Logger: discardLogger()}), borderUC
}

func TestCreatePoint(t *testing.T) {
	h, borderUC := newBorderHandler(t)

	borderUC.EXPECT().CreatePoint(mock.Anything, mock.MatchedBy(func(p *entity.BorderPoint) bool {
		return p.BoundaryCode == "EEZ-NORTH" && p.Sequence == 0 && p.Latitude == 0 && p.Longitude == 120.5
	})).RunAndReturn(func(_ context.Context, p *entity.BorderPoint) (*entity.BorderPoint, error) {
		p.ID = uuid.New()

		return p, nil
	})

	c, rec := newTestContext(http.MethodPost, "/api/v1/admin/border-points",
		`{"boundary_code":"EEZ-NORTH","sequence":0,"latitude":0,"longitude":120.5}`)

	require.NoError(t, h.CreatePoint(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreatePoint_Validation(t *testing.T) {
	h, _ := newBorderHandler(t)

	c, rec := newTestContext(http.MethodPost, "/api/v1/admin/border-points",
		`{"boundary_code":"EEZ-NORTH","latitude":10,"longitude":200}`)

	require.NoError(t, h.CreatePoint(c))
	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
}

func TestUpdatePoint_UsesPathID(t *testing.T) {
	h, borderUC := newBorderHandler(t)
	id := uuid.New()

	borderUC.EXPECT().UpdatePoint(mock.Anything, mock.MatchedBy(func(p *entity.BorderPoint) bool {
		return p.ID == id && p.Sequence == 3
	})).Return(&entity.BorderPoint{ID: id, Sequence: 3}, nil)

	c, rec := newTestContext(http.MethodPut, "/",
		`{"boundary_code":"EEZ-NORTH","sequence":3,"latitude":10,"longitude":120}`)

	require.NoError(t, h.UpdatePoint(withParam(c, "id", id.String())))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeletePoint(t *testing.T) {
	h, borderUC := newBorderHandler(t)
	id := uuid.New()

	borderUC.EXPECT().DeletePoint(mock.Anything, id).Return(nil)

	c, rec := newTestContext(http.MethodDelete, "/", "")
	require.NoError(t, h.DeletePoint(withParam(c, "id", id.String())))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestGetPoint_NotFound(t *testing.T) {
	h, borderUC := newBorderHandler(t)
	id := uuid.New()

	borderUC.EXPECT().GetPoint(mock.Anything, id).Return(nil, domainerrors.ErrBorderPointNotFound)

	c, rec := newTestContext(http.MethodGet, "/", "")
	require.NoError(t, h.GetPoint(withParam(c, "id", id.String())))
	requireErrorCode(t, rec, http.StatusNotFound, "BORDER_POINT_NOT_FOUND")
}

func TestListPoints_FiltersByCode(t *testing.T) {
	h, borderUC := newBorderHandler(t)

	borderUC.EXPECT().ListPoints(mock.Anything, "EEZ-NORTH").Return([]*entity.BorderPoint{{BoundaryCode: "EEZ-NORTH"}}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/v1/admin/border-points?boundary_code=EEZ-NORTH", "")
	require.NoError(t, h.ListPoints(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestImport(t *testing.T) {
	h, borderUC := newBorderHandler(t)

	borderUC.EXPECT().Import(mock.Anything, "gs://boundaries/eez.geojson", "EEZ").
		Return(&usecase.ImportResult{Boundaries: []string{"EEZ-1", "EEZ-2"}, Points: 42}, nil)

	c, rec := newTestContext(http.MethodPost, "/api/v1/admin/border-points/import",
		`{"url":"gs://boundaries/eez.geojson","default_code":"EEZ"}`)

	require.NoError(t, h.Import(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"points":42`)
}

func TestImport_FailureCarriesDetails(t *testing.T) {
	h, borderUC := newBorderHandler(t)

	borderUC.EXPECT().Import(mock.Anything, "ftp://x/y", "").
		Return(nil, domainerrors.ErrBorderImportFailed.WithDetails("scheme ftp is not allowed"))

	c, rec := newTestContext(http.MethodPost, "/api/v1/admin/border-points/import", `{"url":"ftp://x/y"}`)

	require.NoError(t, h.Import(c))
	requireErrorCode(t, rec, http.StatusBadRequest, "BORDER_IMPORT_FAILED")
	assert.Equal(t, "scheme ftp is not allowed", decodeEnvelope(t, rec).Error.Details)
}
