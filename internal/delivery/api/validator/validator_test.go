package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	ShipID string  `json:"shipId" validate:"required,uuid"`
	Lat    float64 `json:"lat" validate:"min=-90,max=90"`
	Mode   string  `json:"mode" validate:"omitempty,oneof=start stop"`
}

func TestValidate_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{ShipID: "0190a1b2-0000-7000-8000-000000000001", Lat: 10, Mode: "start"})

	assert.NoError(t, err)
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Lat: 91, Mode: "pause"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "shipId is required")
	assert.Contains(t, err.Error(), "lat must be at most 90")
	assert.Contains(t, err.Error(), "mode must be one of [start stop]")
}
