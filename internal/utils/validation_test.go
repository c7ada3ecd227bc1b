package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloatParam(t *testing.T) {
	params := url.Values{}
	params.Set("minLat", "52.4")
	params.Set("maxLat", "not-a-number")

	v, ok, fieldErrors := ParseFloatParam(params, "minLat", nil)
	assert.True(t, ok)
	assert.Equal(t, 52.4, v)
	assert.Empty(t, fieldErrors)

	_, ok, fieldErrors = ParseFloatParam(params, "maxLat", fieldErrors)
	assert.False(t, ok)
	assert.Contains(t, fieldErrors, "maxLat")

	_, ok, _ = ParseFloatParam(params, "absent", nil)
	assert.False(t, ok)
}

func TestParseIntParamDefault(t *testing.T) {
	params := url.Values{}
	params.Set("minStopsInArea", "5")

	n, fieldErrors := ParseIntParam(params, "minStopsInArea", 3, nil)
	assert.Equal(t, 5, n)
	assert.Empty(t, fieldErrors)

	n, _ = ParseIntParam(params, "absent", 3, nil)
	assert.Equal(t, 3, n)

	params.Set("bad", "x")
	_, fieldErrors = ParseIntParam(params, "bad", 3, nil)
	assert.Contains(t, fieldErrors, "bad")
}

func TestValidateBBoxParams(t *testing.T) {
	errs := ValidateBBoxParams(52.4, -2.0, 52.6, -1.8)
	assert.Empty(t, errs)

	errs = ValidateBBoxParams(99.0, -2.0, 52.6, -1.8)
	require.Contains(t, errs, "minLat")

	errs = ValidateBBoxParams(52.6, -2.0, 52.4, -1.8)
	require.Contains(t, errs, "minLat")
	assert.Contains(t, errs["minLat"][0], "must not exceed")
}

func TestValidateBufferMeters(t *testing.T) {
	assert.NoError(t, ValidateBufferMeters(900))
	assert.Error(t, ValidateBufferMeters(0))
	assert.Error(t, ValidateBufferMeters(-5))
	assert.Error(t, ValidateBufferMeters(60000))
}
