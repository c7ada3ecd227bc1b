package restapi

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astonmobility/transitmap/internal/gtfs"
	"github.com/astonmobility/transitmap/internal/models"
)

func TestNetworkHandlerBuildsRegionNetwork(t *testing.T) {
	api := createTestApiWithFeed(t)

	rec := serveGet(t, api, "/api/network")
	require.Equal(t, http.StatusOK, rec.Code)

	var net models.Network
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &net))

	require.Len(t, net.Stops, 1)
	assert.Equal(t, "ASTU", net.Stops[0].ID)

	require.Len(t, net.Routes, 1)
	route := net.Routes[0]
	assert.Equal(t, "R1", route.ID)
	assert.Equal(t, []string{"SIXW", "ASTU", "KINH"}, route.StopIDs)
	assert.Len(t, route.Shape, 3)

	assert.Equal(t, "tfwm-gtfs", net.Meta.Source)
	assert.Equal(t, 900, net.Meta.BufferMeters)
	assert.Equal(t, 1, net.Meta.StopsReturned)
	assert.Nil(t, net.Meta.Filter)
}

func TestNetworkHandlerHonorsBufferMeters(t *testing.T) {
	api := createTestApiWithFeed(t)

	// 25 km pulls in all three stops.
	rec := serveGet(t, api, "/api/network?bufferMeters=25000")
	require.Equal(t, http.StatusOK, rec.Code)

	var net models.Network
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &net))
	assert.Len(t, net.Stops, 3)
	assert.Equal(t, 25000, net.Meta.BufferMeters)
}

func TestNetworkHandlerAppliesBBoxFilter(t *testing.T) {
	api := createTestApiWithFeed(t)

	rec := serveGet(t, api, "/api/network?minLat=52.4&minLng=-2.0&maxLat=52.6&maxLng=-1.8&minStopsInArea=1")
	require.Equal(t, http.StatusOK, rec.Code)

	var net models.Network
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &net))

	require.Len(t, net.Stops, 1)
	assert.Equal(t, "ASTU", net.Stops[0].ID)
	require.Len(t, net.Routes, 1)

	require.NotNil(t, net.Meta.Filter)
	assert.Equal(t, "bbox", net.Meta.Filter.Type)
	assert.Equal(t, 1, net.Meta.Filter.MinStopsInArea)
	assert.True(t, net.Meta.Filter.ClipShapes)
}

func TestNetworkHandlerBBoxThresholdDropsRoute(t *testing.T) {
	api := createTestApiWithFeed(t)

	// Only one stop survives the build, so the default threshold of 3 kills
	// the route.
	rec := serveGet(t, api, "/api/network?minLat=52.4&minLng=-2.0&maxLat=52.6&maxLng=-1.8")
	require.Equal(t, http.StatusOK, rec.Code)

	var net models.Network
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &net))
	assert.Empty(t, net.Routes)
	assert.NotNil(t, net.Meta.Filter)
}

func TestNetworkHandlerIgnoresPartialBBox(t *testing.T) {
	api := createTestApiWithFeed(t)

	rec := serveGet(t, api, "/api/network?minLat=52.4")
	require.Equal(t, http.StatusOK, rec.Code)

	var net models.Network
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &net))
	assert.Nil(t, net.Meta.Filter)
}

func TestNetworkHandlerRejectsInvalidParams(t *testing.T) {
	api := createTestApiWithFeed(t)

	rec := serveGet(t, api, "/api/network?bufferMeters=abc")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.FieldErrors, "bufferMeters")
}

func TestNetworkHandlerRejectsInvertedBBox(t *testing.T) {
	api := createTestApiWithFeed(t)

	rec := serveGet(t, api, "/api/network?minLat=52.6&minLng=-2.0&maxLat=52.4&maxLng=-1.8")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNetworkHandlerMissingFeedIsBadRequest(t *testing.T) {
	api := createTestApi(t, gtfs.Config{
		CachePath: filepath.Join(t.TempDir(), "absent.zip"),
	})

	rec := serveGet(t, api, "/api/network")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Error, "not found")
}
