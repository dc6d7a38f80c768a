package services_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"asimos_admin/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocodeSearch_Params(t *testing.T) {
	svc, fb := newServices(t)
	fb.GeocodeResults = []map[string]any{
		{"place_id": 101, "display_name": "Nizami küçəsi, Bakı", "lat": "40.3777", "lon": "49.892", "address": map[string]any{"city": "Bakı", "state": "Abşeron"}},
		{"place_id": 102, "display_name": "Şəki", "lat": "41.19", "lon": "47.17", "address": map[string]any{"town": "Şəki"}},
		{"place_id": 103, "display_name": "Qəbələ rayonu", "lat": "40.98", "lon": "47.85", "address": map[string]any{}},
	}

	results, err := svc.GeocodeService.Search(context.Background(), "  Nizami ")
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "101", results[0].PlaceID.String())
	assert.Equal(t, 40.3777, results[0].Lat.Value)
	assert.Equal(t, 49.892, results[0].Lng.Value)
	assert.Equal(t, "Bakı", results[0].Area)
	assert.Equal(t, "Şəki", results[1].Area)
	assert.Equal(t, "Azərbaycan", results[2].Area)

	q := fb.LastRequest(t, http.MethodGet, "/search").Query
	assert.Equal(t, "Nizami", q.Get("q"))
	assert.Equal(t, "json", q.Get("format"))
	assert.Equal(t, "1", q.Get("addressdetails"))
	assert.Equal(t, "6", q.Get("limit"))
	assert.Equal(t, "az", q.Get("countrycodes"))
	assert.Equal(t, "44.0,38.0,51.0,42.0", q.Get("viewbox"))
	assert.Equal(t, "1", q.Get("bounded"))
}

func TestGeocodeSearch_EmptyQuerySkipsRequest(t *testing.T) {
	svc, fb := newServices(t)

	results, err := svc.GeocodeService.Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
	assert.Empty(t, fb.RequestsTo(http.MethodGet, "/search"))
}

func TestGeocodeSearch_ErrorStatusGivesEmptyList(t *testing.T) {
	svc, fb := newServices(t)
	fb.GeocodeStatus = http.StatusServiceUnavailable

	results, err := svc.GeocodeService.Search(context.Background(), "Bakı")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestGeocodeSearch_NetworkError(t *testing.T) {
	geo := services.NewGeocodeService("http://127.0.0.1:1/search", "test", time.Second)

	results, err := geo.Search(context.Background(), "Bakı")
	require.Error(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}
