package nominatim_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"droscher.com/BreweryDB/configs"
	"droscher.com/BreweryDB/pkg/integrations/nominatim"
)

func newIntegration(t *testing.T, handler http.HandlerFunc) *nominatim.NominatimIntegration {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return nominatim.NewNominatimIntegration(configs.Geocoder{
		BaseURL:   server.URL + "/",
		UserAgent: "BreweryDB-test",
	}, zaptest.NewLogger(t))
}

func TestGeocode_ReturnsFirstPlace(t *testing.T) {
	var (
		userAgent string
		query     string
		path      string
	)

	integration := newIntegration(t, func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.UserAgent()
		query = r.URL.Query().Get("q")
		path = r.URL.Path

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat":"42.9634","lon":"-85.6681","display_name":"Grand Rapids"}]`))
	})

	coordinates, err := integration.Geocode(context.Background(), "Grand Rapids, Michigan, United States")

	require.NoError(t, err)
	assert.InDelta(t, 42.9634, coordinates.Latitude, 0.00001)
	assert.InDelta(t, -85.6681, coordinates.Longitude, 0.00001)
	assert.Equal(t, "BreweryDB-test", userAgent)
	assert.Equal(t, "Grand Rapids, Michigan, United States", query)
	assert.Equal(t, "/search", path)
}

func TestGeocode_NoResult(t *testing.T) {
	integration := newIntegration(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	coordinates, err := integration.Geocode(context.Background(), "Nowhere")

	require.ErrorIs(t, err, nominatim.ErrNoResult)
	assert.Nil(t, coordinates)
}

func TestGeocode_ServerError(t *testing.T) {
	integration := newIntegration(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	coordinates, err := integration.Geocode(context.Background(), "Grand Rapids")

	require.Error(t, err)
	assert.Nil(t, coordinates)
}

func TestGeocode_InvalidCoordinates(t *testing.T) {
	integration := newIntegration(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"lat":"north","lon":"-85.6681"}]`))
	})

	coordinates, err := integration.Geocode(context.Background(), "Grand Rapids")

	require.Error(t, err)
	assert.Nil(t, coordinates)
}

func TestGeocode_EmptyAddressSkipsRequest(t *testing.T) {
	called := false

	integration := newIntegration(t, func(_ http.ResponseWriter, _ *http.Request) {
		called = true
	})

	_, err := integration.Geocode(context.Background(), "  ")

	require.ErrorIs(t, err, nominatim.ErrNoResult)
	assert.False(t, called)
}

func TestGeocode_CancelledContext(t *testing.T) {
	integration := newIntegration(t, func(_ http.ResponseWriter, _ *http.Request) {})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := integration.Geocode(ctx, "Grand Rapids")

	require.ErrorIs(t, err, context.Canceled)
}
