package cmd

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	"github.com/stretchr/testify/assert"
)

func checkHealth(t *testing.T, mux *http.ServeMux, service string) *httptest.ResponseRecorder {
	t.Helper()

	body := strings.NewReader(`{"service":"` + service + `"}`)
	request := httptest.NewRequest(http.MethodPost, "/grpc.health.v1.Health/Check", body)
	request.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, request)

	return recorder
}

func TestMountHealth_ReportsHealthService(t *testing.T) {
	mux := http.NewServeMux()
	mountHealth(mux)

	recorder := checkHealth(t, mux, grpchealth.HealthV1ServiceName)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "SERVING")
}

func TestMountHealth_UnknownServiceIsNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mountHealth(mux)

	recorder := checkHealth(t, mux, "brewerydb.v1.BreweryService")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestConfigureCORS_ExposesTotalCount(t *testing.T) {
	handler := configureCORS(http.NewServeMux(), []string{"https://example.com"})

	request := httptest.NewRequest(http.MethodGet, "/breweries", nil)
	request.Header.Set("Origin", "https://example.com")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, "https://example.com", recorder.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, strings.ToLower(recorder.Header().Get("Access-Control-Expose-Headers")), "x-total-count")
}
