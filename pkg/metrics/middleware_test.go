package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_RecordsRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware())
	r.Get("/breweries/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/breweries/{id}", "200"))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/breweries/42", http.NoBody))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.InDelta(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/breweries/{id}", "200")), 0.001)
	assert.Positive(t, testutil.CollectAndCount(httpRequestDuration))
}

func TestMiddleware_RecordsStatusCodes(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware())
	r.Get("/missing", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/implicit", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", http.NoBody))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/implicit", http.NoBody))

	assert.GreaterOrEqual(t, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/missing", "404")), 1.0)
	assert.GreaterOrEqual(t, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/implicit", "200")), 1.0)
}

func TestMiddleware_OutsideRouter(t *testing.T) {
	handler := Middleware()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/anything", http.NoBody))

	assert.GreaterOrEqual(t, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "unknown", "418")), 1.0)
}

func TestObserveSearch(t *testing.T) {
	before := testutil.ToFloat64(searchQueriesTotal.WithLabelValues(SearchAutocomplete, "error"))

	ObserveSearch(SearchAutocomplete, errors.New("boom"))
	ObserveSearch(SearchFullText, nil)

	assert.InDelta(t, before+1, testutil.ToFloat64(searchQueriesTotal.WithLabelValues(SearchAutocomplete, "error")), 0.001)
	assert.GreaterOrEqual(t, testutil.ToFloat64(searchQueriesTotal.WithLabelValues(SearchFullText, "ok")), 1.0)
}

func TestObserveGeocode(t *testing.T) {
	before := testutil.ToFloat64(geocodeRequestsTotal.WithLabelValues(GeocodeNoResult))

	ObserveGeocode(GeocodeNoResult)

	assert.InDelta(t, before+1, testutil.ToFloat64(geocodeRequestsTotal.WithLabelValues(GeocodeNoResult)), 0.001)
}
