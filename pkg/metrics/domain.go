package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	SearchAutocomplete = "autocomplete"
	SearchFullText     = "search"

	GeocodeFound    = "found"
	GeocodeNoResult = "no_result"
	GeocodeFailed   = "failed"
)

var (
	searchQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "brewerydb",
			Name:      "search_queries_total",
			Help:      "Search index queries by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	geocodeRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "brewerydb",
			Name:      "geocode_requests_total",
			Help:      "Geocoding lookups by result",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(searchQueriesTotal)
	prometheus.MustRegister(geocodeRequestsTotal)
}

func ObserveSearch(kind string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}

	searchQueriesTotal.WithLabelValues(kind, outcome).Inc()
}

func ObserveGeocode(result string) {
	geocodeRequestsTotal.WithLabelValues(result).Inc()
}
