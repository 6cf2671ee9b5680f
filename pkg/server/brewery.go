package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"droscher.com/BreweryDB/configs"
	"droscher.com/BreweryDB/pkg/filter"
	"droscher.com/BreweryDB/pkg/integrations"
	"droscher.com/BreweryDB/pkg/integrations/nominatim"
	"droscher.com/BreweryDB/pkg/metrics"
	"droscher.com/BreweryDB/pkg/model"
	"droscher.com/BreweryDB/pkg/repository"
	"droscher.com/BreweryDB/pkg/search"
	"droscher.com/BreweryDB/pkg/server/api"
	"droscher.com/BreweryDB/pkg/sorting"
)

type BreweryServer struct {
	repository repository.BreweryRepository
	index      search.BreweryIndex
	geocoder   integrations.Geocoder
	filters    *filter.Builder
	sorter     *sorting.Parser
	config     configs.Server
	logger     *zap.Logger
}

func NewBreweryServer(repo repository.BreweryRepository, index search.BreweryIndex, geocoder integrations.Geocoder, config *configs.Config, logger *zap.Logger) (*BreweryServer, error) {
	attributes, err := repository.BreweryAttributes()
	if err != nil {
		return nil, fmt.Errorf("failed to read brewery attributes: %w", err)
	}

	return &BreweryServer{
		repository: repo,
		index:      index,
		geocoder:   geocoder,
		filters:    filter.NewBuilder(config.Filter.DistanceRadiusKm),
		sorter:     sorting.NewParser(attributes),
		config:     config.Server,
		logger:     logger,
	}, nil
}

func (b *BreweryServer) ListBreweries(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	predicates, err := b.filters.Build(params)
	if err != nil {
		handleError(w, err, b.logger)

		return
	}

	ordering := b.sorter.Parse(params.Get("sort"))

	breweries, err := b.repository.ListBreweries(r.Context(), predicates, ordering, parsePage(params, b.config))
	if err != nil {
		handleError(w, err, b.logger)

		return
	}

	writeJSON(w, http.StatusOK, api.BreweriesFromModel(breweries))
}

func (b *BreweryServer) GetBrewery(w http.ResponseWriter, r *http.Request) {
	breweryID, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, err, b.logger)

		return
	}

	brewery, err := b.repository.GetBreweryByID(r.Context(), breweryID)
	if err != nil {
		handleError(w, err, b.logger)

		return
	}

	writeJSON(w, http.StatusOK, api.BreweryFromModel(brewery))
}

func (b *BreweryServer) Autocomplete(w http.ResponseWriter, r *http.Request) {
	suggestions, err := b.index.Autocomplete(r.Context(), r.URL.Query().Get("query"))
	metrics.ObserveSearch(metrics.SearchAutocomplete, err)

	if err != nil {
		handleError(w, err, b.logger)

		return
	}

	writeJSON(w, http.StatusOK, suggestions)
}

func (b *BreweryServer) SearchBreweries(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	page := parsePage(params, b.config)

	result, err := b.index.Search(r.Context(), params.Get("query"), page.Offset(), page.Size)
	metrics.ObserveSearch(metrics.SearchFullText, err)

	if err != nil {
		handleError(w, err, b.logger)

		return
	}

	breweries, err := b.repository.GetBreweriesByIDs(r.Context(), result.IDs)
	if err != nil {
		handleError(w, err, b.logger)

		return
	}

	w.Header().Set("X-Total-Count", strconv.Itoa(result.Total))
	writeJSON(w, http.StatusOK, api.BreweriesFromModel(breweries))
}

func (b *BreweryServer) CreateBrewery(w http.ResponseWriter, r *http.Request) {
	var request api.BreweryRequest

	if err := decodeBody(r, &request); err != nil {
		handleError(w, err, b.logger)

		return
	}

	brewery := model.Brewery{}
	request.ApplyTo(&brewery)

	if err := brewery.Validate(); err != nil {
		handleError(w, fmt.Errorf("%w: %w", repository.ErrValidationFailed, err), b.logger)

		return
	}

	b.geocode(r.Context(), &brewery)

	created, err := b.repository.AddBrewery(r.Context(), brewery)
	if err != nil {
		handleError(w, err, b.logger)

		return
	}

	b.reindex(r.Context(), created)

	writeJSON(w, http.StatusCreated, api.BreweryFromModel(created))
}

func (b *BreweryServer) UpdateBrewery(w http.ResponseWriter, r *http.Request) {
	breweryID, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, err, b.logger)

		return
	}

	var request api.BreweryRequest

	if err := decodeBody(r, &request); err != nil {
		handleError(w, err, b.logger)

		return
	}

	brewery, err := b.repository.GetBreweryByID(r.Context(), breweryID)
	if err != nil {
		handleError(w, err, b.logger)

		return
	}

	// a changed address or an earlier failed lookup triggers geocoding
	previousAddress := brewery.Address()
	request.ApplyTo(brewery)

	if err := brewery.Validate(); err != nil {
		handleError(w, fmt.Errorf("%w: %w", repository.ErrValidationFailed, err), b.logger)

		return
	}

	if brewery.Address() != previousAddress || !brewery.HasCoordinates() {
		b.geocode(r.Context(), brewery)
	}

	updated, err := b.repository.UpdateBrewery(r.Context(), brewery)
	if err != nil {
		handleError(w, err, b.logger)

		return
	}

	b.reindex(r.Context(), updated)

	w.WriteHeader(http.StatusNoContent)
}

func (b *BreweryServer) DeleteBrewery(w http.ResponseWriter, r *http.Request) {
	breweryID, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, err, b.logger)

		return
	}

	if err := b.repository.DeleteBrewery(r.Context(), breweryID); err != nil {
		handleError(w, err, b.logger)

		return
	}

	if err := b.index.RemoveBrewery(r.Context(), breweryID); err != nil {
		b.logger.Warn("failed to remove brewery from search index", zap.Uint("brewery_id", breweryID), zap.Error(err))
	}

	w.WriteHeader(http.StatusNoContent)
}

// geocode refreshes the coordinates of brewery. A failed lookup clears them and never fails the write.
func (b *BreweryServer) geocode(ctx context.Context, brewery *model.Brewery) {
	coordinates, err := b.geocoder.Geocode(ctx, brewery.Address())

	switch {
	case err == nil:
		metrics.ObserveGeocode(metrics.GeocodeFound)
	case errors.Is(err, nominatim.ErrNoResult):
		metrics.ObserveGeocode(metrics.GeocodeNoResult)
		b.logger.Info("no geocoding result", zap.String("address", brewery.Address()))
	case errors.Is(err, integrations.ErrGeocoderDisabled):
	default:
		metrics.ObserveGeocode(metrics.GeocodeFailed)
		b.logger.Warn("geocoding failed", zap.String("address", brewery.Address()), zap.Error(err))
	}

	brewery.SetCoordinates(coordinates)
}

func (b *BreweryServer) reindex(ctx context.Context, brewery *model.Brewery) {
	if err := b.index.IndexBrewery(ctx, brewery); err != nil {
		b.logger.Warn("failed to index brewery", zap.Uint("brewery_id", brewery.ID), zap.Error(err))
	}
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRequestBody, strings.TrimPrefix(err.Error(), "json: "))
	}

	return nil
}
