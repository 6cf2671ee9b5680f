package nominatim

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gocolly/colly/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/BreweryDB/configs"
	"droscher.com/BreweryDB/pkg/model"
)

const IntegrationName = "nominatim"

var ErrNoResult = errors.New("no geocoding result")

type place struct {
	Latitude  string `json:"lat"`
	Longitude string `json:"lon"`
}

type NominatimIntegration struct {
	baseURL   string
	collector *colly.Collector
	logger    *zap.Logger
}

// NewNominatimIntegration creates a geocoder whose requests share one rate limit, as the public
// Nominatim usage policy allows a single request per second.
func NewNominatimIntegration(conf configs.Geocoder, logger *zap.Logger) *NominatimIntegration {
	collector := colly.NewCollector(
		colly.UserAgent(conf.UserAgent),
		colly.AllowURLRevisit(),
	)

	if err := collector.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 1, Delay: conf.RequestDelay}); err != nil {
		logger.Warn("failed to set geocoder rate limit", zap.Error(err))
	}

	return &NominatimIntegration{
		baseURL:   strings.TrimSuffix(conf.BaseURL, "/"),
		collector: collector,
		logger:    logger,
	}
}

func (n *NominatimIntegration) Geocode(ctx context.Context, address string) (*model.Coordinates, error) {
	if len(strings.TrimSpace(address)) == 0 {
		return nil, ErrNoResult
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		errs   error
		places []place
	)

	collector := n.collector.Clone()

	collector.OnResponse(func(response *colly.Response) {
		multierr.AppendInto(&errs, json.Unmarshal(response.Body, &places))
	})

	query := url.Values{
		"q":      {address},
		"format": {"jsonv2"},
		"limit":  {"1"},
	}

	multierr.AppendInto(&errs, collector.Visit(n.baseURL+"/search?"+query.Encode()))

	if errs != nil {
		n.logger.Warn("geocoding request failed", zap.String("address", address), zap.Error(errs))

		return nil, errs
	}

	if len(places) == 0 {
		return nil, ErrNoResult
	}

	return parsePlace(places[0])
}

func parsePlace(result place) (*model.Coordinates, error) {
	latitude, latErr := strconv.ParseFloat(result.Latitude, 64)
	longitude, lngErr := strconv.ParseFloat(result.Longitude, 64)

	if err := multierr.Combine(latErr, lngErr); err != nil {
		return nil, fmt.Errorf("invalid coordinates in geocoding result: %w", err)
	}

	return &model.Coordinates{Latitude: latitude, Longitude: longitude}, nil
}
