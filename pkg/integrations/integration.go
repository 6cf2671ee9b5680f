package integrations

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"droscher.com/BreweryDB/configs"
	"droscher.com/BreweryDB/pkg/integrations/nominatim"
	"droscher.com/BreweryDB/pkg/model"
)

var ErrGeocoderDisabled = errors.New("geocoder disabled")

type Geocoder interface {
	Geocode(ctx context.Context, address string) (*model.Coordinates, error)
}

type disabledGeocoder struct{}

func (disabledGeocoder) Geocode(_ context.Context, _ string) (*model.Coordinates, error) {
	return nil, ErrGeocoderDisabled
}

func GetGeocoder(conf configs.Geocoder, logger *zap.Logger) Geocoder {
	if conf.Disabled {
		logger.Info("geocoding disabled")

		return disabledGeocoder{}
	}

	return nominatim.NewNominatimIntegration(conf, logger)
}
