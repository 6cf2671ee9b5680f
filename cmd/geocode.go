package cmd

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"droscher.com/BreweryDB/configs"
	"droscher.com/BreweryDB/pkg/integrations"
	"droscher.com/BreweryDB/pkg/maintenance"
	"droscher.com/BreweryDB/pkg/repository"
)

type GeocodeCmd struct {
	ConfigFile string `default:".BreweryDB.toml" help:"Path to config file"            short:"c"`
	BatchSize  int    `default:"100"             help:"Number of breweries per batch"`
}

func (g *GeocodeCmd) Run(ctx *Context) error {
	logger := maintenanceLogger(ctx)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(g.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	if conf.Geocoder.Disabled {
		return errors.New("the geocoder is disabled in the config")
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	geocoder := integrations.GetGeocoder(conf.Geocoder, logger)

	stats, err := maintenance.BackfillCoordinates(context.Background(), repo, geocoder, g.BatchSize, logger)

	logger.Info("coordinates back-filled",
		zap.Int("geocoded", stats.Geocoded), zap.Int("no_result", stats.NoResult), zap.Int("failed", stats.Failed))

	if err != nil {
		logger.Error("error geocoding breweries", zap.Error(err))

		return err
	}

	return nil
}
