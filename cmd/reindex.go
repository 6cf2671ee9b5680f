package cmd

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/BreweryDB/configs"
	"droscher.com/BreweryDB/pkg/maintenance"
	"droscher.com/BreweryDB/pkg/repository"
	"droscher.com/BreweryDB/pkg/search"
)

type ReindexCmd struct {
	ConfigFile string `default:".BreweryDB.toml" help:"Path to config file"            short:"c"`
	BatchSize  int    `default:"500"             help:"Number of breweries per batch"`
}

func (r *ReindexCmd) Run(ctx *Context) error {
	logger := maintenanceLogger(ctx)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(r.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	searchClient, err := search.Connect(conf)
	if err != nil {
		logger.Error("error connecting to search index", zap.Error(err))

		return err
	}

	index := search.NewIndex(searchClient, conf.Search.Index, logger)
	defer index.Close()

	background := context.Background()

	if err := index.EnsureIndex(background); err != nil {
		logger.Error("error creating search index", zap.Error(err))

		return err
	}

	indexed, err := maintenance.Reindex(background, repo, index, r.BatchSize, logger)
	if err != nil {
		logger.Error("error rebuilding search index", zap.Error(err))

		return err
	}

	logger.Info("search index rebuilt", zap.String("index", conf.Search.Index), zap.Int("breweries", indexed))

	return nil
}
