package cmd

import (
	"go.uber.org/zap"

	"droscher.com/BreweryDB/configs"
	"droscher.com/BreweryDB/pkg/model"
	"droscher.com/BreweryDB/pkg/repository"
)

type MigrateCmd struct {
	ConfigFile string `default:".BreweryDB.toml" help:"Path to config file" short:"c"`
}

func (m *MigrateCmd) Run(ctx *Context) error {
	logger := maintenanceLogger(ctx)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(m.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Fatal("error connecting to database")
	}
	defer repo.Close()

	err = repo.DB.AutoMigrate(&model.Tag{}, &model.Brewery{}, &model.User{})
	if err != nil {
		return err
	}

	return nil
}

func maintenanceLogger(ctx *Context) *zap.Logger {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	if ctx != nil && !ctx.Debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	logger, _ := logConfig.Build()

	return logger
}
