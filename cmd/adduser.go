package cmd

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/BreweryDB/configs"
	"droscher.com/BreweryDB/pkg/auth"
	"droscher.com/BreweryDB/pkg/repository"
)

type AddUserCmd struct {
	ConfigFile string `default:".BreweryDB.toml" help:"Path to config file" short:"c"`
	Name       string `help:"Display name"       required:""`
	Email      string `help:"Login email"        required:""`
	Password   string `env:"BREWERYDB_PASSWORD"  help:"Login password"      required:""`
}

func (a *AddUserCmd) Run(ctx *Context) error {
	logger := maintenanceLogger(ctx)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(a.ConfigFile, logger)
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

	hash, err := auth.HashPassword(a.Password)
	if err != nil {
		return err
	}

	user, err := repo.AddUser(context.Background(), a.Name, a.Email, hash)
	if err != nil {
		logger.Error("error adding user", zap.String("email", a.Email), zap.Error(err))

		return err
	}

	logger.Info("user added", zap.Uint("user_id", user.ID), zap.String("email", user.Email))

	return nil
}
