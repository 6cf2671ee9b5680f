package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

type DB struct {
	Host               string `validate:"required"`
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string `validate:"required"`
	Database           string `default:"postgres"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port            int `default:"8080"`
	EnableWrites    bool
	DefaultPageSize int      `default:"20"`
	MaxPageSize     int      `default:"50"`
	AllowedOrigins  []string `default:"[*]"`
}

type Search struct {
	Addresses []string `default:"[localhost:6379]"`
	Username  string
	Password  string
	Index     string `default:"idx:breweries"`
}

type Geocoder struct {
	Disabled     bool
	BaseURL      string        `default:"https://nominatim.openstreetmap.org"`
	UserAgent    string        `default:"BreweryDB/1.0"`
	RequestDelay time.Duration `default:"1s"`
}

type Filter struct {
	DistanceRadiusKm float64 `default:"50"`
}

type Auth struct {
	SecretKey     string
	Audience      string
	TokenTTLHours int `default:"24"`
}

type Config struct {
	DB       DB
	Server   Server
	Search   Search
	Geocoder Geocoder
	Filter   Filter
	Auth     Auth
}

const envPrefix = "BREWERYDB" // env prefix for env vars

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if config.Server.EnableWrites && len(config.Auth.SecretKey) == 0 {
		return nil, fmt.Errorf("%w: Auth.SecretKey is required when writes are enabled", ErrConfiguration)
	}

	return &config, nil
}
