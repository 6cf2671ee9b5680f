package configs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"droscher.com/BreweryDB/configs"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) TestGetConfig_GetsNamedFile() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("test.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("testuser", config.DB.User)
	suite.Equal("test123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(5, config.DB.MaxIdleConnections)
	suite.Equal(7, config.DB.MaxOpenConnections)
	suite.Equal(666, config.Server.Port)
	suite.True(config.Server.EnableWrites)
	suite.Equal(10, config.Server.DefaultPageSize)
	suite.Equal(25, config.Server.MaxPageSize)
	suite.Equal([]string{"https://openbrewerydb.local"}, config.Server.AllowedOrigins)
	suite.Equal([]string{"redis.local:6379"}, config.Search.Addresses)
	suite.Equal("redispass", config.Search.Password)
	suite.Equal("idx:test", config.Search.Index)
	suite.True(config.Geocoder.Disabled)
	suite.Equal("http://geocoder.local", config.Geocoder.BaseURL)
	suite.Equal("test-agent", config.Geocoder.UserAgent)
	suite.Equal(2*time.Second, config.Geocoder.RequestDelay)
	suite.InDelta(25.5, config.Filter.DistanceRadiusKm, 0.001)
	suite.Equal("audience", config.Auth.Audience)
	suite.Equal("secret", config.Auth.SecretKey)
	suite.Equal(2, config.Auth.TokenTTLHours)
}

func (suite *ConfigTestSuite) TestGetConfig_GetsEnv() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("BREWERYDB_DB_HOST", "test.local")
	suite.T().Setenv("BREWERYDB_DB_PORT", "1234")
	suite.T().Setenv("BREWERYDB_DB_USER", "testuser")
	suite.T().Setenv("BREWERYDB_DB_PASSWORD", "test123")
	suite.T().Setenv("BREWERYDB_DB_DATABASE", "testdb")
	suite.T().Setenv("BREWERYDB_SERVER_PORT", "666")
	suite.T().Setenv("BREWERYDB_SEARCH_INDEX", "idx:env")
	suite.T().Setenv("BREWERYDB_AUTH_SECRETKEY", "secret")

	config, err := configs.GetConfig("", logger)

	suite.Require().NoError(err)
	suite.Equal("test.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("testuser", config.DB.User)
	suite.Equal("test123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(666, config.Server.Port)
	suite.Equal("idx:env", config.Search.Index)
	suite.Equal("secret", config.Auth.SecretKey)
}

func (suite *ConfigTestSuite) TestGetConfig_AppliesDefaults() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("BREWERYDB_DB_HOST", "test.local")
	suite.T().Setenv("BREWERYDB_DB_PASSWORD", "test123")

	config, err := configs.GetConfig("", logger)

	suite.Require().NoError(err)
	suite.Equal(5432, config.DB.Port)
	suite.Equal("postgres", config.DB.User)
	suite.Equal(8080, config.Server.Port)
	suite.False(config.Server.EnableWrites)
	suite.Equal(20, config.Server.DefaultPageSize)
	suite.Equal(50, config.Server.MaxPageSize)
	suite.Equal([]string{"localhost:6379"}, config.Search.Addresses)
	suite.Equal("idx:breweries", config.Search.Index)
	suite.False(config.Geocoder.Disabled)
	suite.Equal(time.Second, config.Geocoder.RequestDelay)
	suite.InDelta(50.0, config.Filter.DistanceRadiusKm, 0.001)
	suite.Equal(24, config.Auth.TokenTTLHours)
}

func (suite *ConfigTestSuite) TestGetConfig_EnvOverridesFile() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("BREWERYDB_DB_HOST", "env.local")
	suite.T().Setenv("BREWERYDB_DB_USER", "envuser")
	suite.T().Setenv("BREWERYDB_AUTH_SECRETKEY", "envsecret")

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("env.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("envuser", config.DB.User)
	suite.Equal("test123", config.DB.Password)
	suite.Equal("envsecret", config.Auth.SecretKey)
}

func (suite *ConfigTestSuite) TestGetConfig_MissingFileReturnsError() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/missing.toml", logger)

	suite.Nil(config)
	suite.Error(err)
}

func (suite *ConfigTestSuite) TestGetConfig_MissingValues() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("", logger)

	suite.Nil(config)
	suite.EqualError(err, "DB.Host: required validation failed, DB.Password: required validation failed")
}

func (suite *ConfigTestSuite) TestGetConfig_WritesRequireSecret() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/writes-without-secret.toml", logger)

	suite.Nil(config)
	suite.ErrorIs(err, configs.ErrConfiguration)
}
