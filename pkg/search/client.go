// Package search keeps a RediSearch index of breweries and answers the autocomplete and full text
// search endpoints from it.
package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/redis/rueidis"

	"droscher.com/BreweryDB/configs"
)

var ErrNoAddresses = errors.New("no search addresses configured")

// Error wraps a failed Redis command with the command name.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

const (
	opCreateIndex = "FT.CREATE"
	opSearch      = "FT.SEARCH"
	opHSet        = "HSET"
	opDel         = "DEL"
)

func Connect(conf *configs.Config) (rueidis.Client, error) {
	if len(conf.Search.Addresses) == 0 {
		return nil, ErrNoAddresses
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  conf.Search.Addresses,
		Username:     conf.Search.Username,
		Password:     conf.Search.Password,
		DisableCache: true,
		AlwaysRESP2:  true, // FT.SEARCH replies are parsed as flat RESP2 arrays
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create search client: %w", err)
	}

	return client, nil
}

func isRedisErr(err error, substr string) bool {
	redisErr, ok := rueidis.IsRedisErr(err)
	if !ok {
		return false
	}

	return strings.Contains(strings.ToLower(redisErr.Error()), strings.ToLower(substr))
}
