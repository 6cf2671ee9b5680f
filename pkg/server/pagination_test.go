package server

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"droscher.com/BreweryDB/configs"
	"droscher.com/BreweryDB/pkg/repository"
)

func TestParsePage(t *testing.T) {
	conf := configs.Server{DefaultPageSize: 20, MaxPageSize: 50}

	tests := []struct {
		name  string
		query string
		want  repository.Page
	}{
		{name: "defaults", query: "", want: repository.Page{Number: 1, Size: 20}},
		{name: "explicit", query: "page=3&per_page=5", want: repository.Page{Number: 3, Size: 5}},
		{name: "capped", query: "per_page=51", want: repository.Page{Number: 1, Size: 50}},
		{name: "malformed", query: "page=x&per_page=y", want: repository.Page{Number: 1, Size: 20}},
		{name: "non positive", query: "page=0&per_page=0", want: repository.Page{Number: 1, Size: 20}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			params, err := url.ParseQuery(test.query)
			assert.NoError(t, err)

			assert.Equal(t, test.want, parsePage(params, conf))
		})
	}
}

func TestParsePage_HugePageKeepsOffsetPositive(t *testing.T) {
	conf := configs.Server{DefaultPageSize: 20, MaxPageSize: 50}

	for _, value := range []string{"9223372036854775807", "99999999999999999999999"} {
		params := url.Values{"page": {value}, "per_page": {"50"}}

		page := parsePage(params, conf)

		assert.Equal(t, math.MaxInt/50, page.Number, value)
		assert.Positive(t, page.Offset(), value)
	}
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	assert.NoError(t, err)
	assert.Equal(t, uint(42), id)

	for _, value := range []string{"", "0", "-1", "abc", "1.5"} {
		_, err := parseID(value)
		assert.ErrorIs(t, err, repository.ErrBreweryNotFound, value)
	}
}
