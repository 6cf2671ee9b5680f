package search

import (
	"context"
	"testing"

	"github.com/redis/rueidis"
	"github.com/redis/rueidis/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.openly.dev/pointy"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"droscher.com/BreweryDB/pkg/model"
)

func newTestIndex(t *testing.T) (*Index, *mock.Client) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)

	return NewIndex(client, "idx:breweries", zaptest.NewLogger(t)), client
}

func TestEnsureIndex_Creates(t *testing.T) {
	index, client := newTestIndex(t)

	client.EXPECT().
		Do(gomock.Any(), mock.Match(
			"FT.CREATE", "idx:breweries", "ON", "HASH", "PREFIX", "1", "brewery:",
			"SCHEMA",
			"name", "TEXT", "WEIGHT", "2",
			"city", "TEXT",
			"state", "TEXT",
			"county_province", "TEXT",
			"country", "TEXT",
			"tags", "TAG", "SEPARATOR", ",",
		)).
		Return(mock.Result(mock.RedisString("OK")))

	require.NoError(t, index.EnsureIndex(context.Background()))
}

func TestEnsureIndex_AlreadyExists(t *testing.T) {
	index, client := newTestIndex(t)

	client.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool { return cmd[0] == "FT.CREATE" })).
		Return(mock.Result(mock.RedisError("Index already exists")))

	require.NoError(t, index.EnsureIndex(context.Background()))
}

func TestEnsureIndex_Error(t *testing.T) {
	index, client := newTestIndex(t)

	client.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool { return cmd[0] == "FT.CREATE" })).
		Return(mock.ErrorResult(context.DeadlineExceeded))

	err := index.EnsureIndex(context.Background())

	var searchErr *Error
	require.ErrorAs(t, err, &searchErr)
	assert.Equal(t, "FT.CREATE", searchErr.Op)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAutocomplete_ReturnsSuggestions(t *testing.T) {
	index, client := newTestIndex(t)

	client.EXPECT().
		Do(gomock.Any(), mock.Match(
			"FT.SEARCH", "idx:breweries", "@name|city|state:((san*|%%san%%) (die*|%%die%%))",
			"RETURN", "1", "name",
			"LIMIT", "0", "15",
			"DIALECT", "2",
		)).
		Return(mock.Result(mock.RedisArray(
			mock.RedisInt64(2),
			mock.RedisString("brewery:12"),
			mock.RedisArray(mock.RedisString("name"), mock.RedisString("Modern Times")),
			mock.RedisString("brewery:7"),
			mock.RedisArray(mock.RedisString("name"), mock.RedisString("Stone Brewing")),
		)))

	suggestions, err := index.Autocomplete(context.Background(), "  San DIE ")

	require.NoError(t, err)
	assert.Equal(t, []Suggestion{{ID: 12, Name: "Modern Times"}, {ID: 7, Name: "Stone Brewing"}}, suggestions)
}

func TestAutocomplete_EmptyQuerySkipsRedis(t *testing.T) {
	index, _ := newTestIndex(t)

	suggestions, err := index.Autocomplete(context.Background(), "   ")

	require.NoError(t, err)
	assert.Empty(t, suggestions)
	assert.NotNil(t, suggestions)
}

func TestAutocomplete_NoMatches(t *testing.T) {
	index, client := newTestIndex(t)

	client.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		Return(mock.Result(mock.RedisArray(mock.RedisInt64(0))))

	suggestions, err := index.Autocomplete(context.Background(), "zzz")

	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestAutocomplete_Error(t *testing.T) {
	index, client := newTestIndex(t)

	client.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		Return(mock.ErrorResult(context.DeadlineExceeded))

	suggestions, err := index.Autocomplete(context.Background(), "stone")

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, suggestions)
}

func TestSearch_ReturnsRankedIDs(t *testing.T) {
	index, client := newTestIndex(t)

	client.EXPECT().
		Do(gomock.Any(), mock.Match(
			"FT.SEARCH", "idx:breweries", "(almanac|almanac*|%almanac%)",
			"NOCONTENT",
			"LIMIT", "20", "10",
			"DIALECT", "2",
		)).
		Return(mock.Result(mock.RedisArray(
			mock.RedisInt64(23),
			mock.RedisString("brewery:3"),
			mock.RedisString("brewery:1"),
		)))

	result, err := index.Search(context.Background(), "Almanac", 20, 10)

	require.NoError(t, err)
	assert.Equal(t, 23, result.Total)
	assert.Equal(t, []uint{3, 1}, result.IDs)
}

func TestSearch_EmptyQuerySkipsRedis(t *testing.T) {
	index, _ := newTestIndex(t)

	result, err := index.Search(context.Background(), "", 0, 20)

	require.NoError(t, err)
	assert.Zero(t, result.Total)
	assert.Empty(t, result.IDs)
}

func TestSearch_UnexpectedKey(t *testing.T) {
	index, client := newTestIndex(t)

	client.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		Return(mock.Result(mock.RedisArray(mock.RedisInt64(1), mock.RedisString("beer:1"))))

	result, err := index.Search(context.Background(), "stone", 0, 20)

	require.Error(t, err)
	assert.Nil(t, result)
}

func TestIndexBrewery_WritesHash(t *testing.T) {
	index, client := newTestIndex(t)

	brewery := &model.Brewery{
		Name:           "Brasserie Dunham",
		City:           "Dunham",
		State:          "Quebec",
		Country:        "Canada",
		CountyProvince: pointy.String("Brome-Missisquoi"),
		Tags:           []model.Tag{{Tag: "patio"}, {Tag: "dog-friendly"}},
	}
	brewery.ID = 42

	client.EXPECT().
		Do(gomock.Any(), mock.Match(
			"HSET", "brewery:42",
			"name", "Brasserie Dunham",
			"city", "Dunham",
			"state", "Quebec",
			"county_province", "Brome-Missisquoi",
			"country", "Canada",
			"tags", "dog-friendly,patio",
		)).
		Return(mock.Result(mock.RedisInt64(6)))

	require.NoError(t, index.IndexBrewery(context.Background(), brewery))
}

func TestIndexBrewery_Error(t *testing.T) {
	index, client := newTestIndex(t)

	client.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool { return cmd[0] == "HSET" })).
		Return(mock.ErrorResult(context.DeadlineExceeded))

	err := index.IndexBrewery(context.Background(), &model.Brewery{Name: "x"})

	var searchErr *Error
	require.ErrorAs(t, err, &searchErr)
	assert.Equal(t, "HSET", searchErr.Op)
}

func TestIndexBreweries_SingleRoundTrip(t *testing.T) {
	index, client := newTestIndex(t)

	client.EXPECT().
		DoMulti(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]rueidis.RedisResult{
			mock.Result(mock.RedisInt64(6)),
			mock.Result(mock.RedisInt64(6)),
		})

	breweries := []*model.Brewery{{Name: "a"}, {Name: "b"}}

	require.NoError(t, index.IndexBreweries(context.Background(), breweries))
}

func TestIndexBreweries_ReportsFailedBrewery(t *testing.T) {
	index, client := newTestIndex(t)

	client.EXPECT().
		DoMulti(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]rueidis.RedisResult{
			mock.Result(mock.RedisInt64(6)),
			mock.ErrorResult(context.DeadlineExceeded),
		})

	second := &model.Brewery{Name: "b"}
	second.ID = 9

	err := index.IndexBreweries(context.Background(), []*model.Brewery{{Name: "a"}, second})

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.ErrorContains(t, err, "brewery 9")
}

func TestIndexBreweries_Empty(t *testing.T) {
	index, _ := newTestIndex(t)

	require.NoError(t, index.IndexBreweries(context.Background(), nil))
}

func TestRemoveBrewery(t *testing.T) {
	index, client := newTestIndex(t)

	client.EXPECT().
		Do(gomock.Any(), mock.Match("DEL", "brewery:5")).
		Return(mock.Result(mock.RedisInt64(1)))

	require.NoError(t, index.RemoveBrewery(context.Background(), 5))
}
