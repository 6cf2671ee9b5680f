package search

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/rueidis"
	"go.uber.org/zap"

	"droscher.com/BreweryDB/pkg/model"
)

const (
	keyPrefix         = "brewery:"
	AutocompleteLimit = 15
)

type Suggestion struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Result holds one page of ranked brewery identifiers and the total number of matches.
type Result struct {
	Total int
	IDs   []uint
}

type BreweryIndex interface {
	Autocomplete(ctx context.Context, query string) ([]Suggestion, error)
	IndexBrewery(ctx context.Context, brewery *model.Brewery) error
	RemoveBrewery(ctx context.Context, breweryID uint) error
	Search(ctx context.Context, query string, offset, limit int) (*Result, error)
}

type Index struct {
	client rueidis.Client
	name   string
	logger *zap.Logger
}

func NewIndex(client rueidis.Client, name string, logger *zap.Logger) *Index {
	return &Index{client: client, name: name, logger: logger}
}

func (i *Index) Close() {
	i.client.Close()
}

// EnsureIndex creates the index unless it already exists.
func (i *Index) EnsureIndex(ctx context.Context) error {
	cmd := i.client.B().Arbitrary("FT.CREATE").Args(
		i.name, "ON", "HASH", "PREFIX", "1", keyPrefix,
		"SCHEMA",
		"name", "TEXT", "WEIGHT", "2",
		"city", "TEXT",
		"state", "TEXT",
		"county_province", "TEXT",
		"country", "TEXT",
		"tags", "TAG", "SEPARATOR", ",",
	).Build()

	if err := i.client.Do(ctx, cmd).Error(); err != nil {
		if isRedisErr(err, "index already exists") {
			i.logger.Debug("search index already exists", zap.String("index", i.name))

			return nil
		}

		return &Error{Op: opCreateIndex, Err: err}
	}

	i.logger.Info("created search index", zap.String("index", i.name))

	return nil
}

func (i *Index) Autocomplete(ctx context.Context, query string) ([]Suggestion, error) {
	queryString := autocompleteQuery(query)
	if len(queryString) == 0 {
		return []Suggestion{}, nil
	}

	cmd := i.client.B().Arbitrary("FT.SEARCH").Args(
		i.name, queryString,
		"RETURN", "1", "name",
		"LIMIT", "0", strconv.Itoa(AutocompleteLimit),
		"DIALECT", "2",
	).Build()

	raw, err := i.client.Do(ctx, cmd).ToArray()
	if err != nil {
		return nil, &Error{Op: opSearch, Err: err}
	}

	return parseSuggestions(raw)
}

func (i *Index) Search(ctx context.Context, query string, offset, limit int) (*Result, error) {
	queryString := searchQuery(query)
	if len(queryString) == 0 {
		return &Result{IDs: []uint{}}, nil
	}

	cmd := i.client.B().Arbitrary("FT.SEARCH").Args(
		i.name, queryString,
		"NOCONTENT",
		"LIMIT", strconv.Itoa(offset), strconv.Itoa(limit),
		"DIALECT", "2",
	).Build()

	raw, err := i.client.Do(ctx, cmd).ToArray()
	if err != nil {
		return nil, &Error{Op: opSearch, Err: err}
	}

	return parseIDs(raw)
}

func (i *Index) IndexBrewery(ctx context.Context, brewery *model.Brewery) error {
	if err := i.client.Do(ctx, i.hset(brewery)).Error(); err != nil {
		return &Error{Op: opHSet, Err: fmt.Errorf("brewery %d: %w", brewery.ID, err)}
	}

	return nil
}

// IndexBreweries writes all breweries in a single round trip.
func (i *Index) IndexBreweries(ctx context.Context, breweries []*model.Brewery) error {
	if len(breweries) == 0 {
		return nil
	}

	cmds := make([]rueidis.Completed, len(breweries))
	for idx, brewery := range breweries {
		cmds[idx] = i.hset(brewery)
	}

	for idx, result := range i.client.DoMulti(ctx, cmds...) {
		if err := result.Error(); err != nil {
			return &Error{Op: opHSet, Err: fmt.Errorf("brewery %d: %w", breweries[idx].ID, err)}
		}
	}

	return nil
}

func (i *Index) RemoveBrewery(ctx context.Context, breweryID uint) error {
	cmd := i.client.B().Del().Key(key(breweryID)).Build()
	if err := i.client.Do(ctx, cmd).Error(); err != nil {
		return &Error{Op: opDel, Err: err}
	}

	return nil
}

func (i *Index) hset(brewery *model.Brewery) rueidis.Completed {
	county := ""
	if brewery.CountyProvince != nil {
		county = *brewery.CountyProvince
	}

	return i.client.B().Hset().Key(key(brewery.ID)).FieldValue().
		FieldValue("name", brewery.Name).
		FieldValue("city", brewery.City).
		FieldValue("state", brewery.State).
		FieldValue("county_province", county).
		FieldValue("country", brewery.Country).
		FieldValue("tags", strings.Join(brewery.TagNames(), ",")).
		Build()
}

func key(breweryID uint) string {
	return keyPrefix + strconv.FormatUint(uint64(breweryID), 10)
}

func idFromKey(key string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimPrefix(key, keyPrefix), 10, 0)
	if err != nil {
		return 0, fmt.Errorf("unexpected document key %q: %w", key, err)
	}

	return uint(id), nil
}

// parseSuggestions reads [total, key1, [field, value, ...], key2, ...].
func parseSuggestions(raw []rueidis.RedisMessage) ([]Suggestion, error) {
	suggestions := make([]Suggestion, 0)

	if len(raw) == 0 {
		return suggestions, nil
	}

	for idx := 1; idx+1 < len(raw); idx += 2 {
		documentKey, err := raw[idx].ToString()
		if err != nil {
			return nil, fmt.Errorf("parse document key: %w", err)
		}

		breweryID, err := idFromKey(documentKey)
		if err != nil {
			return nil, err
		}

		fields, err := raw[idx+1].ToArray()
		if err != nil {
			return nil, fmt.Errorf("parse document fields: %w", err)
		}

		suggestion := Suggestion{ID: breweryID}

		for f := 0; f+1 < len(fields); f += 2 {
			name, _ := fields[f].ToString()
			if name == "name" {
				suggestion.Name, _ = fields[f+1].ToString()
			}
		}

		suggestions = append(suggestions, suggestion)
	}

	return suggestions, nil
}

// parseIDs reads a NOCONTENT reply: [total, key1, key2, ...].
func parseIDs(raw []rueidis.RedisMessage) (*Result, error) {
	result := &Result{IDs: []uint{}}

	if len(raw) == 0 {
		return result, nil
	}

	total, err := raw[0].AsInt64()
	if err != nil {
		return nil, fmt.Errorf("parse total: %w", err)
	}

	result.Total = int(total)

	for _, message := range raw[1:] {
		documentKey, err := message.ToString()
		if err != nil {
			return nil, fmt.Errorf("parse document key: %w", err)
		}

		breweryID, err := idFromKey(documentKey)
		if err != nil {
			return nil, err
		}

		result.IDs = append(result.IDs, breweryID)
	}

	return result, nil
}
