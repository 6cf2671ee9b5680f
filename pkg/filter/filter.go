// Package filter translates brewery list query parameters into gorm scopes.
//
// Every recognized parameter maps to a constructor in a fixed table. Values are normalized once,
// before the constructor sees them, so the constructors themselves never deal with case.
package filter

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"droscher.com/BreweryDB/pkg/model"
)

var ErrInvalidFilterValue = errors.New("invalid filter value")

const (
	DefaultRadiusKm = 50.0
	earthRadiusKm   = 6371.0
	maxLatitude     = 90.0
	maxLongitude    = 180.0
)

// Predicate restricts a brewery query. It is applied by the store and never sees rows.
type Predicate func(*gorm.DB) *gorm.DB

type Predicates []Predicate

// Scopes converts the predicates into the form accepted by gorm's Scopes.
func (p Predicates) Scopes() []func(*gorm.DB) *gorm.DB {
	scopes := make([]func(*gorm.DB) *gorm.DB, 0, len(p))
	for _, predicate := range p {
		scopes = append(scopes, predicate)
	}

	return scopes
}

type constructor func(value string) (Predicate, error)

type parameter struct {
	name      string
	normalize func(string) string
	build     constructor
}

type Builder struct {
	parameters []parameter
}

func NewBuilder(radiusKm float64) *Builder {
	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}

	return &Builder{
		parameters: []parameter{
			{name: "by_city", normalize: lower, build: contains("city")},
			{name: "by_name", normalize: lower, build: contains("name")},
			{name: "by_postal_code", normalize: strings.TrimSpace, build: hasPrefix("postal_code")},
			{name: "by_zip", normalize: strings.TrimSpace, build: hasPrefix("postal_code")},
			{name: "by_state", normalize: lower, build: equals("state")},
			{name: "by_type", normalize: lower, build: equals("brewery_type")},
			{name: "by_country", normalize: lower, build: equals("country")},
			{name: "by_tag", normalize: lower, build: taggedWith},
			{name: "by_tags", normalize: lower, build: taggedWithAll},
			{name: "by_ids", normalize: strings.TrimSpace, build: withIDs},
			{name: "by_dist", normalize: strings.TrimSpace, build: within(radiusKm)},
		},
	}
}

// Build returns the conjunction of the predicates named in params.
// Unknown parameters and empty values are ignored.
func (b *Builder) Build(params url.Values) (Predicates, error) {
	predicates := make(Predicates, 0, len(params))

	for _, param := range b.parameters {
		if !params.Has(param.name) {
			continue
		}

		value := param.normalize(params.Get(param.name))
		if len(value) == 0 {
			continue
		}

		predicate, err := param.build(value)
		if err != nil {
			return nil, err
		}

		if predicate != nil {
			predicates = append(predicates, predicate)
		}
	}

	return predicates, nil
}

func lower(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func contains(column string) constructor {
	return func(value string) (Predicate, error) {
		pattern := "%" + likeEscaper.Replace(value) + "%"

		return func(db *gorm.DB) *gorm.DB {
			return db.Where(fmt.Sprintf("lower(%s) LIKE ?", column), pattern)
		}, nil
	}
}

func hasPrefix(column string) constructor {
	return func(value string) (Predicate, error) {
		pattern := likeEscaper.Replace(value) + "%"

		return func(db *gorm.DB) *gorm.DB {
			return db.Where(fmt.Sprintf("%s LIKE ?", column), pattern)
		}, nil
	}
}

func equals(column string) constructor {
	return func(value string) (Predicate, error) {
		return func(db *gorm.DB) *gorm.DB {
			return db.Where(fmt.Sprintf("lower(%s) = ?", column), value)
		}, nil
	}
}

func taggedWith(value string) (Predicate, error) {
	return tagged(model.NewTagSet(value)), nil
}

func taggedWithAll(value string) (Predicate, error) {
	return tagged(model.ParseTagList(value)), nil
}

func tagged(tags model.TagSet) Predicate {
	if len(tags) == 0 {
		return nil
	}

	values := tags.Values()

	return func(db *gorm.DB) *gorm.DB {
		return db.Where("breweries.id IN (SELECT brewery_id FROM brewery_tags INNER JOIN tags ON tags.id = brewery_tags.tag_id "+
			"WHERE tags.tag IN ? AND tags.deleted_at IS NULL GROUP BY brewery_id HAVING COUNT(DISTINCT tags.tag) = ?)", values, len(values))
	}
}

func withIDs(value string) (Predicate, error) {
	var ids []uint64

	for _, token := range strings.Split(value, ",") {
		token = strings.TrimSpace(token)
		if len(token) == 0 {
			continue
		}

		id, err := strconv.ParseUint(token, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: by_ids: %q is not an identifier", ErrInvalidFilterValue, token)
		}

		ids = append(ids, id)
	}

	if len(ids) == 0 {
		return nil, nil
	}

	return func(db *gorm.DB) *gorm.DB {
		return db.Where("breweries.id IN ?", ids)
	}, nil
}

type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// ParseCoordinate parses a "lat,lng" pair.
func ParseCoordinate(value string) (Coordinate, error) {
	tokens := strings.Split(value, ",")
	if len(tokens) != 2 { //nolint:mnd // latitude and longitude
		return Coordinate{}, fmt.Errorf("%w: by_dist: expected \"lat,lng\", got %q", ErrInvalidFilterValue, value)
	}

	latitude, err := strconv.ParseFloat(strings.TrimSpace(tokens[0]), 64)
	if err != nil || latitude < -maxLatitude || latitude > maxLatitude {
		return Coordinate{}, fmt.Errorf("%w: by_dist: invalid latitude %q", ErrInvalidFilterValue, tokens[0])
	}

	longitude, err := strconv.ParseFloat(strings.TrimSpace(tokens[1]), 64)
	if err != nil || longitude < -maxLongitude || longitude > maxLongitude {
		return Coordinate{}, fmt.Errorf("%w: by_dist: invalid longitude %q", ErrInvalidFilterValue, tokens[1])
	}

	return Coordinate{Latitude: latitude, Longitude: longitude}, nil
}

// within keeps breweries whose great-circle distance to the coordinate is at most radiusKm.
// The distance itself is computed by the database.
func within(radiusKm float64) constructor {
	return func(value string) (Predicate, error) {
		origin, err := ParseCoordinate(value)
		if err != nil {
			return nil, err
		}

		return func(db *gorm.DB) *gorm.DB {
			return db.Where("latitude IS NOT NULL AND longitude IS NOT NULL").
				Where("? * acos(least(1.0, cos(radians(?)) * cos(radians(latitude)) * cos(radians(longitude) - radians(?)) "+
					"+ sin(radians(?)) * sin(radians(latitude)))) <= ?",
					earthRadiusKm, origin.Latitude, origin.Longitude, origin.Latitude, radiusKm)
		}, nil
	}
}
