package model

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var ErrMissingAttribute = errors.New("missing required attribute")

type Brewery struct {
	gorm.Model
	Name           string `gorm:"not null;index"`
	Street         *string
	City           string `gorm:"not null"`
	State          string `gorm:"not null"`
	PostalCode     *string
	Country        string `gorm:"not null"`
	CountyProvince *string
	Phone          *string
	WebsiteURL     *string
	BreweryType    string `gorm:"index"`
	Latitude       *float64
	Longitude      *float64
	Tags           []Tag `gorm:"many2many:brewery_tags;"`
}

// Address is the string handed to the geocoder. Any change to it invalidates the coordinates.
func (b *Brewery) Address() string {
	parts := make([]string, 0, 4) //nolint:mnd // street, city, state, country

	if b.Street != nil && len(strings.TrimSpace(*b.Street)) > 0 {
		parts = append(parts, strings.TrimSpace(*b.Street))
	}

	for _, part := range []string{b.City, b.State, b.Country} {
		if trimmed := strings.TrimSpace(part); len(trimmed) > 0 {
			parts = append(parts, trimmed)
		}
	}

	return strings.Join(parts, ", ")
}

func (b *Brewery) Validate() error {
	var missing []string

	required := []struct {
		name  string
		value string
	}{
		{"name", b.Name},
		{"city", b.City},
		{"state", b.State},
		{"country", b.Country},
	}

	for _, attribute := range required {
		if len(strings.TrimSpace(attribute.value)) == 0 {
			missing = append(missing, attribute.name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingAttribute, strings.Join(missing, ", "))
	}

	return nil
}

func (b *Brewery) TagNames() []string {
	names := make([]string, 0, len(b.Tags))

	for _, tag := range b.Tags {
		names = append(names, tag.Tag)
	}

	return NewTagSet(names...).Values()
}

func (b *Brewery) SetTags(tags TagSet) {
	b.Tags = make([]Tag, 0, len(tags))

	for _, tag := range tags.Values() {
		b.Tags = append(b.Tags, Tag{Tag: tag})
	}
}

func (b *Brewery) HasCoordinates() bool {
	return b.Latitude != nil && b.Longitude != nil
}

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// SetCoordinates stores the coordinates, or clears them when coordinates is nil.
func (b *Brewery) SetCoordinates(coordinates *Coordinates) {
	if coordinates == nil {
		b.Latitude, b.Longitude = nil, nil

		return
	}

	latitude, longitude := coordinates.Latitude, coordinates.Longitude
	b.Latitude, b.Longitude = &latitude, &longitude
}
