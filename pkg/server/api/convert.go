package api

import (
	"strings"
	"time"

	"go.openly.dev/pointy"

	"droscher.com/BreweryDB/pkg/model"
)

type Brewery struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Street         *string   `json:"street"`
	City           string    `json:"city"`
	State          string    `json:"state"`
	PostalCode     *string   `json:"postal_code"`
	Country        string    `json:"country"`
	CountyProvince *string   `json:"county_province"`
	Phone          *string   `json:"phone"`
	WebsiteURL     *string   `json:"website_url"`
	BreweryType    string    `json:"brewery_type"`
	Latitude       *float64  `json:"latitude"`
	Longitude      *float64  `json:"longitude"`
	Tags           []string  `json:"tags"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BreweryRequest is the body of create and update calls. Absent fields leave the brewery unchanged.
type BreweryRequest struct {
	Name           *string  `json:"name"`
	Street         *string  `json:"street"`
	City           *string  `json:"city"`
	State          *string  `json:"state"`
	PostalCode     *string  `json:"postal_code"`
	Country        *string  `json:"country"`
	CountyProvince *string  `json:"county_province"`
	Phone          *string  `json:"phone"`
	WebsiteURL     *string  `json:"website_url"`
	BreweryType    *string  `json:"brewery_type"`
	TagList        *string  `json:"tag_list"`
	Tags           []string `json:"tags"`
}

func BreweriesFromModel(breweries []*model.Brewery) []Brewery {
	result := make([]Brewery, 0, len(breweries))

	for _, brewery := range breweries {
		result = append(result, BreweryFromModel(brewery))
	}

	return result
}

func BreweryFromModel(brewery *model.Brewery) Brewery {
	return Brewery{
		ID:             brewery.ID,
		Name:           brewery.Name,
		Street:         brewery.Street,
		City:           brewery.City,
		State:          brewery.State,
		PostalCode:     brewery.PostalCode,
		Country:        brewery.Country,
		CountyProvince: brewery.CountyProvince,
		Phone:          brewery.Phone,
		WebsiteURL:     brewery.WebsiteURL,
		BreweryType:    brewery.BreweryType,
		Latitude:       brewery.Latitude,
		Longitude:      brewery.Longitude,
		Tags:           brewery.TagNames(),
		CreatedAt:      brewery.CreatedAt,
		UpdatedAt:      brewery.UpdatedAt,
	}
}

// ApplyTo copies the fields present in the request onto brewery.
func (r *BreweryRequest) ApplyTo(brewery *model.Brewery) {
	if r.Name != nil {
		brewery.Name = strings.TrimSpace(*r.Name)
	}

	if r.City != nil {
		brewery.City = strings.TrimSpace(*r.City)
	}

	if r.State != nil {
		brewery.State = strings.TrimSpace(*r.State)
	}

	if r.Country != nil {
		brewery.Country = strings.TrimSpace(*r.Country)
	}

	if r.BreweryType != nil {
		brewery.BreweryType = strings.ToLower(strings.TrimSpace(*r.BreweryType))
	}

	if r.Street != nil {
		brewery.Street = optional(*r.Street)
	}

	if r.PostalCode != nil {
		brewery.PostalCode = optional(*r.PostalCode)
	}

	if r.CountyProvince != nil {
		brewery.CountyProvince = optional(*r.CountyProvince)
	}

	if r.Phone != nil {
		brewery.Phone = optional(*r.Phone)
	}

	if r.WebsiteURL != nil {
		brewery.WebsiteURL = optional(*r.WebsiteURL)
	}

	switch {
	case r.Tags != nil:
		brewery.SetTags(model.NewTagSet(r.Tags...))
	case r.TagList != nil:
		brewery.SetTags(model.ParseTagList(*r.TagList))
	}
}

func optional(value string) *string {
	if trimmed := strings.TrimSpace(value); len(trimmed) > 0 {
		return pointy.String(trimmed)
	}

	return nil
}
