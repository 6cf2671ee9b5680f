package server

import (
	"errors"
	"math"
	"net/url"
	"strconv"

	"droscher.com/BreweryDB/configs"
	"droscher.com/BreweryDB/pkg/repository"
)

// parsePage reads page and per_page. Missing or malformed values fall back to the first page and
// the default size; sizes above the maximum are capped. Page numbers are capped so the offset fits
// in an int.
func parsePage(params url.Values, conf configs.Server) repository.Page {
	page := repository.Page{Number: 1, Size: conf.DefaultPageSize}

	number, err := strconv.Atoi(params.Get("page"))
	if (err == nil || errors.Is(err, strconv.ErrRange)) && number > 0 {
		page.Number = number
	}

	if size, err := strconv.Atoi(params.Get("per_page")); err == nil && size > 0 {
		page.Size = size
	}

	if page.Size > conf.MaxPageSize {
		page.Size = conf.MaxPageSize
	}

	if page.Size > 0 && page.Number > math.MaxInt/page.Size {
		page.Number = math.MaxInt / page.Size
	}

	return page
}
