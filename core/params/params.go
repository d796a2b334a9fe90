package params

import (
	"strconv"
	"strings"

	"meca-api/core/constants"

	"github.com/labstack/echo/v4"
)

type QueryParams struct {
	PageNumber int
	PageSize   int
	Search     string
	Status     string
}

// NewQueryParams reads page/limit (or page_number/page_size), search and status from the query string.
func NewQueryParams(c echo.Context) *QueryParams {
	p := &QueryParams{
		PageNumber: firstInt(c, constants.DefaultPageNumber, "page", "page_number"),
		PageSize:   firstInt(c, constants.DefaultPageSize, "limit", "page_size"),
		Search:     strings.TrimSpace(c.QueryParam("search")),
		Status:     strings.TrimSpace(c.QueryParam("status")),
	}
	p.Normalize()
	return p
}

func (p *QueryParams) Normalize() {
	if p.PageNumber < 1 {
		p.PageNumber = constants.DefaultPageNumber
	}
	if p.PageSize < 1 {
		p.PageSize = constants.DefaultPageSize
	}
	if p.PageSize > constants.MaxPageSize {
		p.PageSize = constants.MaxPageSize
	}
}

func (p QueryParams) Offset() int {
	return (p.PageNumber - 1) * p.PageSize
}

func firstInt(c echo.Context, def int, names ...string) int {
	for _, name := range names {
		raw := c.QueryParam(name)
		if raw == "" {
			continue
		}
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return def
}
