package params

import (
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
)

// QueryParams captures the common list-endpoint query parameters.
type QueryParams struct {
	PageNumber int
	PageSize   int
	Search     string

	extra url.Values
}

// NewQueryParams reads page, limit and search from the echo context.
func NewQueryParams(c echo.Context) *QueryParams {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || size < 1 || size > 100 {
		size = 20
	}
	return &QueryParams{
		PageNumber: page,
		PageSize:   size,
		Search:     c.QueryParam("search"),
		extra:      url.Values{},
	}
}

// Offset returns the SQL offset for the current page.
func (p *QueryParams) Offset() int {
	return (p.PageNumber - 1) * p.PageSize
}

func (p *QueryParams) Add(key, value string) {
	if p.extra == nil {
		p.extra = url.Values{}
	}
	p.extra.Add(key, value)
}

func (p *QueryParams) Encode() string {
	return p.extra.Encode()
}
