package pagination

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Params are the list-endpoint query parameters. When neither page/limit
// nor search is supplied the endpoint runs in "dropdown mode": the full
// set is returned with PageCount=1.
type Params struct {
	Page   int
	Limit  int
	Search string
}

func FromQuery(c *gin.Context) Params {
	var p Params
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		p.Page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		p.Limit = v
	}
	p.Search = strings.TrimSpace(c.Query("search"))
	return p
}

func (p Params) Dropdown() bool {
	return p.Page == 0 && p.Limit == 0 && p.Search == ""
}

// Normalized returns effective page and limit for paginated mode.
func (p Params) Normalized() (page, limit int) {
	page = p.Page
	if page < 1 {
		page = 1
	}
	limit = p.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

func (p Params) Offset() int {
	page, limit := p.Normalized()
	return (page - 1) * limit
}

// Meta is the list-response envelope metadata.
type Meta struct {
	Total     int64 `json:"total"`
	Page      int   `json:"page"`
	PageCount int   `json:"page_count"`
}

func NewMeta(p Params, total int64) Meta {
	if p.Dropdown() {
		return Meta{Total: total, Page: 1, PageCount: 1}
	}
	page, limit := p.Normalized()
	pageCount := int((total + int64(limit) - 1) / int64(limit))
	if pageCount < 1 {
		pageCount = 1
	}
	return Meta{Total: total, Page: page, PageCount: pageCount}
}
