package pagination

import (
	"net/url"
	"strconv"

	"github.com/fedstack/federation-registry/pkg/query"
	"github.com/fedstack/federation-registry/pkg/repository"
)

// PageRequest represents a client request for a page of data with optional search and sorting.
type PageRequest struct {
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	Search   *string           `json:"search,omitempty"`
	Sort     []query.SortField `json:"sort,omitempty"`
}

// Normalize adjusts the request to ensure valid pagination values based on the config.
func (r *PageRequest) Normalize(cfg Config) {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.PageSize < 1 {
		r.PageSize = cfg.DefaultPageSize
	}
	if r.PageSize > cfg.MaxPageSize {
		r.PageSize = cfg.MaxPageSize
	}
}

// Offset calculates the number of records to skip based on page and page size.
func (r *PageRequest) Offset() int {
	return (r.Page - 1) * r.PageSize
}

// Window returns the skip/limit pair for the repository layer.
func (r *PageRequest) Window() repository.Window {
	return repository.Window{Skip: r.Offset(), Limit: r.PageSize}
}

// PageRequestFromQuery parses pagination parameters from URL query values.
// Supported parameters: page, page_size, search, sort (comma-separated, "-" prefix for desc).
// The result is normalized according to the provided config.
func PageRequestFromQuery(values url.Values, cfg Config) PageRequest {
	page, _ := strconv.Atoi(values.Get("page"))
	pageSize, _ := strconv.Atoi(values.Get("page_size"))

	var search *string
	if s := values.Get("search"); s != "" {
		search = &s
	}

	sort := query.ParseSortFields(values.Get("sort"))

	req := PageRequest{
		Page:     page,
		PageSize: pageSize,
		Search:   search,
		Sort:     sort,
	}

	req.Normalize(cfg)
	return req
}

// Page carries the pagination metadata of a result envelope.
type Page struct {
	Number        int `json:"number"`
	Size          int `json:"size"`
	TotalElements int `json:"total_elements"`
	TotalPages    int `json:"total_pages"`
}

// PageResult holds a page of data along with pagination metadata and
// navigation links.
type PageResult[T any] struct {
	Data  []T    `json:"data"`
	Page  Page   `json:"page"`
	Links *Links `json:"links,omitempty"`
}

// NewPageResult creates a PageResult with calculated total pages. An empty
// result set is still one page: total pages never drops below 1, so
// downstream navigation links stay well defined.
func NewPageResult[T any](data []T, total, page, pageSize int) PageResult[T] {
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}
	if totalPages < 1 {
		totalPages = 1
	}

	if data == nil {
		data = []T{}
	}

	return PageResult[T]{
		Data: data,
		Page: Page{
			Number:        page,
			Size:          pageSize,
			TotalElements: total,
			TotalPages:    totalPages,
		},
	}
}

// WithLinks attaches navigation links derived from the resource URL and the
// result's page window.
func (r PageResult[T]) WithLinks(resource *url.URL) PageResult[T] {
	links := NewLinks(resource, r.Page.Number, r.Page.Size, r.Page.TotalPages)
	r.Links = &links
	return r
}
