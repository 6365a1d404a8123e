package pagination

import (
	"net/url"
	"strconv"
)

// Links holds the navigation URLs of a paginated list. First and Last are
// always present; Prev and Next only when the respective page exists. The
// links are derived purely from the total count and the page window.
type Links struct {
	First string  `json:"first"`
	Prev  *string `json:"prev,omitempty"`
	Next  *string `json:"next,omitempty"`
	Last  string  `json:"last"`
}

// NewLinks derives navigation links from the resource URL, preserving every
// query parameter except the page number.
func NewLinks(resource *url.URL, page, pageSize, totalPages int) Links {
	links := Links{
		First: pageURL(resource, 1, pageSize),
		Last:  pageURL(resource, totalPages, pageSize),
	}

	if page > 1 {
		prev := pageURL(resource, page-1, pageSize)
		links.Prev = &prev
	}
	if page < totalPages {
		next := pageURL(resource, page+1, pageSize)
		links.Next = &next
	}

	return links
}

func pageURL(resource *url.URL, page, pageSize int) string {
	u := *resource
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))
	u.RawQuery = q.Encode()
	return u.String()
}
