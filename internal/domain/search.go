package domain

import (
	"strconv"
	"strings"
)

type SearchSort string

const (
	SortRelevance SearchSort = "relevance"
	SortRecency   SearchSort = "recency"
	SortCitations SearchSort = "citations"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// SearchQuery is one paper search with its filters. The zero values of the
// optional fields mean "unset".
type SearchQuery struct {
	Text     string     `validate:"required,max=200"`
	Field    string     `validate:"omitempty,max=100"`
	YearFrom int        `validate:"omitempty,gte=1000,lte=2100"`
	YearTo   int        `validate:"omitempty,gte=1000,lte=2100,gtefield=YearFrom"`
	Sort     SearchSort `validate:"omitempty,oneof=relevance recency citations"`
	Page     int        `validate:"gte=1"`
	PerPage  int        `validate:"gte=1,lte=100"`
}

// Normalize trims the text and fills defaults for page, page size and sort.
func (q SearchQuery) Normalize() SearchQuery {
	q.Text = strings.TrimSpace(q.Text)
	q.Field = strings.TrimSpace(q.Field)
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = DefaultPageSize
	}
	if q.PerPage > MaxPageSize {
		q.PerPage = MaxPageSize
	}
	if q.Sort == "" {
		q.Sort = SortRelevance
	}

	return q
}

// CacheKeyParts renders the query as a stable ordered tuple, so equal queries
// address the same cache entry.
func (q SearchQuery) CacheKeyParts() []string {
	return []string{
		q.Text,
		q.Field,
		strconv.Itoa(q.YearFrom),
		strconv.Itoa(q.YearTo),
		string(q.Sort),
		strconv.Itoa(q.Page),
		strconv.Itoa(q.PerPage),
	}
}

// SearchPage is one page of search results.
type SearchPage struct {
	Papers  []Paper
	Total   int
	Page    int
	PerPage int
}
