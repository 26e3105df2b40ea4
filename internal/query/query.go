// Package query builds filtered, sorted, paginated views over a collection
// from raw request parameters.
package query

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	DefaultPage      = 1
	DefaultLimit     = 10
	DefaultSortField = "name"
)

// ListParams encapsulates the paging, sorting, and search preferences shared
// by the list endpoints. All fields are optional on input; call Normalize
// before use.
type ListParams struct {
	Page      int
	Limit     int
	SortField string
	SortOrder string
	Search    string
}

// Sort names a field and a direction.
type Sort struct {
	Field      string
	Descending bool
}

// Normalize returns a sanitized copy applying defaults and bounds: page and
// limit fall back when non-positive, the sort field falls back to "name", and
// any order other than "desc" (case-insensitive) means ascending.
func (p ListParams) Normalize() ListParams {
	normalized := p
	if normalized.Page <= 0 {
		normalized.Page = DefaultPage
	}
	if normalized.Limit <= 0 {
		normalized.Limit = DefaultLimit
	}
	normalized.SortField = strings.TrimSpace(normalized.SortField)
	if normalized.SortField == "" {
		normalized.SortField = DefaultSortField
	}
	if strings.EqualFold(strings.TrimSpace(normalized.SortOrder), "desc") {
		normalized.SortOrder = "desc"
	} else {
		normalized.SortOrder = "asc"
	}
	normalized.Search = strings.TrimSpace(normalized.Search)
	return normalized
}

// WithAllowedSortFields clamps the sort field to the given set, falling back
// to the default when the requested field is not sortable for the collection.
func (p ListParams) WithAllowedSortFields(fields ...string) ListParams {
	for _, f := range fields {
		if p.SortField == f {
			return p
		}
	}
	p.SortField = DefaultSortField
	return p
}

// Sort returns the normalized sort preference.
func (p ListParams) Sort() Sort {
	return Sort{Field: p.SortField, Descending: p.SortOrder == "desc"}
}

// Skip computes the number of records preceding the requested page.
func (p ListParams) Skip() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}

// Filter builds the store filter: a case-insensitive substring match on the
// name field. An empty search term matches every record. The term is escaped
// so user input cannot inject regex syntax.
func (p ListParams) Filter() bson.M {
	if p.Search == "" {
		return bson.M{}
	}
	return bson.M{
		"name": bson.M{"$regex": primitive.Regex{
			Pattern: regexp.QuoteMeta(p.Search),
			Options: "i",
		}},
	}
}

// FindOptions builds the sort/skip/limit clauses for the paged query.
func (p ListParams) FindOptions() *options.FindOptions {
	return options.Find().
		SetSort(SortDocument(p.Sort())).
		SetSkip(p.Skip()).
		SetLimit(int64(p.Limit))
}

// SortDocument converts a Sort into the store's sort clause.
func SortDocument(s Sort) bson.D {
	order := 1
	if s.Descending {
		order = -1
	}
	return bson.D{{Key: s.Field, Value: order}}
}

// Pagination is the metadata returned alongside every page of results.
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

// NewPagination derives the page metadata from the normalized params and the
// total number of records matching the filter.
func NewPagination(p ListParams, total int64) Pagination {
	totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return Pagination{
		CurrentPage:  p.Page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: p.Limit,
	}
}

// menuSortStrategies are the named orderings for a restaurant's menu.
var menuSortStrategies = map[string]Sort{
	"rating":       {Field: "rating", Descending: true},
	"lowestPrice":  {Field: "price", Descending: false},
	"highestPrice": {Field: "price", Descending: true},
	"name":         {Field: "name", Descending: false},
}

// MenuSortStrategy resolves a named menu ordering. Unrecognized names fall
// back to rating-descending.
func MenuSortStrategy(name string) Sort {
	if s, ok := menuSortStrategies[name]; ok {
		return s
	}
	return menuSortStrategies["rating"]
}
