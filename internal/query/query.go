// Package query builds the filter, sort, and pagination specifications
// shared by the paginated list views. Every caller-supplied value is
// validated or escaped here, before any store query runs.
package query

import (
	"regexp"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"go.pilab.hu/partsdesk/domain"
)

// Page sizes are fixed per view.
const (
	ProductPageLimit  = 50
	IncidentPageLimit = 10
	UserPageLimit     = 10
)

// Order is a sort direction.
type Order string

const (
	OrderAscending  Order = "ascending"
	OrderDescending Order = "descending"
)

// Sort is a validated (field, direction) pair. Field is the store-level
// field name resolved through a view allow-list.
type Sort struct {
	Field string
	Order Order
}

// Doc renders the sort as a pipeline $sort document.
func (s Sort) Doc() bson.D {
	dir := 1
	if s.Order == OrderDescending {
		dir = -1
	}
	return bson.D{{Key: s.Field, Value: dir}}
}

// Per-view sort allow-lists, mapping the public sort key to the stored
// field. A key outside the list is a hard validation failure.
var (
	ProductSortFields = map[string]string{
		"name":     "name",
		"carMake":  "car_make",
		"category": "category",
	}
	IncidentSortFields = map[string]string{
		"dateCreated": "date_created",
		"dateUpdated": "date_updated",
	}
)

// ParseSort validates a caller-supplied sort key and direction against a
// view's allow-list. Violations surface as field-level validation errors,
// never as a silent fallback.
func ParseSort(field, order string, allowed map[string]string) (Sort, error) {
	var fields []domain.FieldError

	stored, known := allowed[field]
	switch {
	case field == "":
		fields = append(fields, domain.FieldError{Field: "sort", Code: domain.CodeEmptySort})
	case !known:
		fields = append(fields, domain.FieldError{Field: "sort", Code: domain.CodeInvalidType})
	}

	switch Order(order) {
	case OrderAscending, OrderDescending:
	default:
		code := domain.CodeInvalidType
		if order == "" {
			code = domain.CodeEmptyOrder
		}
		fields = append(fields, domain.FieldError{Field: "orderBy", Code: code})
	}

	if len(fields) > 0 {
		return Sort{}, domain.NewValidationError(fields...)
	}
	return Sort{Field: stored, Order: Order(order)}, nil
}

// ParsePage converts a 1-based page parameter to a 0-based offset.
// Anything that is not a positive integer fails before any query runs.
func ParsePage(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, domain.ErrInvalidPage
	}
	return n - 1, nil
}

// Contains builds a case-insensitive substring predicate for one field.
// The term is escaped, so caller input can never alter the pattern; an
// empty term matches everything.
func Contains(field, term string) bson.D {
	return bson.D{{Key: field, Value: bson.Regex{
		Pattern: regexp.QuoteMeta(term),
		Options: "i",
	}}}
}
