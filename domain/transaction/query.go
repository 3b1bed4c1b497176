package transaction

import (
	"encoding/json"
	"fmt"
)

// Sort One sort specification. Direction is descending only when the
// value is exactly "desc"; any other value sorts ascending.
type Sort struct {
	Field     string `json:"field"`
	Direction string `json:"sort"`
}

// Descending reports whether the sort runs high-to-low.
func (s Sort) Descending() bool {
	return s.Direction == "desc"
}

// sortableFields Fields a query may sort on. An unrecognized field leaves
// the natural store order.
var sortableFields = map[string]bool{
	"id":        true,
	"userId":    true,
	"cost":      true,
	"createdAt": true,
}

// IsSortable reports whether field is a recognized sort key.
func IsSortable(field string) bool {
	return sortableFields[field]
}

// ParseSort decodes the wire form of a sort specification, a JSON object
// like {"field":"userId","sort":"desc"}. An empty input means no sort.
func ParseSort(raw string) (*Sort, error) {
	if raw == "" {
		return nil, nil
	}
	var s Sort
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("invalid sort parameter: %w", err)
	}
	return &s, nil
}

// Query One listing request. Page is zero-based: the result window is
// rows [Page*PageSize, Page*PageSize+PageSize) of the filtered, sorted
// collection.
type Query struct {
	Page     int
	PageSize int
	Sort     *Sort
	Search   string
}

// Offset Row offset of the requested page.
func (q Query) Offset() int {
	return q.Page * q.PageSize
}
