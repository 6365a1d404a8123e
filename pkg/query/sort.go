package query

import "strings"

// SortField identifies an entity field to order by. A leading '-' on the wire
// form marks descending order.
type SortField struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending,omitempty"`
}

// ParseSortFields parses a comma-separated sort expression into SortFields.
// Each segment is an entity field name, optionally prefixed with '-' for
// descending order. Empty segments are skipped.
func ParseSortFields(expr string) []SortField {
	if expr == "" {
		return nil
	}

	var fields []SortField
	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if rest := strings.TrimPrefix(part, "-"); rest != part {
			if rest == "" {
				continue
			}
			fields = append(fields, SortField{Field: rest, Descending: true})
		} else {
			fields = append(fields, SortField{Field: part})
		}
	}
	return fields
}
