package query_test

import (
	"reflect"
	"testing"

	"github.com/fedstack/federation-registry/pkg/query"
)

func TestParseSortFields(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want []query.SortField
	}{
		{
			name: "empty expression",
			expr: "",
			want: nil,
		},
		{
			name: "single ascending",
			expr: "Name",
			want: []query.SortField{{Field: "Name"}},
		},
		{
			name: "single descending",
			expr: "-CreatedAt",
			want: []query.SortField{{Field: "CreatedAt", Descending: true}},
		},
		{
			name: "mixed with whitespace",
			expr: " Name , -CreatedAt ",
			want: []query.SortField{
				{Field: "Name"},
				{Field: "CreatedAt", Descending: true},
			},
		},
		{
			name: "empty segments skipped",
			expr: "Name,,-",
			want: []query.SortField{{Field: "Name"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := query.ParseSortFields(tt.expr)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseSortFields(%q) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}
