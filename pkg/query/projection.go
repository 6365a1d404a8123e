package query

import (
	"fmt"
	"strings"
)

// ProjectionMap maps entity field names to database columns for a single
// table. Fields are kept in projection order so SELECT and RETURNING clauses
// stay aligned with the entity scanner.
type ProjectionMap struct {
	schema string
	table  string
	alias  string
	fields []string
	cols   map[string]string
}

// NewProjectionMap creates a ProjectionMap for schema.table with the given alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		cols:   make(map[string]string),
	}
}

// Project registers a column under an entity field name and returns the map
// for chaining.
func (p *ProjectionMap) Project(column, field string) *ProjectionMap {
	if _, ok := p.cols[field]; !ok {
		p.fields = append(p.fields, field)
	}
	p.cols[field] = column
	return p
}

// Column returns the alias-qualified column for an entity field. Unknown
// fields resolve to the field name itself so malformed sort keys surface as
// SQL errors instead of silent misqueries.
func (p *ProjectionMap) Column(field string) string {
	col, ok := p.cols[field]
	if !ok {
		col = field
	}
	if p.alias == "" {
		return col
	}
	return p.alias + "." + col
}

// Columns returns the alias-qualified column list in projection order.
func (p *ProjectionMap) Columns() string {
	cols := make([]string, len(p.fields))
	for i, f := range p.fields {
		cols[i] = p.Column(f)
	}
	return strings.Join(cols, ", ")
}

// BareColumns returns the unqualified column list in projection order, for
// use in RETURNING clauses where the table alias is not in scope.
func (p *ProjectionMap) BareColumns() string {
	cols := make([]string, len(p.fields))
	for i, f := range p.fields {
		cols[i] = p.cols[f]
	}
	return strings.Join(cols, ", ")
}

// Table returns the aliased table reference for FROM clauses.
func (p *ProjectionMap) Table() string {
	if p.alias == "" {
		return p.BaseTable()
	}
	return fmt.Sprintf("%s %s", p.BaseTable(), p.alias)
}

// BaseTable returns the schema-qualified table name without an alias.
func (p *ProjectionMap) BaseTable() string {
	if p.schema == "" {
		return p.table
	}
	return p.schema + "." + p.table
}
