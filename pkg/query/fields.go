package query

// Field pairs a database column with the value to write to it.
type Field struct {
	Column string
	Value  any
}

// Fields is an ordered set of columns and values for INSERT and UPDATE
// statements. Order is preserved so generated SQL is deterministic.
type Fields []Field

// Set appends a column/value pair and returns the extended set.
func (f Fields) Set(column string, value any) Fields {
	return append(f, Field{Column: column, Value: value})
}

// Value returns the value recorded for a column, or nil when the column is
// not part of the set. Used to recover the conflicting value when a
// uniqueness violation names a column.
func (f Fields) Value(column string) any {
	for _, field := range f {
		if field.Column == column {
			return field.Value
		}
	}
	return nil
}
