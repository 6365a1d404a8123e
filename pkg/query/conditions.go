package query

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Timestamp-range filter keys and the columns they compare against.
var rangeColumns = map[string]struct {
	column string
	before bool
}{
	"created_before": {"created_at", true},
	"created_after":  {"created_at", false},
	"updated_before": {"updated_at", true},
	"updated_after":  {"updated_at", false},
	"start_before":   {"start_date", true},
	"start_after":    {"start_date", false},
	"end_before":     {"end_date", true},
	"end_after":      {"end_date", false},
}

// Conditions is a flat filter-key to value mapping compiled into an AND
// conjunction of predicates. Absent keys contribute nothing; every supplied
// key must match.
//
// Compilation rules, per key:
//   - the timestamp-range keys (created_before/after, updated_before/after,
//     start_before/after, end_before/after) compare <= / >= against the named
//     timestamp column;
//   - string values become a case-insensitive substring match on the column
//     named by the key;
//   - numeric values with a _gte/_lte key suffix become >= / <= comparisons
//     on the column named by stripping the suffix, plain numeric values
//     become equality;
//   - any other value type is ignored. Type safety is the schema layer's
//     job, not this compiler's.
type Conditions map[string]any

// Apply compiles the conditions onto the builder and returns it.
func (c Conditions) Apply(b *Builder) *Builder {
	for key, value := range c {
		if rc, ok := rangeColumns[key]; ok {
			if ts, ok := value.(time.Time); ok {
				if rc.before {
					b.WhereBefore(rc.column, &ts)
				} else {
					b.WhereAfter(rc.column, &ts)
				}
			}
			continue
		}

		switch v := value.(type) {
		case string:
			b.WhereContains(key, &v)
		case int:
			c.applyNumeric(b, key, float64(v))
		case int64:
			c.applyNumeric(b, key, float64(v))
		case float64:
			c.applyNumeric(b, key, v)
		}
	}
	return b
}

func (c Conditions) applyNumeric(b *Builder, key string, v float64) {
	switch {
	case strings.HasSuffix(key, "_gte"):
		b.WhereGte(strings.TrimSuffix(key, "_gte"), &v)
	case strings.HasSuffix(key, "_lte"):
		b.WhereLte(strings.TrimSuffix(key, "_lte"), &v)
	default:
		b.WhereEquals(key, v)
	}
}

// ConditionsFromQuery extracts range conditions from URL query parameters.
// The audit and date range keys are always recognized; numeric names listed
// in numeric additionally accept bare, _gte, and _lte forms. Values that
// fail to parse are dropped.
func ConditionsFromQuery(values url.Values, numeric ...string) Conditions {
	c := Conditions{}

	for key := range rangeColumns {
		if raw := values.Get(key); raw != "" {
			if ts, err := time.Parse(time.RFC3339, raw); err == nil {
				c[key] = ts
			}
		}
	}

	for _, name := range numeric {
		for _, key := range []string{name, name + "_gte", name + "_lte"} {
			if raw := values.Get(key); raw != "" {
				if n, err := strconv.ParseFloat(raw, 64); err == nil {
					c[key] = n
				}
			}
		}
	}

	return c
}
