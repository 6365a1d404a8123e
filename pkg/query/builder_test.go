package query_test

import (
	"strings"
	"testing"
	"time"

	"github.com/fedstack/federation-registry/pkg/query"
	"github.com/google/uuid"
)

func newTestProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "users", "u").
		Project("id", "ID").
		Project("name", "Name").
		Project("email", "Email").
		Project("created_at", "CreatedAt")
}

func TestBuildCount(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), query.SortField{Field: "Name"})

	sql, args := b.BuildCount()

	wantSQL := "SELECT COUNT(*) FROM public.users u"
	if sql != wantSQL {
		t.Errorf("BuildCount() = %q, want %q", sql, wantSQL)
	}
	if len(args) != 0 {
		t.Errorf("BuildCount() args = %v, want none", args)
	}
}

func TestBuildCountWithConditions(t *testing.T) {
	name := "ada"
	b := query.NewBuilder(newTestProjection(), query.SortField{Field: "Name"}).
		WhereContains("Name", &name)

	sql, args := b.BuildCount()

	if !strings.Contains(sql, "WHERE u.name ILIKE $1") {
		t.Errorf("BuildCount() missing WHERE clause, got %q", sql)
	}
	if len(args) != 1 || args[0] != "%ada%" {
		t.Errorf("BuildCount() args = %v, want [%%ada%%]", args)
	}
}

func TestBuildWindow(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), query.SortField{Field: "Name"})

	sql, _ := b.BuildWindow(20, 40)

	if !strings.Contains(sql, "SELECT u.id, u.name, u.email, u.created_at FROM public.users u") {
		t.Errorf("BuildWindow() missing projection, got %q", sql)
	}
	if !strings.Contains(sql, "ORDER BY u.name ASC") {
		t.Errorf("BuildWindow() missing default sort, got %q", sql)
	}
	if !strings.Contains(sql, "LIMIT 20 OFFSET 40") {
		t.Errorf("BuildWindow() missing window, got %q", sql)
	}
}

func TestBuildWindowZeroLimit(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), query.SortField{Field: "Name"})

	sql, _ := b.BuildWindow(0, 0)

	if !strings.Contains(sql, "LIMIT 0 OFFSET 0") {
		t.Errorf("BuildWindow(0, 0) should produce an empty window, got %q", sql)
	}
}

func TestBuildWindowParameterNumbering(t *testing.T) {
	name := "ada"
	after := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	b := query.NewBuilder(newTestProjection(), query.SortField{Field: "Name"}).
		WhereContains("Name", &name).
		WhereAfter("created_at", &after)

	sql, args := b.BuildWindow(10, 0)

	if !strings.Contains(sql, "u.name ILIKE $1") {
		t.Errorf("BuildWindow() first condition misnumbered, got %q", sql)
	}
	if !strings.Contains(sql, "u.created_at >= $2") {
		t.Errorf("BuildWindow() second condition misnumbered, got %q", sql)
	}
	if len(args) != 2 {
		t.Errorf("BuildWindow() args = %v, want 2 values", args)
	}
}

func TestBuildSingle(t *testing.T) {
	id := uuid.New()
	b := query.NewBuilder(newTestProjection(), query.SortField{Field: "Name"})

	sql, args := b.BuildSingle("ID", id)

	if !strings.Contains(sql, "WHERE u.id = $1") {
		t.Errorf("BuildSingle() missing id predicate, got %q", sql)
	}
	if len(args) != 1 || args[0] != id {
		t.Errorf("BuildSingle() args = %v, want [%s]", args, id)
	}
}

func TestBuildSingleForUpdate(t *testing.T) {
	id := uuid.New()
	b := query.NewBuilder(newTestProjection(), query.SortField{Field: "Name"})

	sql, args := b.BuildSingleForUpdate("ID", id)

	if !strings.HasSuffix(sql, "WHERE u.id = $1 FOR UPDATE") {
		t.Errorf("BuildSingleForUpdate() must lock the selected row, got %q", sql)
	}
	if len(args) != 1 || args[0] != id {
		t.Errorf("BuildSingleForUpdate() args = %v, want [%s]", args, id)
	}
}

func TestBuildInsert(t *testing.T) {
	fields := query.Fields{}.
		Set("name", "Ada").
		Set("email", "ada@example.org")
	b := query.NewBuilder(newTestProjection(), query.SortField{Field: "Name"})

	sql, args := b.BuildInsert(fields)

	if !strings.Contains(sql, "INSERT INTO public.users (name, email)") {
		t.Errorf("BuildInsert() missing column list, got %q", sql)
	}
	if !strings.Contains(sql, "VALUES ($1, $2)") {
		t.Errorf("BuildInsert() missing placeholders, got %q", sql)
	}
	if !strings.Contains(sql, "RETURNING id, name, email, created_at") {
		t.Errorf("BuildInsert() RETURNING must use bare columns, got %q", sql)
	}
	if len(args) != 2 || args[0] != "Ada" || args[1] != "ada@example.org" {
		t.Errorf("BuildInsert() args = %v", args)
	}
}

func TestBuildUpdate(t *testing.T) {
	id := uuid.New()
	fields := query.Fields{}.
		Set("name", "Ada").
		Set("email", "ada@example.org")
	b := query.NewBuilder(newTestProjection(), query.SortField{Field: "Name"})

	sql, args := b.BuildUpdate("id", id, fields)

	if !strings.Contains(sql, "UPDATE public.users SET name = $1, email = $2") {
		t.Errorf("BuildUpdate() missing assignments, got %q", sql)
	}
	if !strings.Contains(sql, "WHERE id = $3") {
		t.Errorf("BuildUpdate() id parameter must follow the assignments, got %q", sql)
	}
	if !strings.Contains(sql, "RETURNING id, name, email, created_at") {
		t.Errorf("BuildUpdate() RETURNING must use bare columns, got %q", sql)
	}
	if len(args) != 3 || args[2] != id {
		t.Errorf("BuildUpdate() args = %v, want id last", args)
	}
}

func TestBuildDelete(t *testing.T) {
	id := uuid.New()
	b := query.NewBuilder(newTestProjection(), query.SortField{Field: "Name"})

	sql, args := b.BuildDelete("id", id)

	wantSQL := "DELETE FROM public.users WHERE id = $1"
	if sql != wantSQL {
		t.Errorf("BuildDelete() = %q, want %q", sql, wantSQL)
	}
	if len(args) != 1 || args[0] != id {
		t.Errorf("BuildDelete() args = %v, want [%s]", args, id)
	}
}

func TestWhereFilters(t *testing.T) {
	name := "ada"
	empty := ""
	gte := 2.5
	before := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		build func(b *query.Builder) *query.Builder
		want  string
	}{
		{
			name:  "contains",
			build: func(b *query.Builder) *query.Builder { return b.WhereContains("Name", &name) },
			want:  "u.name ILIKE $1",
		},
		{
			name:  "equals",
			build: func(b *query.Builder) *query.Builder { return b.WhereEquals("Email", "ada@example.org") },
			want:  "u.email = $1",
		},
		{
			name:  "in",
			build: func(b *query.Builder) *query.Builder { return b.WhereIn("Name", []any{"a", "b"}) },
			want:  "u.name IN ($1, $2)",
		},
		{
			name:  "gte",
			build: func(b *query.Builder) *query.Builder { return b.WhereGte("overbooking_cpu", &gte) },
			want:  "u.overbooking_cpu >= $1",
		},
		{
			name:  "lte",
			build: func(b *query.Builder) *query.Builder { return b.WhereLte("overbooking_cpu", &gte) },
			want:  "u.overbooking_cpu <= $1",
		},
		{
			name:  "before",
			build: func(b *query.Builder) *query.Builder { return b.WhereBefore("created_at", &before) },
			want:  "u.created_at <= $1",
		},
		{
			name:  "after",
			build: func(b *query.Builder) *query.Builder { return b.WhereAfter("created_at", &before) },
			want:  "u.created_at >= $1",
		},
		{
			name:  "search",
			build: func(b *query.Builder) *query.Builder { return b.WhereSearch(&name, "Name", "Email") },
			want:  "(u.name ILIKE $1 OR u.email ILIKE $2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := query.NewBuilder(newTestProjection(), query.SortField{Field: "Name"})
			sql, _ := tt.build(b).BuildCount()
			if !strings.Contains(sql, tt.want) {
				t.Errorf("BuildCount() missing %q, got %q", tt.want, sql)
			}
		})
	}

	t.Run("nil and empty values are ignored", func(t *testing.T) {
		b := query.NewBuilder(newTestProjection(), query.SortField{Field: "Name"}).
			WhereContains("Name", nil).
			WhereContains("Name", &empty).
			WhereEquals("Email", nil).
			WhereIn("Name", nil).
			WhereGte("x", nil).
			WhereSearch(nil, "Name")

		sql, args := b.BuildCount()
		if strings.Contains(sql, "WHERE") {
			t.Errorf("BuildCount() should have no conditions, got %q", sql)
		}
		if len(args) != 0 {
			t.Errorf("BuildCount() args = %v, want none", args)
		}
	})
}

func TestOrderByFields(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), query.SortField{Field: "Name"}).
		OrderByFields([]query.SortField{
			{Field: "CreatedAt", Descending: true},
			{Field: "Name"},
		})

	sql, _ := b.BuildWindow(10, 0)

	if !strings.Contains(sql, "ORDER BY u.created_at DESC, u.name ASC") {
		t.Errorf("BuildWindow() wrong ordering, got %q", sql)
	}
}

func TestUnknownFieldFallsBackToAlias(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), query.SortField{Field: "Name"}).
		WhereEquals("status", "draft")

	sql, _ := b.BuildCount()

	if !strings.Contains(sql, "u.status = $1") {
		t.Errorf("unknown field should resolve alias-qualified, got %q", sql)
	}
}
