package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fedstack/federation-registry/pkg/query"
	"github.com/google/uuid"
)

// Mapping describes how an entity type maps onto its table: a human-readable
// entity name for error reporting, the column projection, the default sort,
// and the row scanner. The projection must register the primary key column
// "id" under the field name "ID".
type Mapping[T any] struct {
	Entity      string
	Projection  *query.ProjectionMap
	DefaultSort query.SortField
	Scan        func(Scanner) (T, error)
}

// Window is the skip/limit pair selecting a sub-range of a filtered, sorted
// result set. A zero Limit is legal and yields an empty page.
type Window struct {
	Skip  int
	Limit int
}

// Store is the generic read/write engine for a single entity type. Every
// resource service is a thin wrapper around one.
type Store[T any] struct {
	db *sql.DB
	m  Mapping[T]
}

// NewStore creates a Store for the given mapping.
func NewStore[T any](db *sql.DB, m Mapping[T]) *Store[T] {
	return &Store[T]{db: db, m: m}
}

// DB exposes the underlying handle for callers composing multi-entity
// transactions.
func (s *Store[T]) DB() *sql.DB { return s.db }

// Mapping returns the store's entity mapping.
func (s *Store[T]) Mapping() Mapping[T] { return s.m }

func (s *Store[T]) builder() *query.Builder {
	return query.NewBuilder(s.m.Projection, s.m.DefaultSort)
}

// Get retrieves a single record by id. A miss is a NotFoundError; the caller
// decides whether that is exceptional.
func (s *Store[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	q, args := s.builder().BuildSingle("ID", id)

	item, err := QueryOne(ctx, s.db, q, args, s.m.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: s.m.Entity, ID: id}
		}
		return nil, fmt.Errorf("get %s: %w", s.m.Entity, err)
	}
	return &item, nil
}

// GetTx retrieves a single record by id inside an existing transaction.
func (s *Store[T]) GetTx(ctx context.Context, tx *sql.Tx, id uuid.UUID) (*T, error) {
	q, args := s.builder().BuildSingle("ID", id)

	item, err := QueryOne(ctx, tx, q, args, s.m.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: s.m.Entity, ID: id}
		}
		return nil, fmt.Errorf("get %s: %w", s.m.Entity, err)
	}
	return &item, nil
}

// GetTxForUpdate retrieves a single record by id inside an existing
// transaction and locks its row until the transaction ends. Read-validate-
// write sequences use this so concurrent writers serialize on the row instead
// of validating against each other's uncommitted state.
func (s *Store[T]) GetTxForUpdate(ctx context.Context, tx *sql.Tx, id uuid.UUID) (*T, error) {
	q, args := s.builder().BuildSingleForUpdate("ID", id)

	item, err := QueryOne(ctx, tx, q, args, s.m.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: s.m.Entity, ID: id}
		}
		return nil, fmt.Errorf("get %s: %w", s.m.Entity, err)
	}
	return &item, nil
}

// List returns the page of records selected by the window, ordered by sort
// (default sort when empty), along with the total count of all matching
// records before pagination. The total is independent of the window.
func (s *Store[T]) List(ctx context.Context, win Window, sort []query.SortField, apply func(*query.Builder)) ([]T, int, error) {
	if win.Skip < 0 || win.Limit < 0 {
		return nil, 0, fmt.Errorf("list %s: negative page window (skip=%d, limit=%d)", s.m.Entity, win.Skip, win.Limit)
	}

	b := s.builder()
	if apply != nil {
		apply(b)
	}
	b.OrderByFields(sort)

	countSQL, countArgs := b.BuildCount()
	var total int
	if err := s.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", s.m.Entity, err)
	}

	pageSQL, pageArgs := b.BuildWindow(win.Limit, win.Skip)
	items, err := QueryMany(ctx, s.db, pageSQL, pageArgs, s.m.Scan)
	if err != nil {
		return nil, 0, fmt.Errorf("query %s: %w", s.m.Entity, err)
	}

	return items, total, nil
}

// Create inserts a new record from the given fields and returns it with
// generated id and audit columns populated. Constraint violations come back
// classified.
func (s *Store[T]) Create(ctx context.Context, fields query.Fields) (*T, error) {
	item, err := WithTx(ctx, s.db, func(tx *sql.Tx) (T, error) {
		return s.CreateTx(ctx, tx, fields)
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateTx inserts a new record inside an existing transaction. The caller
// owns commit and rollback.
func (s *Store[T]) CreateTx(ctx context.Context, tx *sql.Tx, fields query.Fields) (T, error) {
	q, args := s.builder().BuildInsert(fields)

	item, err := QueryOne(ctx, tx, q, args, s.m.Scan)
	if err != nil {
		var zero T
		return zero, Classify(err, s.m.Entity, fields)
	}
	return item, nil
}

// Update applies a partial update: only the supplied fields are touched.
// Zero matched rows is a NoItemToUpdateError; constraint violations come
// back classified.
func (s *Store[T]) Update(ctx context.Context, id uuid.UUID, fields query.Fields) (*T, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("update %s: no fields to update", s.m.Entity)
	}

	q, args := s.builder().BuildUpdate("id", id, fields)

	item, err := WithTx(ctx, s.db, func(tx *sql.Tx) (T, error) {
		return QueryOne(ctx, tx, q, args, s.m.Scan)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NoItemToUpdateError{Entity: s.m.Entity, ID: id}
		}
		return nil, Classify(err, s.m.Entity, fields)
	}
	return &item, nil
}

// UpdateTx applies a partial update inside an existing transaction. The
// caller owns commit and rollback.
func (s *Store[T]) UpdateTx(ctx context.Context, tx *sql.Tx, id uuid.UUID, fields query.Fields) (T, error) {
	var zero T
	if len(fields) == 0 {
		return zero, fmt.Errorf("update %s: no fields to update", s.m.Entity)
	}

	q, args := s.builder().BuildUpdate("id", id, fields)

	item, err := QueryOne(ctx, tx, q, args, s.m.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, &NoItemToUpdateError{Entity: s.m.Entity, ID: id}
		}
		return zero, Classify(err, s.m.Entity, fields)
	}
	return item, nil
}

// DeleteTx removes a record by id inside an existing transaction.
func (s *Store[T]) DeleteTx(ctx context.Context, tx *sql.Tx, id uuid.UUID) error {
	q, args := s.builder().BuildDelete("id", id)

	if err := ExecExpectOne(ctx, tx, q, args...); err != nil {
		if errors.Is(err, ErrNoRowsAffected) {
			return &NotFoundError{Entity: s.m.Entity, ID: id}
		}
		if IsForeignKeyViolation(err) {
			return &DeleteFailedError{Entity: s.m.Entity, ID: id}
		}
		return fmt.Errorf("delete %s: %w", s.m.Entity, err)
	}
	return nil
}

// Delete removes a record by id. A delete blocked by the storage engine's
// foreign key enforcement surfaces as DeleteFailedError; there is no
// application-level pre-check for dependents.
func (s *Store[T]) Delete(ctx context.Context, id uuid.UUID) error {
	q, args := s.builder().BuildDelete("id", id)

	_, err := WithTx(ctx, s.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, ExecExpectOne(ctx, tx, q, args...)
	})
	if err != nil {
		if errors.Is(err, ErrNoRowsAffected) {
			return &NotFoundError{Entity: s.m.Entity, ID: id}
		}
		if IsForeignKeyViolation(err) {
			return &DeleteFailedError{Entity: s.m.Entity, ID: id}
		}
		return fmt.Errorf("delete %s: %w", s.m.Entity, err)
	}
	return nil
}
