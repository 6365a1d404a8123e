package repository

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/fedstack/federation-registry/pkg/query"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNoRowsAffected reports a statement that matched zero rows.
var ErrNoRowsAffected = errors.New("no rows affected")

// NotFoundError reports a referenced entity that does not exist.
type NotFoundError struct {
	Entity string
	ID     uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
}

// NoItemToUpdateError reports an update that matched zero rows. Distinct
// from NotFoundError: the id was well formed but nothing matched at write
// time.
type NoItemToUpdateError struct {
	Entity string
	ID     uuid.UUID
}

func (e *NoItemToUpdateError) Error() string {
	return fmt.Sprintf("no %s with id %q to update", e.Entity, e.ID)
}

// NotNullError reports a required attribute missing at the storage layer.
type NotNullError struct {
	Entity    string
	Attribute string
}

func (e *NotNullError) Error() string {
	return fmt.Sprintf("attribute %q of %s can't be null", e.Attribute, e.Entity)
}

// ConflictError reports a uniqueness constraint violation. Value is
// recovered from the write payload, not from the storage diagnostic.
type ConflictError struct {
	Entity    string
	Attribute string
	Value     any
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s with %s '%v' already exists", e.Entity, e.Attribute, e.Value)
}

// DeleteFailedError reports a delete rejected because dependent records
// still reference the target.
type DeleteFailedError struct {
	Entity string
	ID     uuid.UUID
}

func (e *DeleteFailedError) Error() string {
	return fmt.Sprintf("%s with id %q is still referenced by dependent records", e.Entity, e.ID)
}

// SQLSTATE codes for the constraint classes the classifier understands.
const (
	codeNotNullViolation    = "23502"
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
)

var (
	// "null value in column "name" of relation ..."
	notNullColumn = regexp.MustCompile(`null value in column "([^"]+)"`)
	// "Key (name)=(foo) already exists."
	uniqueKeyDetail = regexp.MustCompile(`Key \(([^)]+)\)=`)
)

// Classify maps a storage constraint violation on a write to a domain error.
// It prefers the driver's structured metadata and falls back to parsing the
// diagnostic text when the column is not reported. Errors that match
// neither pattern are returned unmodified so novel constraint types stay
// visible.
func Classify(err error, entity string, fields query.Fields) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeNotNullViolation:
		attr := pgErr.ColumnName
		if attr == "" {
			if m := notNullColumn.FindStringSubmatch(pgErr.Message); m != nil {
				attr = m[1]
			}
		}
		return &NotNullError{Entity: entity, Attribute: attr}

	case codeUniqueViolation:
		attr := pgErr.ColumnName
		if attr == "" {
			if m := uniqueKeyDetail.FindStringSubmatch(pgErr.Detail); m != nil {
				attr = m[1]
			}
		}
		return &ConflictError{Entity: entity, Attribute: attr, Value: fields.Value(attr)}
	}

	return err
}

// IsForeignKeyViolation reports whether err is a foreign key constraint
// violation. Used by delete paths to surface "blocked by dependents".
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation
}
