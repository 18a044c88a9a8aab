package store

import "context"

// RowScanner is the subset of *sql.Rows / *sql.Row needed to hydrate one
// record.
type RowScanner interface {
	Scan(dest ...any) error
}

// Descriptor describes one tracker resource to the generic store and
// handler: which table it lives in, which columns carry its
// resource-specific fields, and how to move a record of type T in and
// out of a row. The three resource families differ only by descriptor;
// all CRUD logic is written once against it.
type Descriptor[T any] struct {
	// Entity is the human-readable singular name used in response
	// messages and logs ("workout", "food entry").
	Entity string

	// Table is the backing table name.
	Table string

	// Columns lists the resource-specific columns in a fixed order.
	// Inserts and updates are generated from this list with values
	// pulled from the Fields map by column name, so a value can never
	// bind to the wrong column.
	Columns []string

	// OwnerColumn names the scoping column for user-owned resources,
	// or is empty for unscoped ones. When set, it must also appear in
	// Columns (it is written on insert) and every update/delete filters
	// on it in addition to the id.
	OwnerColumn string

	// Fields returns the record's resource-specific values keyed by
	// column name. Every entry of Columns must have a key here.
	Fields func(rec T) map[string]any

	// Scan hydrates a record from a row in select order:
	// id, date, Columns..., deleted_flag.
	Scan func(row RowScanner) (T, error)

	// NotFoundErr is the entity-specific not-found error surfaced when
	// a scoped update or delete matches zero rows.
	NotFoundErr error
}

// Scoped reports whether mutations on this resource must additionally
// match the owner column.
func (d Descriptor[T]) Scoped() bool {
	return d.OwnerColumn != ""
}

// TrackerStore is the persistence contract shared by every tracker
// resource. Implementations must honor soft-delete semantics: records
// are never physically removed, deletion only flips the deleted flag,
// and ListActive excludes deleted records.
type TrackerStore[T any] interface {
	// ListActive returns all records whose deleted flag is not set,
	// in ascending id order.
	ListActive(ctx context.Context) ([]T, error)

	// Create inserts a new record. The store assigns the id and the
	// creation date; field values are taken from the record.
	Create(ctx context.Context, rec T) error

	// SoftDelete marks the record with the given id as deleted. For
	// scoped resources ownerID must match the record's owner; for
	// unscoped resources it is ignored. Returns the descriptor's
	// not-found error when no row matched, including when the record
	// was already deleted.
	SoftDelete(ctx context.Context, id, ownerID int64) error

	// Update rewrites the record's resource-specific fields where the
	// id (and, for scoped resources, the owner taken from rec) matches.
	// The id, creation date and deleted flag are never modified.
	// Returns the descriptor's not-found error when no row matched.
	Update(ctx context.Context, id int64, rec T) error
}
