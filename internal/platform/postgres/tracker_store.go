package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Oceanvibes209/LoneWolfFitness-Server/internal/domain"
	"github.com/Oceanvibes209/LoneWolfFitness-Server/internal/platform/logger"
	"github.com/Oceanvibes209/LoneWolfFitness-Server/internal/store"
)

// Ensure TrackerStore implements store.TrackerStore for every resource.
var (
	_ store.TrackerStore[domain.Workout]     = (*TrackerStore[domain.Workout])(nil)
	_ store.TrackerStore[domain.UserWorkout] = (*TrackerStore[domain.UserWorkout])(nil)
	_ store.TrackerStore[domain.FoodEntry]   = (*TrackerStore[domain.FoodEntry])(nil)
)

// TrackerStore is the PostgreSQL implementation of store.TrackerStore,
// written once against a resource descriptor. All SQL is generated from
// the descriptor's column list, with argument values pulled from the
// name-keyed Fields map, so a field value can never bind to the wrong
// column.
type TrackerStore[T any] struct {
	db   store.DBTX
	desc store.Descriptor[T]
	log  *slog.Logger

	listQuery   string
	insertQuery string
	deleteQuery string
	updateQuery string
}

// NewTrackerStore creates a PostgreSQL tracker store for the given
// resource descriptor. The db handle is the store's fallback; requests
// that carry a checked-out connection in their context (see
// store.WithConn) run on that connection instead.
// If log is nil, the default logger is used.
func NewTrackerStore[T any](db store.DBTX, desc store.Descriptor[T], log *slog.Logger) *TrackerStore[T] {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	s := &TrackerStore[T]{
		db:   db,
		desc: desc,
		log:  log.With(slog.String("component", desc.Table+"_store")),
	}
	s.buildQueries()
	return s
}

// buildQueries generates the four statements from the descriptor.
func (s *TrackerStore[T]) buildQueries() {
	d := s.desc

	s.listQuery = fmt.Sprintf(
		"SELECT id, date, %s, deleted_flag FROM %s WHERE deleted_flag = FALSE ORDER BY id",
		strings.Join(d.Columns, ", "), d.Table,
	)

	placeholders := make([]string, len(d.Columns))
	for i := range d.Columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	s.insertQuery = fmt.Sprintf(
		"INSERT INTO %s (date, %s) VALUES (CURRENT_DATE, %s)",
		d.Table, strings.Join(d.Columns, ", "), strings.Join(placeholders, ", "),
	)

	if d.Scoped() {
		s.deleteQuery = fmt.Sprintf(
			"UPDATE %s SET deleted_flag = TRUE WHERE id = $1 AND %s = $2 AND deleted_flag = FALSE",
			d.Table, d.OwnerColumn,
		)
	} else {
		s.deleteQuery = fmt.Sprintf(
			"UPDATE %s SET deleted_flag = TRUE WHERE id = $1 AND deleted_flag = FALSE",
			d.Table,
		)
	}

	// The owner column is written on insert but never rewritten on
	// update; it moves to the WHERE clause instead.
	var assignments []string
	n := 0
	for _, col := range d.Columns {
		if col == d.OwnerColumn {
			continue
		}
		n++
		assignments = append(assignments, fmt.Sprintf("%s = $%d", col, n))
	}
	where := fmt.Sprintf("id = $%d", n+1)
	if d.Scoped() {
		where += fmt.Sprintf(" AND %s = $%d", d.OwnerColumn, n+2)
	}
	s.updateQuery = fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s",
		d.Table, strings.Join(assignments, ", "), where,
	)
}

// ListActive implements store.TrackerStore.ListActive.
func (s *TrackerStore[T]) ListActive(ctx context.Context) ([]T, error) {
	log := logger.FromContextOrDefault(ctx, s.log)
	db := store.ConnFromContext(ctx, s.db)

	rows, err := db.QueryContext(ctx, s.listQuery)
	if err != nil {
		log.Error("failed to list records",
			slog.String("table", s.desc.Table),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	records := make([]T, 0)
	for rows.Next() {
		rec, err := s.desc.Scan(rows)
		if err != nil {
			log.Error("failed to scan record",
				slog.String("table", s.desc.Table),
				slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	log.Debug("listed active records",
		slog.String("table", s.desc.Table),
		slog.Int("count", len(records)))
	return records, nil
}

// Create implements store.TrackerStore.Create. The id is assigned by the
// table's identity column and the date by CURRENT_DATE; neither is
// reported back to the caller.
func (s *TrackerStore[T]) Create(ctx context.Context, rec T) error {
	log := logger.FromContextOrDefault(ctx, s.log)
	db := store.ConnFromContext(ctx, s.db)

	fields := s.desc.Fields(rec)
	args := make([]any, 0, len(s.desc.Columns))
	for _, col := range s.desc.Columns {
		args = append(args, fields[col])
	}

	if _, err := db.ExecContext(ctx, s.insertQuery, args...); err != nil {
		log.Error("failed to create record",
			slog.String("table", s.desc.Table),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("record created", slog.String("table", s.desc.Table))
	return nil
}

// SoftDelete implements store.TrackerStore.SoftDelete. Deleting a record
// that does not exist, is already deleted, or belongs to a different
// owner all report not-found.
func (s *TrackerStore[T]) SoftDelete(ctx context.Context, id, ownerID int64) error {
	log := logger.FromContextOrDefault(ctx, s.log)
	db := store.ConnFromContext(ctx, s.db)

	args := []any{id}
	if s.desc.Scoped() {
		args = append(args, ownerID)
	}

	result, err := db.ExecContext(ctx, s.deleteQuery, args...)
	if err != nil {
		log.Error("failed to soft-delete record",
			slog.String("table", s.desc.Table),
			slog.Int64("id", id),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, s.desc.NotFoundErr); err != nil {
		log.Debug("soft-delete matched no rows",
			slog.String("table", s.desc.Table),
			slog.Int64("id", id))
		return err
	}

	log.Info("record soft-deleted",
		slog.String("table", s.desc.Table),
		slog.Int64("id", id))
	return nil
}

// Update implements store.TrackerStore.Update. Only the resource-specific
// fields are rewritten; id, date and deleted_flag stay untouched.
func (s *TrackerStore[T]) Update(ctx context.Context, id int64, rec T) error {
	log := logger.FromContextOrDefault(ctx, s.log)
	db := store.ConnFromContext(ctx, s.db)

	fields := s.desc.Fields(rec)
	args := make([]any, 0, len(s.desc.Columns)+2)
	for _, col := range s.desc.Columns {
		if col == s.desc.OwnerColumn {
			continue
		}
		args = append(args, fields[col])
	}
	args = append(args, id)
	if s.desc.Scoped() {
		args = append(args, fields[s.desc.OwnerColumn])
	}

	result, err := db.ExecContext(ctx, s.updateQuery, args...)
	if err != nil {
		log.Error("failed to update record",
			slog.String("table", s.desc.Table),
			slog.Int64("id", id),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, s.desc.NotFoundErr); err != nil {
		log.Debug("update matched no rows",
			slog.String("table", s.desc.Table),
			slog.Int64("id", id))
		return err
	}

	log.Info("record updated",
		slog.String("table", s.desc.Table),
		slog.Int64("id", id))
	return nil
}
