package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Filter narrows List results. Eq holds column equality matches, Tags selects
// records whose tag array overlaps the given set, PublishedOnly restricts
// results to status = 'published', and FeaturedOnly to flagged records.
// Columns not known to the collection are ignored.
type Filter struct {
	Eq            map[string]string
	Tags          []string
	PublishedOnly bool
	FeaturedOnly  bool
}

type rowScanner interface {
	Scan(dest ...any) error
}

// repo is the query and mutation core shared by the three content
// collections. Each kind supplies its table name, select list, scan function,
// the columns a Filter may match on, and the columns substring search covers.
type repo[T any] struct {
	db         *sql.DB
	table      string
	columns    string
	scan       func(rowScanner) (T, error)
	filterable map[string]bool
	searchCols []string
}

// list returns records matching the filter, newest first.
func (r *repo[T]) list(ctx context.Context, f Filter) ([]T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE 1=1", r.columns, r.table)
	var args []any
	argIdx := 1

	if f.PublishedOnly {
		query += " AND status = 'published'"
	}
	if f.FeaturedOnly {
		query += " AND is_featured = TRUE"
	}

	for _, col := range sortedKeys(f.Eq) {
		if !r.filterable[col] {
			continue
		}
		query += fmt.Sprintf(" AND %s = $%d", col, argIdx)
		args = append(args, f.Eq[col])
		argIdx++
	}

	if len(f.Tags) > 0 {
		query += fmt.Sprintf(" AND tags && $%d", argIdx)
		args = append(args, pq.Array(f.Tags))
	}

	query += " ORDER BY created_at DESC"
	return r.query(ctx, query, args...)
}

// byID fetches a single record regardless of status.
func (r *repo[T]) byID(ctx context.Context, id string) (T, error) {
	var zero T
	row := r.db.QueryRowContext(ctx, fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", r.columns, r.table), id)
	item, err := r.scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, ErrNotFound
	}
	if err != nil {
		return zero, fmt.Errorf("get %s: %w", r.table, err)
	}
	return item, nil
}

// insert stores a new record with a generated id and matching timestamps.
func (r *repo[T]) insert(ctx context.Context, cols []string, vals []any) (T, error) {
	var zero T
	names := append([]string{"id"}, cols...)
	args := append([]any{uuid.NewString()}, vals...)

	placeholders := make([]string, len(args))
	for i := range args {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s, created_at, updated_at) VALUES (%s, NOW(), NOW()) RETURNING %s",
		r.table, strings.Join(names, ", "), strings.Join(placeholders, ", "), r.columns,
	)

	item, err := r.scan(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return zero, fmt.Errorf("insert %s: %w", r.table, err)
	}
	return item, nil
}

// update replaces the supplied columns and always refreshes updated_at.
func (r *repo[T]) update(ctx context.Context, id string, cols []string, vals []any) (T, error) {
	var zero T
	sets := make([]string, 0, len(cols)+1)
	args := make([]any, 0, len(vals)+1)
	for i, col := range cols {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+1))
		args = append(args, vals[i])
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		r.table, strings.Join(sets, ", "), len(args), r.columns,
	)

	item, err := r.scan(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return zero, ErrNotFound
	}
	if err != nil {
		return zero, fmt.Errorf("update %s: %w", r.table, err)
	}
	return item, nil
}

// delete removes a record permanently.
func (r *repo[T]) delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", r.table), id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.table, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.table, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// search matches term as a case-insensitive substring in any of the
// collection's search columns, published records only.
func (r *repo[T]) search(ctx context.Context, term string) ([]T, error) {
	conds := make([]string, len(r.searchCols))
	for i, col := range r.searchCols {
		conds[i] = fmt.Sprintf("%s ILIKE $1", col)
	}
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE (%s) AND status = 'published' ORDER BY created_at DESC",
		r.columns, r.table, strings.Join(conds, " OR "),
	)
	return r.query(ctx, query, "%"+term+"%")
}

// byTags selects published records whose tag set shares at least one element
// with the given set.
func (r *repo[T]) byTags(ctx context.Context, tags []string) ([]T, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE tags && $1 AND status = 'published' ORDER BY created_at DESC",
		r.columns, r.table,
	)
	return r.query(ctx, query, pq.Array(tags))
}

// featured returns published records flagged as featured.
func (r *repo[T]) featured(ctx context.Context) ([]T, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE is_featured = TRUE AND status = 'published' ORDER BY created_at DESC",
		r.columns, r.table,
	)
	return r.query(ctx, query)
}

// featuredInSection returns published records assigned to a placement slot.
// The query matches on featured_section alone, without an is_featured
// predicate; the admin surface sets both together.
func (r *repo[T]) featuredInSection(ctx context.Context, section string) ([]T, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE featured_section = $1 AND status = 'published' ORDER BY created_at DESC",
		r.columns, r.table,
	)
	return r.query(ctx, query, section)
}

// allTags returns the sorted, de-duplicated union of tags across the
// collection's published records.
func (r *repo[T]) allTags(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf("SELECT tags FROM %s WHERE status = 'published'", r.table))
	if err != nil {
		return nil, fmt.Errorf("select %s tags: %w", r.table, err)
	}
	defer rows.Close()

	seen := make(map[string]struct{})
	for rows.Next() {
		var tags pq.StringArray
		if err := rows.Scan(&tags); err != nil {
			return nil, fmt.Errorf("scan %s tags: %w", r.table, err)
		}
		for _, tag := range tags {
			seen[tag] = struct{}{}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s tags: %w", r.table, err)
	}

	names := make([]string, 0, len(seen))
	for tag := range seen {
		names = append(names, tag)
	}
	sort.Strings(names)
	return names, nil
}

func (r *repo[T]) query(ctx context.Context, query string, args ...any) ([]T, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", r.table, err)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		item, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.table, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", r.table, err)
	}
	return items, nil
}

// sortedKeys keeps filter clauses in a stable order.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// nullableText maps an empty string to NULL for optional text columns.
func nullableText(s string) sql.NullString {
	return sql.NullString{String: s, Valid: strings.TrimSpace(s) != ""}
}
