package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/fitloop/internal/db"
)

// parseNullableTime parses a sql.NullString into a *time.Time using the given layout.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString returns SQL NULL for a nil pointer.
func nullableTimeToString(t *time.Time, layout string) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// resolvePrefix finds the single id in table starting with prefix. An exact
// match wins even when it is also a prefix of other ids.
func resolvePrefix(ctx context.Context, conn db.DBTX, table, entity, prefix string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(prefix)
	query := fmt.Sprintf(`SELECT id FROM %s WHERE id LIKE ? || '%%' ESCAPE '\' ORDER BY id LIMIT 2`, table)
	rows, err := conn.QueryContext(ctx, query, escaped)
	if err != nil {
		return "", fmt.Errorf("resolving %s id: %w", entity, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("scanning %s id: %w", entity, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("iterating %s ids: %w", entity, err)
	}

	switch {
	case len(ids) == 0:
		return "", fmt.Errorf("%s %q: %w", entity, prefix, ErrNotFound)
	case len(ids) == 1 || ids[0] == prefix:
		return ids[0], nil
	default:
		return "", fmt.Errorf("%s %q: %w", entity, prefix, ErrAmbiguousID)
	}
}

// requireAffected maps a zero-row write to ErrNotFound.
func requireAffected(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking %s rows affected: %w", entity, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return nil
}
