package sqlstore

import (
	"database/sql"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// nullToStringPtr converts sql.NullString to *string
func nullToStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// stringPtrToNull converts *string to sql.NullString; empty strings are
// stored as NULL so blank emails never collide on the unique constraint.
func stringPtrToNull(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// dateToArg formats a calendar date for storage. Both engines receive the
// ISO text form; PostgreSQL coerces it into its DATE column.
func dateToArg(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(dateLayout)
}

// scanDate converts whatever the active driver returned for a date column
// into a time.Time. PostgreSQL hands back time.Time, SQLite the stored text.
func scanDate(v any) (time.Time, error) {
	switch d := v.(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		return d, nil
	case string:
		return parseDateString(d)
	case []byte:
		return parseDateString(string(d))
	default:
		return time.Time{}, fmt.Errorf("unsupported date representation %T", v)
	}
}

func parseDateString(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t, nil
}
