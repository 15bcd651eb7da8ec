// Package schemacache exports the cached schema metadata tables from the
// embedded SQLite store into delimited files.
package schemacache

import (
	"database/sql"
	"os"

	_ "github.com/mattn/go-sqlite3"
	"gitlab.com/tozd/go/errors"

	prep "github.com/wdm0006/crimeprep/pkg/crimeprep"
)

// CacheTables are the two schema-cache tables the exporter looks for, in
// output order.
var CacheTables = []string{"schema_tables", "schema_columns"}

// Store is a read-only handle to the embedded schema-cache database.
type Store struct {
	db   *sql.DB
	path string
}

// OpenStore opens the SQLite store at path. A missing path is ErrNotFound.
func OpenStore(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Errorf("%w: store path does not exist: %s", prep.ErrNotFound, path)
		}
		return nil, errors.WithStack(err)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Errorf("opening store %s: %w", path, err)
	}
	return &Store{db: db, path: path}, nil
}

func (s *Store) Path() string { return s.path }
func (s *Store) Close() error { return s.db.Close() }

// HasTable reports whether a table exists in the store.
func (s *Store) HasTable(name string) (bool, error) {
	var n int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, name,
	).Scan(&n)
	if err != nil {
		return false, errors.Errorf("querying sqlite_master: %w", err)
	}
	return n > 0, nil
}

// ReadTable loads an entire table into a Table, columns in declared order.
// Values are rendered as strings; NULL becomes the empty string.
func (s *Store) ReadTable(name string) (*prep.Table, error) {
	// name comes from CacheTables, never from user input
	rows, err := s.db.Query(`SELECT * FROM "` + name + `"`)
	if err != nil {
		return nil, errors.Errorf("reading table %s: %w", name, err)
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	t, err := prep.NewTable(prep.Header(cols))
	if err != nil {
		return nil, err
	}
	vals := make([]sql.NullString, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, errors.Errorf("scanning %s row %d: %w", name, t.Rows()+1, err)
		}
		rec := make([]string, len(cols))
		for i, v := range vals {
			if v.Valid {
				rec[i] = v.String
			}
		}
		if err := t.AppendRow(rec); err != nil {
			return nil, err
		}
	}
	return t, errors.WithStack(rows.Err())
}
