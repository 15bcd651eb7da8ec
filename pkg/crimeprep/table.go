package crimeprep

import (
	"gitlab.com/tozd/go/errors"
)

// Header is an ordered list of unique column names defining a record's shape.
type Header []string

// Index returns the position of name in the header.
func (h Header) Index(name string) (int, bool) {
	for i, c := range h {
		if c == name {
			return i, true
		}
	}
	return -1, false
}

func (h Header) Clone() Header {
	out := make(Header, len(h))
	copy(out, h)
	return out
}

// Table is a row-major container for untyped tabular data. Every row has
// exactly one string value per header column.
type Table struct {
	header Header
	index  map[string]int // name -> column index
	rows   [][]string
}

// NewTable builds an empty table for the given header. Duplicate column
// names violate the header contract and are rejected.
func NewTable(header Header) (*Table, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, dup := index[name]; dup {
			return nil, errors.Errorf("%w: duplicate column %q", ErrMalformedInput, name)
		}
		index[name] = i
	}
	return &Table{header: header.Clone(), index: index}, nil
}

func (t *Table) Header() Header { return t.header }
func (t *Table) Rows() int      { return len(t.rows) }
func (t *Table) Cols() int      { return len(t.header) }

// AppendRow adds a record. The record must be exactly header-width.
func (t *Table) AppendRow(rec []string) error {
	if len(rec) != len(t.header) {
		return errors.Errorf("%w: record has %d fields, header has %d", ErrMalformedInput, len(rec), len(t.header))
	}
	t.rows = append(t.rows, rec)
	return nil
}

// Row returns the record at i. The slice is owned by the table.
func (t *Table) Row(i int) []string { return t.rows[i] }

// Cell returns the value at row i for the named column.
func (t *Table) Cell(i int, name string) (string, bool) {
	c, ok := t.index[name]
	if !ok {
		return "", false
	}
	return t.rows[i][c], true
}
