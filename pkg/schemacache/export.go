package schemacache

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	prep "github.com/wdm0006/crimeprep/pkg/crimeprep"
	csvio "github.com/wdm0006/crimeprep/pkg/io/csvio"
)

// Format selects the serialization for exported tables.
type Format string

const (
	FormatTSV     Format = "tsv"
	FormatParquet Format = "parquet"
)

// ParseFormat validates a format name; the empty string means FormatTSV.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "":
		return FormatTSV, nil
	case FormatTSV, FormatParquet:
		return Format(s), nil
	}
	return "", errors.Errorf("unsupported export format %q", s)
}

// NewExportDir creates a fresh, caller-owned output directory per invocation.
func NewExportDir() (string, error) {
	dir, err := os.MkdirTemp("", "schema_cache_tsv_")
	return dir, errors.WithStack(err)
}

// Exporter dumps the schema-cache tables into an output directory.
type Exporter struct {
	Log    zerolog.Logger
	Format Format // default FormatTSV
}

// Export writes each cache table present in the store to dir and returns the
// paths written, in CacheTables order. A missing table only logs a warning; a
// store containing neither table is an error.
func (e *Exporter) Export(store *Store, dir string) ([]string, error) {
	format := e.Format
	if format == "" {
		format = FormatTSV
	}
	var paths []string
	for _, name := range CacheTables {
		ok, err := store.HasTable(name)
		if err != nil {
			return nil, err
		}
		if !ok {
			e.Log.Warn().Str("table", name).Str("store", store.Path()).Msg("missing table")
			continue
		}
		t, err := store.ReadTable(name)
		if err != nil {
			return nil, err
		}
		out := filepath.Join(dir, name+"."+string(format))
		if err := writeTable(out, t, format); err != nil {
			return nil, err
		}
		paths = append(paths, out)
	}
	if len(paths) == 0 {
		return nil, errors.Errorf("%w: no tables exported (none found)", prep.ErrMalformedInput)
	}
	return paths, nil
}

func writeTable(path string, t *prep.Table, format Format) error {
	if format == FormatParquet {
		return writeParquet(path, t)
	}
	return csvio.WriteAll(path, t, csvio.WriterOptions{Delimiter: '\t'})
}
