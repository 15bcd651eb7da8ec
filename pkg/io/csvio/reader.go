package csvio

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"gitlab.com/tozd/go/errors"

	prep "github.com/wdm0006/crimeprep/pkg/crimeprep"
)

type ReaderOptions struct {
	Delimiter rune // 0 = ','
}

type Reader struct {
	r   *csv.Reader
	f   *os.File
	hdr prep.Header
}

// Open opens a delimited file and reads its header. An empty file is
// malformed input ("CSV has no headers").
func Open(path string, opt ReaderOptions) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Errorf("%w: %s", prep.ErrNotFound, path)
		}
		return nil, errors.WithStack(err)
	}
	rr := csv.NewReader(f)
	if opt.Delimiter != 0 {
		rr.Comma = opt.Delimiter
	}
	rr.ReuseRecord = true

	rec, err := rr.Read()
	if err == io.EOF {
		_ = f.Close()
		return nil, errors.Errorf("%w: CSV has no headers", prep.ErrMalformedInput)
	}
	if err != nil {
		_ = f.Close()
		return nil, errors.Errorf("reading header of %s: %w", path, err)
	}
	hdr := make(prep.Header, len(rec))
	for i := range rec {
		hdr[i] = strings.ToValidUTF8(rec[i], "?")
	}
	// strip BOM on first header cell if present
	if len(hdr) > 0 {
		hdr[0] = strings.TrimPrefix(hdr[0], "\ufeff")
	}
	return &Reader{r: rr, f: f, hdr: hdr}, nil
}

func (r *Reader) Header() prep.Header { return r.hdr }

// ReadAll loads every remaining record into a Table. The whole dataset is
// held in memory between read and write; the extracts this tool targets are
// bounded, so that is a documented limit rather than a streaming concern.
func (r *Reader) ReadAll() (*prep.Table, error) {
	t, err := prep.NewTable(r.hdr)
	if err != nil {
		return nil, err
	}
	for {
		rec, err := r.r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Errorf("reading record %d: %w", t.Rows()+1, err)
		}
		row := make([]string, len(rec))
		copy(row, rec)
		if err := t.AppendRow(row); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (r *Reader) Close() error { return r.f.Close() }
