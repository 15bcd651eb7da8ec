package csvio

import (
	"encoding/csv"
	"os"

	"gitlab.com/tozd/go/errors"

	prep "github.com/wdm0006/crimeprep/pkg/crimeprep"
)

type WriterOptions struct {
	Delimiter rune // default ','
}

// WriteAll writes a Table to path with the header first. The file is fully
// materialized before the caller promotes it; partially written output is the
// caller's to discard.
func WriteAll(path string, t *prep.Table, opt WriterOptions) error {
	out, err := os.Create(path)
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() { _ = out.Close() }()
	w := csv.NewWriter(out)
	if opt.Delimiter != 0 {
		w.Comma = opt.Delimiter
	}

	if err := w.Write(t.Header()); err != nil {
		return errors.Errorf("writing header: %w", err)
	}
	for i := 0; i < t.Rows(); i++ {
		if err := w.Write(t.Row(i)); err != nil {
			return errors.Errorf("writing record %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.Errorf("flushing %s: %w", path, err)
	}
	return errors.WithStack(out.Close())
}
