package datetime

import (
	"context"
	"time"

	"gitlab.com/tozd/go/errors"

	prep "github.com/wdm0006/crimeprep/pkg/crimeprep"
)

// Fixed layouts for the combined timestamp and its two output halves. The
// input is the US 12-hour form the crimes extract ships with; the split is a
// pure reformatting, no timezone is attached or converted.
const (
	InputLayout = "01/02/2006 03:04:05 PM"
	DateLayout  = "2006-01-02"
	TimeLayout  = "15:04:05"
)

// SplitTimestamp replaces Column with two columns at the same position:
// DateColumn holding the ISO date and TimeColumn holding the 24-hour time.
// A header without Column is malformed input; a row whose value does not
// match InputLayout fails the whole transform with a ParseError.
type SplitTimestamp struct {
	Column     string
	DateColumn string
	TimeColumn string

	// ProgressEvery > 0 invokes Progress after every that-many rows.
	ProgressEvery int
	Progress      func(rows int)
}

func (s *SplitTimestamp) Name() string { return "split_timestamp" }

func (s *SplitTimestamp) Apply(ctx context.Context, t *prep.Table) (*prep.Table, error) {
	in := t.Header()
	at, ok := in.Index(s.Column)
	if !ok {
		return nil, errors.Errorf("%w: no %q column in header %v", prep.ErrMalformedInput, s.Column, []string(in))
	}

	out := make(prep.Header, 0, len(in)+1)
	out = append(out, in[:at]...)
	out = append(out, s.DateColumn, s.TimeColumn)
	out = append(out, in[at+1:]...)
	res, err := prep.NewTable(out)
	if err != nil {
		return nil, err
	}

	for i := 0; i < t.Rows(); i++ {
		row := t.Row(i)
		ts, err := time.Parse(InputLayout, row[at])
		if err != nil {
			return nil, errors.WithStack(&prep.ParseError{Row: i + 1, Value: row[at]})
		}
		rec := make([]string, 0, len(out))
		rec = append(rec, row[:at]...)
		rec = append(rec, ts.Format(DateLayout), ts.Format(TimeLayout))
		rec = append(rec, row[at+1:]...)
		if err := res.AppendRow(rec); err != nil {
			return nil, err
		}
		if s.ProgressEvery > 0 && (i+1)%s.ProgressEvery == 0 && s.Progress != nil {
			s.Progress(i + 1)
		}
	}
	return res, nil
}
