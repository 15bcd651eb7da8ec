package project

import (
	"context"

	prep "github.com/wdm0006/crimeprep/pkg/crimeprep"
)

// DropColumn removes every occurrence of Column from the table. A header
// without the column is left unchanged.
type DropColumn struct{ Column string }

func (d *DropColumn) Name() string { return "drop_column" }

func (d *DropColumn) Apply(ctx context.Context, t *prep.Table) (*prep.Table, error) {
	in := t.Header()
	keep := make([]int, 0, len(in))
	out := make(prep.Header, 0, len(in))
	for i, name := range in {
		if name == d.Column {
			continue
		}
		keep = append(keep, i)
		out = append(out, name)
	}
	if len(keep) == len(in) {
		return t, nil
	}
	res, err := prep.NewTable(out)
	if err != nil {
		return nil, err
	}
	for i := 0; i < t.Rows(); i++ {
		row := t.Row(i)
		rec := make([]string, 0, len(keep))
		for _, c := range keep {
			rec = append(rec, row[c])
		}
		if err := res.AppendRow(rec); err != nil {
			return nil, err
		}
	}
	return res, nil
}
