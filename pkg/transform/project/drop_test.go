package project

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	prep "github.com/wdm0006/crimeprep/pkg/crimeprep"
)

func TestDropColumn(t *testing.T) {
	tests := []struct {
		name       string
		header     prep.Header
		row        []string
		wantHeader prep.Header
		wantRow    []string
	}{
		{
			name:       "drops_named_column",
			header:     prep.Header{"ID", "Updated On", "Block"},
			row:        []string{"1", "09/14/2025", "x"},
			wantHeader: prep.Header{"ID", "Block"},
			wantRow:    []string{"1", "x"},
		},
		{
			name:       "absent_column_is_noop",
			header:     prep.Header{"ID", "Block"},
			row:        []string{"1", "x"},
			wantHeader: prep.Header{"ID", "Block"},
			wantRow:    []string{"1", "x"},
		},
		{
			name:       "drops_last_column",
			header:     prep.Header{"ID", "Updated On"},
			row:        []string{"1", "y"},
			wantHeader: prep.Header{"ID"},
			wantRow:    []string{"1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := prep.NewTable(tt.header)
			require.NoError(t, err)
			require.NoError(t, in.AppendRow(tt.row))

			out, err := (&DropColumn{Column: "Updated On"}).Apply(context.Background(), in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHeader, out.Header())
			assert.Equal(t, tt.wantRow, out.Row(0))
		})
	}
}
