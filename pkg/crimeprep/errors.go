package crimeprep

import (
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// Error taxonomy. Every failure surfaced by the CLIs wraps one of these so
// callers can classify with errors.Is / errors.As; the top-level handler maps
// any of them to exit code 1 and an "ERROR: ..." line.
var (
	// ErrNotFound marks a required input path that is absent.
	ErrNotFound = errors.Base("required input not found")

	// ErrMalformedInput marks input that is structurally unusable: a missing
	// header, a header without the expected column, or a missing store table.
	ErrMalformedInput = errors.Base("malformed input")
)

// ParseError reports a field value that does not match the fixed timestamp
// layout. The whole run fails on the first one; there are no best-effort rows.
type ParseError struct {
	Row   int    // 1-based data row number
	Value string // offending raw value
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: cannot parse timestamp %q", e.Row, e.Value)
}
