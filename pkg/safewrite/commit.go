// Package safewrite implements the backup-once / materialize / atomic-replace
// protocol used to rewrite a file in place without ever leaving it
// half-written.
package safewrite

import (
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// State tracks the commit protocol phase, for logging and tests.
type State int

const (
	StateStart State = iota
	StateBackingUp
	StateTransforming
	StateReplacing
	StateDone
	// StateFailedClean: transform failed, temp removed, original intact.
	// Re-running is safe; the backup is kept.
	StateFailedClean
	// StateFailedDirty: the final rename failed, both original and temp are
	// on disk. Manual recovery required; nothing is auto-fixed.
	StateFailedDirty
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "START"
	case StateBackingUp:
		return "BACKING_UP"
	case StateTransforming:
		return "TRANSFORMING"
	case StateReplacing:
		return "REPLACING"
	case StateDone:
		return "DONE"
	case StateFailedClean:
		return "FAILED_CLEAN"
	case StateFailedDirty:
		return "FAILED_DIRTY"
	}
	return "UNKNOWN"
}

// TransformFunc produces the complete replacement artifact at temp from
// original, returning the number of rows written.
type TransformFunc func(original, temp string) (int, error)

type Committer struct {
	Log zerolog.Logger

	state State
}

func (c *Committer) State() State { return c.state }

// Commit runs the protocol: ensure a backup of original exists at backup,
// run fn to fully materialize temp, then atomically rename temp over
// original. On a transform failure temp is removed and original is left
// untouched. On a rename failure both files are left for manual recovery and
// the temp path is named in the error.
func (c *Committer) Commit(original, backup, temp string, fn TransformFunc) (int, error) {
	c.state = StateBackingUp
	created, err := EnsureBackup(original, backup)
	if err != nil {
		c.state = StateFailedClean
		return 0, errors.Errorf("creating backup: %w", err)
	}
	if created {
		c.Log.Info().Str("path", backup).Msg("created backup")
	} else {
		c.Log.Debug().Str("path", backup).Msg("backup already present, keeping it")
	}

	c.state = StateTransforming
	rows, err := fn(original, temp)
	if err != nil {
		if rmErr := os.Remove(temp); rmErr != nil && !os.IsNotExist(rmErr) {
			c.Log.Warn().Err(rmErr).Str("path", temp).Msg("could not remove temp file")
		}
		c.state = StateFailedClean
		return 0, err
	}

	c.state = StateReplacing
	if err := os.Rename(temp, original); err != nil {
		c.state = StateFailedDirty
		return 0, errors.Errorf("replacing %s (transformed output left at %s): %w", original, temp, err)
	}
	c.state = StateDone
	return rows, nil
}
