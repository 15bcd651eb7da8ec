package safewrite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func paths(t *testing.T) (original, backup, temp string) {
	t.Helper()
	dir := t.TempDir()
	original = filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(original, []byte("original content\n"), 0o644))
	return original, original + ".backup", original + ".tmp"
}

func TestCommitSuccess(t *testing.T) {
	original, backup, temp := paths(t)
	c := &Committer{Log: zerolog.Nop()}

	rows, err := c.Commit(original, backup, temp, func(src, dst string) (int, error) {
		return 3, os.WriteFile(dst, []byte("transformed\n"), 0o644)
	})
	require.NoError(t, err)
	assert.Equal(t, 3, rows)
	assert.Equal(t, StateDone, c.State())

	b, err := os.ReadFile(original)
	require.NoError(t, err)
	assert.Equal(t, "transformed\n", string(b))

	bk, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, "original content\n", string(bk))

	_, err = os.Stat(temp)
	assert.True(t, os.IsNotExist(err))
}

func TestCommitBackupIsIdempotent(t *testing.T) {
	original, backup, temp := paths(t)
	c := &Committer{Log: zerolog.Nop()}

	_, err := c.Commit(original, backup, temp, func(src, dst string) (int, error) {
		return 1, os.WriteFile(dst, []byte("first pass\n"), 0o644)
	})
	require.NoError(t, err)
	sum1, err := Checksum(backup)
	require.NoError(t, err)

	// second run must not overwrite the snapshot of the true original
	_, err = c.Commit(original, backup, temp, func(src, dst string) (int, error) {
		return 1, os.WriteFile(dst, []byte("second pass\n"), 0o644)
	})
	require.NoError(t, err)
	sum2, err := Checksum(backup)
	require.NoError(t, err)
	assert.Equal(t, sum1, sum2)

	bk, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, "original content\n", string(bk))
}

func TestCommitTransformFailureIsClean(t *testing.T) {
	original, backup, temp := paths(t)
	before, err := Checksum(original)
	require.NoError(t, err)

	c := &Committer{Log: zerolog.Nop()}
	_, err = c.Commit(original, backup, temp, func(src, dst string) (int, error) {
		// fail after partially materializing the temp file
		_ = os.WriteFile(dst, []byte("partial"), 0o644)
		return 0, errors.New("row 7: cannot parse timestamp")
	})
	require.Error(t, err)
	assert.Equal(t, StateFailedClean, c.State())

	after, err := Checksum(original)
	require.NoError(t, err)
	assert.Equal(t, before, after, "original must be byte-identical after a failed run")

	_, err = os.Stat(temp)
	assert.True(t, os.IsNotExist(err), "temp artifact must be removed")

	_, err = os.Stat(backup)
	assert.NoError(t, err, "backup stays available for retry")
}

func TestCommitTransformFailureWithoutTemp(t *testing.T) {
	original, backup, temp := paths(t)
	c := &Committer{Log: zerolog.Nop()}
	_, err := c.Commit(original, backup, temp, func(src, dst string) (int, error) {
		return 0, errors.New("failed before writing anything")
	})
	require.Error(t, err)
	assert.Equal(t, StateFailedClean, c.State())
}

func TestCommitReplaceFailureIsDirty(t *testing.T) {
	original, backup, temp := paths(t)
	c := &Committer{Log: zerolog.Nop()}
	// never materialize temp, so the rename itself fails
	_, err := c.Commit(original, backup, temp, func(src, dst string) (int, error) {
		return 5, nil
	})
	require.Error(t, err)
	assert.Equal(t, StateFailedDirty, c.State())
	assert.Contains(t, err.Error(), original)

	b, readErr := os.ReadFile(original)
	require.NoError(t, readErr)
	assert.Equal(t, "original content\n", string(b))
}

func TestEnsureBackup(t *testing.T) {
	original, backup, _ := paths(t)

	created, err := EnsureBackup(original, backup)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = EnsureBackup(original, backup)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestCopyFileAndChecksum(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0o644))

	require.NoError(t, CopyFile(src, dst))
	s1, err := Checksum(src)
	require.NoError(t, err)
	s2, err := Checksum(dst)
	require.NoError(t, err)
	assert.Equal(t, s1, s2)

	err = CopyFile(filepath.Join(dir, "missing"), dst)
	assert.Error(t, err)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "START", StateStart.String())
	assert.Equal(t, "FAILED_DIRTY", StateFailedDirty.String())
}
