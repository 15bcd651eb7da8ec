package safewrite

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	"gitlab.com/tozd/go/errors"
)

// EnsureBackup copies original to backup byte-for-byte unless backup already
// exists. Creation is idempotent: a present backup is never overwritten.
// Reports whether a new backup was written.
func EnsureBackup(original, backup string) (bool, error) {
	if _, err := os.Stat(backup); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, errors.WithStack(err)
	}
	if err := CopyFile(original, backup); err != nil {
		return false, err
	}
	return true, nil
}

// CopyFile copies src to dst, replacing dst.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() { _ = in.Close() }()
	out, err := os.Create(dst)
	if err != nil {
		return errors.WithStack(err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return errors.Errorf("copying %s to %s: %w", src, dst, err)
	}
	return errors.WithStack(out.Close())
}

// Checksum returns the hex SHA-256 of the file at path.
func Checksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer func() { _ = f.Close() }()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", errors.WithStack(err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
