package crimeprep

import (
	"os"
	"path/filepath"

	"gitlab.com/tozd/go/errors"
)

// Default project layout. The utilities are zero-argument by design and
// operate on these fixed locations under the project root.
const (
	DefaultDataDir    = "test-data"
	DefaultSourceName = "Chicago_Crimes_2025_Enriched.csv"
	DefaultStorePath  = "data/schemacache.db"

	backupSuffix = ".backup"
	tempSuffix   = ".tmp"
)

// Layout deterministically resolves the on-disk locations the utilities
// operate on, relative to a project root. It has no side effects.
type Layout struct {
	Root       string
	DataDir    string // relative to Root
	SourceName string
	StorePath  string // relative to Root
}

func NewLayout(root string) Layout {
	return Layout{
		Root:       root,
		DataDir:    DefaultDataDir,
		SourceName: DefaultSourceName,
		StorePath:  DefaultStorePath,
	}
}

func (l Layout) SourcePath() string { return filepath.Join(l.Root, l.DataDir, l.SourceName) }
func (l Layout) BackupPath() string { return l.SourcePath() + backupSuffix }
func (l Layout) TempPath() string   { return l.SourcePath() + tempSuffix }
func (l Layout) Store() string      { return filepath.Join(l.Root, l.StorePath) }

// CheckSource verifies the source CSV exists at its computed path.
func (l Layout) CheckSource() error {
	if _, err := os.Stat(l.SourcePath()); err != nil {
		if os.IsNotExist(err) {
			return errors.Errorf("%w: CSV not found at %s", ErrNotFound, l.SourcePath())
		}
		return errors.Errorf("stat %s: %w", l.SourcePath(), err)
	}
	return nil
}
