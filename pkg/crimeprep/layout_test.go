package crimeprep

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutPaths(t *testing.T) {
	l := NewLayout("/proj")
	assert.Equal(t, filepath.Join("/proj", "test-data", "Chicago_Crimes_2025_Enriched.csv"), l.SourcePath())
	assert.Equal(t, l.SourcePath()+".backup", l.BackupPath())
	assert.Equal(t, l.SourcePath()+".tmp", l.TempPath())
	assert.Equal(t, filepath.Join("/proj", "data", "schemacache.db"), l.Store())
}

func TestLayoutCheckSource(t *testing.T) {
	root := t.TempDir()
	l := NewLayout(root)

	err := l.CheckSource()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, os.MkdirAll(filepath.Dir(l.SourcePath()), 0o755))
	require.NoError(t, os.WriteFile(l.SourcePath(), []byte("ID,Date\n"), 0o644))
	assert.NoError(t, l.CheckSource())
}

func TestLoadLayout(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantDir  string
		wantSrc  string
		wantFmt  string
		wantErr  bool
	}{
		{
			name:    "defaults_without_config",
			wantDir: DefaultDataDir,
			wantSrc: DefaultSourceName,
		},
		{
			name:    "toml_override",
			file:    "crimeprep.toml",
			content: "data_dir = \"extracts\"\nsource = \"crimes.csv\"\nexport_format = \"parquet\"\n",
			wantDir: "extracts",
			wantSrc: "crimes.csv",
			wantFmt: "parquet",
		},
		{
			name:    "yaml_override",
			file:    "crimeprep.yaml",
			content: "data_dir: extracts\nstore: cache/schema.db\n",
			wantDir: "extracts",
			wantSrc: DefaultSourceName,
		},
		{
			name:    "bad_toml",
			file:    "crimeprep.toml",
			content: "data_dir = [broken",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			if tt.file != "" {
				require.NoError(t, os.WriteFile(filepath.Join(root, tt.file), []byte(tt.content), 0o644))
			}
			l, cfg, err := LoadLayout(root)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDir, l.DataDir)
			assert.Equal(t, tt.wantSrc, l.SourceName)
			assert.Equal(t, tt.wantFmt, cfg.ExportFormat)
		})
	}
}

func TestLoadLayoutPrefersToml(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "crimeprep.toml"), []byte("data_dir = \"from-toml\"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "crimeprep.yaml"), []byte("data_dir: from-yaml\n"), 0o644))
	l, _, err := LoadLayout(root)
	require.NoError(t, err)
	assert.Equal(t, "from-toml", l.DataDir)
}
