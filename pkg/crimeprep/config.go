package crimeprep

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"gitlab.com/tozd/go/errors"
	yaml "gopkg.in/yaml.v3"
)

// Config optionally overrides the fixed project layout. Both utilities look
// for crimeprep.toml, then crimeprep.yaml, in the project root; when neither
// exists the NewLayout defaults apply.
type Config struct {
	DataDir      string `toml:"data_dir" yaml:"data_dir"`
	SourceName   string `toml:"source" yaml:"source"`
	StorePath    string `toml:"store" yaml:"store"`
	ExportFormat string `toml:"export_format" yaml:"export_format"` // tsv (default) or parquet
}

// LoadLayout resolves the layout for root, applying the first override file
// found.
func LoadLayout(root string) (Layout, Config, error) {
	l := NewLayout(root)
	var cfg Config
	for _, name := range []string{"crimeprep.toml", "crimeprep.yaml"} {
		path := filepath.Join(root, name)
		b, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return l, cfg, errors.Errorf("reading config file: %w", err)
		}
		switch filepath.Ext(name) {
		case ".toml":
			if err := toml.Unmarshal(b, &cfg); err != nil {
				return l, cfg, errors.Errorf("parsing %s: %w", name, err)
			}
		default:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return l, cfg, errors.Errorf("parsing %s: %w", name, err)
			}
		}
		break
	}
	if cfg.DataDir != "" {
		l.DataDir = cfg.DataDir
	}
	if cfg.SourceName != "" {
		l.SourceName = cfg.SourceName
	}
	if cfg.StorePath != "" {
		l.StorePath = cfg.StorePath
	}
	return l, cfg, nil
}
