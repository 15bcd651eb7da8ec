// Command exportschema dumps the cached schema metadata tables
// (schema_tables, schema_columns) from the embedded store into a freshly
// created temporary directory, one delimited file per table, and prints each
// output path.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	prep "github.com/wdm0006/crimeprep/pkg/crimeprep"
	"github.com/wdm0006/crimeprep/pkg/schemacache"
)

var version = "0.1.0-dev"

func main() {
	os.Exit(run())
}

func run() int {
	log := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()
	cmd := &cobra.Command{
		Use:           "exportschema",
		Short:         "Export the schema cache tables to delimited files in a temp directory",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return export(log)
		},
	}
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 1
	}
	return 0
}

func export(log zerolog.Logger) error {
	root, err := os.Getwd()
	if err != nil {
		return err
	}
	layout, cfg, err := prep.LoadLayout(root)
	if err != nil {
		return err
	}
	format, err := schemacache.ParseFormat(cfg.ExportFormat)
	if err != nil {
		return err
	}

	store, err := schemacache.OpenStore(layout.Store())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	dir, err := schemacache.NewExportDir()
	if err != nil {
		return err
	}
	ex := &schemacache.Exporter{Log: log, Format: format}
	paths, err := ex.Export(store, dir)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	return nil
}
