// Command transformcrimes rewrites the crimes CSV extract in place: the
// combined "Date" column becomes "Date_of_Crime" and "Time_of_Crime" at the
// same position and "Updated On" is dropped. The original is backed up once
// and replaced atomically; a failed run leaves it untouched.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	prep "github.com/wdm0006/crimeprep/pkg/crimeprep"
	csvio "github.com/wdm0006/crimeprep/pkg/io/csvio"
	"github.com/wdm0006/crimeprep/pkg/safewrite"
	"github.com/wdm0006/crimeprep/pkg/transform/datetime"
	"github.com/wdm0006/crimeprep/pkg/transform/project"
)

var version = "0.1.0-dev"

const (
	dateColumn       = "Date"
	dateOutColumn    = "Date_of_Crime"
	timeOutColumn    = "Time_of_Crime"
	droppedColumn    = "Updated On"
	progressInterval = 5000
)

func main() {
	os.Exit(run())
}

func run() int {
	log := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()
	cmd := &cobra.Command{
		Use:           "transformcrimes",
		Short:         "Split the crimes CSV date column into date and time columns, in place",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return transform(cmd.Context(), log)
		},
	}
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 1
	}
	return 0
}

func transform(ctx context.Context, log zerolog.Logger) error {
	root, err := os.Getwd()
	if err != nil {
		return err
	}
	layout, _, err := prep.LoadLayout(root)
	if err != nil {
		return err
	}
	if err := layout.CheckSource(); err != nil {
		return err
	}

	c := &safewrite.Committer{Log: log}
	rows, err := c.Commit(layout.SourcePath(), layout.BackupPath(), layout.TempPath(),
		func(src, dst string) (int, error) {
			return transformFile(ctx, src, dst)
		})
	if err != nil {
		return err
	}
	fmt.Printf("Successfully transformed %d rows\n", rows)
	return nil
}

// transformFile reads src, applies the column re-projection, and fully
// materializes the result at dst. The whole file is one transaction: any
// unparseable date fails the run before dst is promoted.
func transformFile(ctx context.Context, src, dst string) (int, error) {
	r, err := csvio.Open(src, csvio.ReaderOptions{})
	if err != nil {
		return 0, err
	}
	defer func() { _ = r.Close() }()

	in, err := r.ReadAll()
	if err != nil {
		return 0, err
	}
	fmt.Printf("Old columns (%d): %v\n", len(in.Header()), []string(in.Header()))

	split := &datetime.SplitTimestamp{
		Column:        dateColumn,
		DateColumn:    dateOutColumn,
		TimeColumn:    timeOutColumn,
		ProgressEvery: progressInterval,
		Progress: func(n int) {
			fmt.Printf("Processed %d rows...\n", n)
		},
	}
	p := prep.NewPipeline().
		Add(split).
		Add(&project.DropColumn{Column: droppedColumn})

	out, err := p.Run(ctx, in)
	if err != nil {
		return 0, err
	}
	fmt.Printf("New columns (%d): %v\n", len(out.Header()), []string(out.Header()))
	fmt.Printf("Total rows processed: %d\n", out.Rows())

	if err := csvio.WriteAll(dst, out, csvio.WriterOptions{}); err != nil {
		return 0, err
	}
	fmt.Printf("Written to: %s\n", dst)
	return out.Rows(), nil
}
