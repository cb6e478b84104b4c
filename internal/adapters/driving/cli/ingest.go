package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docvec-labs/docvec-cli/internal/walker"
)

var ingestKeepGoing bool

var ingestCmd = &cobra.Command{
	Use:   "ingest [directory]",
	Short: "Ingest documents under a directory",
	Long: `Walks the directory tree, extracts text from every supported file
(.pdf, .docx, .txt, .md), splits it into paragraphs, embeds each
paragraph and saves the vectors. Hidden directories are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().BoolVar(&ingestKeepGoing, "keep-going", false, "continue past files that fail instead of aborting")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if err := setupPipeline(ctx); err != nil {
		return err
	}

	files, err := walker.List(args[0])
	if err != nil {
		return fmt.Errorf("walking %s: %w", args[0], err)
	}
	if len(files) == 0 {
		cmd.Println("No supported files found.")
		return nil
	}

	report, err := ingestService.Ingest(ctx, files)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	cmd.Printf("Ingested %d files (%d paragraphs), skipped %d.\n",
		report.FilesIngested, report.Paragraphs, report.FilesSkipped)
	for _, failure := range report.Failures {
		cmd.Printf("  failed: %s: %v\n", failure.Path, failure.Err)
	}
	return nil
}
